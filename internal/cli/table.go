package cli

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table renders rows under headers with the console's default styling.
func (p *Printer) Table(headers []string, rows [][]string) {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   tw.WrapNone,
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
}

// KeyValues renders two-column rows without a header.
func (p *Printer) KeyValues(rows [][2]string) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r[0], r[1]})
	}
	p.Table([]string{"Field", "Value"}, out)
}

// formatMoney renders v as dollars with thousands separators, e.g. $1,234.50.
func formatMoney(v float64) string {
	s := "$" + humanize.FormatFloat("#,###.##", math.Abs(v))
	if v <= -0.005 {
		return "-" + s
	}
	return s
}
