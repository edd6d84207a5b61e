package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes menus and status lines to the console.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ColorsEnabled reports whether colored output should be used, honouring
// NO_COLOR and dumb terminals.
func ColorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return !color.NoColor
}

func NewPrinter(out, errOut io.Writer, useColors bool) *Printer {
	if errOut == nil {
		errOut = out
	}
	return &Printer{out: out, err: errOut, useColors: useColors}
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, format+"\n", args...)
	}
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	line := strings.Repeat("=", 3)
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s %s %s\n", line, title, line)
	} else {
		fmt.Fprintf(p.out, "\n%s %s %s\n", line, title, line)
	}
}

// Prompt prints label without a trailing newline.
func (p *Printer) Prompt(label string) {
	if p.useColors {
		color.New(color.Bold).Fprintf(p.out, "%s: ", label)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}
