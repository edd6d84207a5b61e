package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

func newTestPrompter(input string) *Prompter {
	var buf bytes.Buffer
	return NewPrompter(strings.NewReader(input), NewPrinter(&buf, nil, false))
}

func TestPrompter_Line(t *testing.T) {
	p := newTestPrompter("  first  \r\nlast")

	got, err := p.Line("A")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = p.Line("B")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Line("C")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	p := newTestPrompter(long + "\nnext\n" + strings.Repeat("y", maxLineBytes+1))

	_, err := p.Line("A")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := p.Line("B")
	require.NoError(t, err)
	assert.Equal(t, "next", got)

	_, err = p.Line("C")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = p.Line("D")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_LineAtLimit(t *testing.T) {
	exact := strings.Repeat("z", maxLineBytes)
	p := newTestPrompter(exact + "\n")

	got, err := p.Line("A")
	require.NoError(t, err)
	assert.Equal(t, exact, got)
}

func TestPrompter_Float(t *testing.T) {
	valid := map[string]float64{
		"100":       100,
		"$1,234.50": 1234.5,
		"-3":        -3,
	}
	for in, want := range valid {
		got, err := newTestPrompter(in + "\n").Float("Premium")
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"abc", "Inf", "+inf", "-Infinity", "NaN", "1e400", ""} {
		_, err := newTestPrompter(in + "\n").Float("Premium")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}
