package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// maxLineBytes caps a single answer. Longer lines are consumed and rejected.
const maxLineBytes = 4096

// Prompter reads single-line answers from the console.
type Prompter struct {
	r   *bufio.Reader
	out *Printer
}

func NewPrompter(in io.Reader, out *Printer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// Line prints label and returns the trimmed answer. It returns io.EOF once
// input is exhausted and domain.ErrInvalidInput for an over-long line.
func (p *Prompter) Line(label string) (string, error) {
	p.out.Prompt(label)

	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, more, err := p.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong && len(buf)+len(chunk) <= maxLineBytes {
			buf = append(buf, chunk...)
		} else {
			tooLong, buf = true, nil
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", fmt.Errorf("%w: input line is longer than %d bytes", domain.ErrInvalidInput, maxLineBytes)
	}
	return strings.TrimSpace(string(buf)), nil
}

// Optional returns nil when the answer is blank so the current value is kept.
func (p *Prompter) Optional(label, current string) (*string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	s, err := p.Line(label)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

func (p *Prompter) Float(label string) (float64, error) {
	s, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$"), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, strings.ToLower(label))
	}
	return f, nil
}

// OptionalInt is Optional for whole numbers.
func (p *Prompter) OptionalInt(label string, current int) (*int, error) {
	s, err := p.Optional(label, strconv.Itoa(current))
	if err != nil || s == nil {
		return nil, err
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, strings.ToLower(label))
	}
	return &n, nil
}
