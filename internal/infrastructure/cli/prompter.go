package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLength is the longest answer the prompter accepts
const MaxLineLength = 64 * 1024

// ErrLineTooLong is returned for an answer longer than MaxLineLength. The
// whole line is consumed so the next Ask starts on the following line.
var ErrLineTooLong = errors.New("input line too long")

// Prompter asks questions on out and reads one line answers from in
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter over in and out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask prints prompt and returns the next line with surrounding space trimmed.
// It returns io.EOF when input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Terminate the dangling prompt
				fmt.Fprintln(p.out)
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if !tooLong {
			if len(line)+len(chunk) > MaxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}
