package chart

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
)

// TerminalRenderer draws charts as text for sessions without a display
type TerminalRenderer struct {
	out    io.Writer
	height int
}

// NewTerminalRenderer creates a renderer that writes to out
func NewTerminalRenderer(out io.Writer, height int) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	if height <= 0 {
		height = 12
	}
	return &TerminalRenderer{out: out, height: height}
}

// Show writes c to the terminal
func (r *TerminalRenderer) Show(ctx context.Context, c Chart) (string, error) {
	if c.Empty() {
		return "", ErrNoData
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	series := make([]float64, len(c.Points))
	for i, pt := range c.Points {
		series[i] = pt.MidFloat()
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(r.height),
		asciigraph.Caption(c.YLabel),
	)

	first := c.Points[0].Date.Format("2006-01-02")
	last := c.Points[len(c.Points)-1].Date.Format("2006-01-02")

	if _, err := fmt.Fprintf(r.out, "%s\n\n%s\n%s: %s .. %s\n", c.Title, graph, c.XLabel, first, last); err != nil {
		return "", fmt.Errorf("failed to write chart: %w", err)
	}

	return "", nil
}
