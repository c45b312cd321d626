package chart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when a chart without points is rendered
var ErrNoData = errors.New("no exchange rate data to plot")

// Opener displays a rendered file to the user
type Opener func(path string) error

// WindowRenderer saves charts as PNG files and opens them in the desktop viewer
type WindowRenderer struct {
	dir    string
	open   Opener
	width  vg.Length
	height vg.Length
	now    func() time.Time
}

// WindowOption configures a WindowRenderer
type WindowOption func(*WindowRenderer)

// WithOpener replaces the viewer used to display saved charts
func WithOpener(open Opener) WindowOption {
	return func(r *WindowRenderer) { r.open = open }
}

// WithSize sets the size of the saved image
func WithSize(width, height vg.Length) WindowOption {
	return func(r *WindowRenderer) {
		r.width = width
		r.height = height
	}
}

// NewWindowRenderer creates a renderer that writes into dir
func NewWindowRenderer(dir string, opts ...WindowOption) *WindowRenderer {
	if dir == "" {
		dir = os.TempDir()
	}

	r := &WindowRenderer{
		dir:    dir,
		open:   browser.OpenFile,
		width:  10 * vg.Inch,
		height: 6 * vg.Inch,
		now:    time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Show saves c as a PNG and opens it. The path of the image is returned even
// when the viewer could not be started.
func (r *WindowRenderer) Show(ctx context.Context, c Chart) (string, error) {
	if c.Empty() {
		return "", ErrNoData
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := buildPlot(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}

	path := filepath.Join(r.dir, r.fileName(c))
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}

	if err := r.open(path); err != nil {
		return path, fmt.Errorf("failed to open chart viewer: %w", err)
	}

	return path, nil
}

func (r *WindowRenderer) fileName(c Chart) string {
	slug := strings.ToLower(strings.Join(strings.Fields(c.Title), "-"))
	return fmt.Sprintf("%s-%s.png", slug, r.now().Format("20060102-150405"))
}

func buildPlot(c Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(c.Points))
	for i, pt := range c.Points {
		xys[i].X = float64(pt.Date.Unix())
		xys[i].Y = pt.MidFloat()
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart line: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add(string(c.Code), line)

	return p, nil
}
