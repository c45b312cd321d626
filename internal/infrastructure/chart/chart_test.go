package chart

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoints() []entity.ExchangeRatePoint {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return []entity.ExchangeRatePoint{
		{Date: day(2), Mid: decimal.RequireFromString("3.9432")},
		{Date: day(3), Mid: decimal.RequireFromString("3.9900")},
		{Date: day(4), Mid: decimal.RequireFromString("3.9623")},
	}
}

func TestChartModels(t *testing.T) {
	days := OverDays("usd", 7, samplePoints())
	assert.Equal(t, entity.CurrencyCode("USD"), days.Code)
	assert.Equal(t, "USD to PLN Exchange Rate Over Last 7 Days", days.Title)
	assert.Equal(t, "Date", days.XLabel)
	assert.Equal(t, "USD to PLN", days.YLabel)
	assert.False(t, days.Empty())

	period := OverPeriod("EUR", nil)
	assert.Equal(t, "EUR to PLN Exchange Rate Over Period", period.Title)
	assert.Equal(t, "EUR to PLN", period.YLabel)
	assert.True(t, period.Empty())
}

func TestWindowRenderer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PNG rendering in short mode")
	}

	t.Run("saves png and opens it", func(t *testing.T) {
		dir := t.TempDir()
		var opened []string
		r := NewWindowRenderer(dir, WithOpener(func(path string) error {
			opened = append(opened, path)
			return nil
		}))

		path, err := r.Show(context.Background(), OverDays("USD", 3, samplePoints()))
		require.NoError(t, err)
		assert.Equal(t, []string{path}, opened)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, strings.HasPrefix(filepath.Base(path), "usd-to-pln-exchange-rate-over-last-3-days-"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	})

	t.Run("viewer failure keeps the file", func(t *testing.T) {
		r := NewWindowRenderer(t.TempDir(), WithOpener(func(string) error {
			return errors.New("no display")
		}))

		path, err := r.Show(context.Background(), OverPeriod("USD", samplePoints()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no display")
		assert.FileExists(t, path)
	})

	t.Run("empty chart is refused", func(t *testing.T) {
		called := false
		r := NewWindowRenderer(t.TempDir(), WithOpener(func(string) error {
			called = true
			return nil
		}))

		path, err := r.Show(context.Background(), OverPeriod("USD", nil))
		assert.ErrorIs(t, err, ErrNoData)
		assert.Empty(t, path)
		assert.False(t, called)
	})
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 5)

	path, err := r.Show(context.Background(), OverDays("USD", 3, samplePoints()))
	require.NoError(t, err)
	assert.Empty(t, path)

	out := buf.String()
	assert.Contains(t, out, "USD to PLN Exchange Rate Over Last 3 Days")
	assert.Contains(t, out, "USD to PLN")
	assert.Contains(t, out, "Date: 2024-01-02 .. 2024-01-04")

	buf.Reset()
	_, err = r.Show(context.Background(), OverPeriod("USD", nil))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, buf.String())
}

func TestRenderersHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderers := map[string]Renderer{
		"window":   NewWindowRenderer(t.TempDir(), WithOpener(func(string) error { return nil })),
		"terminal": NewTerminalRenderer(&bytes.Buffer{}, 0),
	}
	for name, r := range renderers {
		t.Run(name, func(t *testing.T) {
			_, err := r.Show(ctx, OverPeriod("USD", samplePoints()))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
