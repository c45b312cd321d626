// Package chart internal/infrastructure/chart/chart.go
package chart

import (
	"context"
	"fmt"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
)

// Chart is a titled rate series ready to be drawn
type Chart struct {
	Code   entity.CurrencyCode
	Title  string
	XLabel string
	YLabel string
	Points []entity.ExchangeRatePoint
}

// Renderer draws a chart somewhere the user can see it. The returned string
// is the location of the rendered artefact, or empty when it was written inline.
type Renderer interface {
	Show(ctx context.Context, c Chart) (string, error)
}

// OverDays builds the chart for the rates of the last days days
func OverDays(code entity.CurrencyCode, days int, points []entity.ExchangeRatePoint) Chart {
	return newChart(code, fmt.Sprintf("Over Last %d Days", days), points)
}

// OverPeriod builds the chart for the rates of an explicit date range
func OverPeriod(code entity.CurrencyCode, points []entity.ExchangeRatePoint) Chart {
	return newChart(code, "Over Period", points)
}

func newChart(code entity.CurrencyCode, span string, points []entity.ExchangeRatePoint) Chart {
	code = entity.NormalizeCurrencyCode(code.String())
	return Chart{
		Code:   code,
		Title:  fmt.Sprintf("%s to PLN Exchange Rate %s", code, span),
		XLabel: "Date",
		YLabel: fmt.Sprintf("%s to PLN", code),
		Points: points,
	}
}

// Empty reports whether there is nothing to draw
func (c Chart) Empty() bool {
	return len(c.Points) == 0
}
