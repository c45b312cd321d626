// Package cli internal/infrastructure/cli/currency_menu.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/chart"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ExchangeRates is the rate lookup used by the currency menu
type ExchangeRates interface {
	GetCurrentExchangeRate(ctx context.Context, code entity.CurrencyCode) (decimal.Decimal, bool)
	GetExchangeRateForLastDays(ctx context.Context, code entity.CurrencyCode, days int) []entity.ExchangeRatePoint
	GetExchangeRateForPeriod(ctx context.Context, code entity.CurrencyCode, start, end time.Time) []entity.ExchangeRatePoint
	GetAvailableCurrencies(ctx context.Context) entity.CurrencySet
	IsValidCurrency(ctx context.Context, code entity.CurrencyCode) bool
}

type daysInput struct {
	Days int `validate:"min=0"`
}

type periodInput struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

// CurrencyConsole implements the options of the exchange rate menu
type CurrencyConsole struct {
	rates    ExchangeRates
	renderer chart.Renderer
	prompter *Prompter
	out      io.Writer
	logger   logger.Logger
	validate *validator.Validate
}

// NewCurrencyConsole creates the currency console
func NewCurrencyConsole(rates ExchangeRates, renderer chart.Renderer, prompter *Prompter, out io.Writer, log logger.Logger) *CurrencyConsole {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CurrencyConsole{
		rates:    rates,
		renderer: renderer,
		prompter: prompter,
		out:      out,
		logger:   log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Menu returns the five option exchange rate menu
func (c *CurrencyConsole) Menu() *Menu {
	return NewMenu(c.prompter, c.out, c.logger, nil,
		Option{Label: "Get current exchange rate", Action: c.CurrentRate},
		Option{Label: "Get exchange rate for last days", Action: c.RatesForLastDays},
		Option{Label: "Get exchange rate for a period", Action: c.RatesForPeriod},
		Option{Label: "Display all available currencies", Action: c.ListCurrencies},
		Option{Label: "Exit", Action: c.exit, Exit: true},
	)
}

// CurrentRate asks for a code and prints its latest rate
func (c *CurrencyConsole) CurrentRate(ctx context.Context) error {
	code, ok, err := c.askCurrency(ctx, "Enter the currency code: ", "Invalid currency code.")
	if err != nil || !ok {
		return err
	}

	rate, found := c.rates.GetCurrentExchangeRate(ctx, code)
	if !found {
		errorStyle.Fprintln(c.out, "Error: Unable to fetch current exchange rate. Please check your input.")
		return nil
	}

	resultStyle.Fprintf(c.out, "Current exchange rate for 1 %s is %s PLN\n", code, rate.String())
	return nil
}

// RatesForLastDays asks for a code and a number of days and charts the rates
func (c *CurrencyConsole) RatesForLastDays(ctx context.Context) error {
	code, ok, err := c.askCurrency(ctx, "Enter the currency code (e.g., USD): ", "Invalid currency code. Please try again.")
	if err != nil || !ok {
		return err
	}

	raw, err := c.prompter.Ask("Enter the number of days: ")
	if err != nil {
		return err
	}

	days, convErr := strconv.Atoi(raw)
	if convErr != nil || c.validate.Struct(daysInput{Days: days}) != nil {
		c.logger.Debug("Rejected number of days", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"input":      raw,
		})
		errorStyle.Fprintln(c.out, "Invalid number of days. Please enter a whole number of zero or more.")
		return nil
	}

	points := c.rates.GetExchangeRateForLastDays(ctx, code, days)
	return c.show(ctx, chart.OverDays(code, days, points))
}

// RatesForPeriod asks for a code and a date range and charts the rates
func (c *CurrencyConsole) RatesForPeriod(ctx context.Context) error {
	code, ok, err := c.askCurrency(ctx, "Enter the currency code (e.g., USD): ", "Invalid currency code. Please try again.")
	if err != nil || !ok {
		return err
	}

	var in periodInput
	if in.Start, err = c.prompter.Ask("Enter the start date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if in.End, err = c.prompter.Ask("Enter the end date (YYYY-MM-DD): "); err != nil {
		return err
	}

	start, end, err := c.parsePeriod(in)
	if err != nil {
		c.logger.Debug("Rejected date range", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"start":      in.Start,
			"end":        in.End,
			"error":      err.Error(),
		})
		errorStyle.Fprintf(c.out, "Invalid date range: %v\n", err)
		return nil
	}

	points := c.rates.GetExchangeRateForPeriod(ctx, code, start, end)
	return c.show(ctx, chart.OverPeriod(code, points))
}

// ListCurrencies prints every code currently listed in tables A and B
func (c *CurrencyConsole) ListCurrencies(ctx context.Context) error {
	currencies := c.rates.GetAvailableCurrencies(ctx)

	headingStyle.Fprintln(c.out, "Available currencies:")
	for _, code := range currencies.Sorted() {
		fmt.Fprintln(c.out, code)
	}
	return nil
}

func (c *CurrencyConsole) exit(context.Context) error {
	fmt.Fprintln(c.out, "Exiting...")
	return nil
}

// askCurrency reads a code and checks it against the live listing. ok is
// false when the code was rejected and the rejection has been printed.
func (c *CurrencyConsole) askCurrency(ctx context.Context, prompt, rejection string) (entity.CurrencyCode, bool, error) {
	raw, err := c.prompter.Ask(prompt)
	if err != nil {
		return "", false, err
	}

	code := entity.NormalizeCurrencyCode(raw)
	if code == "" || !c.rates.IsValidCurrency(ctx, code) {
		errorStyle.Fprintln(c.out, rejection)
		return "", false, nil
	}
	return code, true, nil
}

func (c *CurrencyConsole) parsePeriod(in periodInput) (time.Time, time.Time, error) {
	if err := c.validate.Struct(in); err != nil {
		return time.Time{}, time.Time{}, errors.New("dates must use the YYYY-MM-DD format")
	}

	start, err := time.Parse(api.DateLayout, in.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(api.DateLayout, in.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.New("start date must not be after end date")
	}

	return start, end, nil
}

// show renders ch, waiting for the user when it was opened outside the terminal
func (c *CurrencyConsole) show(ctx context.Context, ch chart.Chart) error {
	if ch.Empty() {
		fmt.Fprintln(c.out, "No exchange rate data to plot.")
		return nil
	}

	path, err := c.renderer.Show(ctx, ch)
	if path != "" {
		fmt.Fprintf(c.out, "Chart saved to %s\n", path)
	}
	if err != nil {
		c.logger.Warn("Failed to display chart", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"currency":   ch.Code,
			"error":      err.Error(),
		})
		errorStyle.Fprintf(c.out, "Error: Unable to display chart: %v\n", err)
	}
	if path == "" {
		return nil
	}

	_, err = c.prompter.Ask("Press Enter to return to the menu")
	return err
}
