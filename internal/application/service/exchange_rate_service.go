// Package service internal/application/service/exchange_rate_service.go
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	ports "github.com/damon-houk/nbp-pokeapi-console/internal/domain/service"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
	"github.com/shopspring/decimal"
)

// ExchangeRateService answers rate questions by querying table A and falling
// back to table B. Remote failures are logged and turned into empty results.
type ExchangeRateService struct {
	ratesAPI ports.RatesAPI
	logger   logger.Logger
	now      func() time.Time
}

// ExchangeRateOption configures an ExchangeRateService
type ExchangeRateOption func(*ExchangeRateService)

// WithClock overrides the clock used to compute "today"
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *ExchangeRateService) { s.now = now }
}

// NewExchangeRateService creates a new exchange rate service
func NewExchangeRateService(ratesAPI ports.RatesAPI, log logger.Logger, opts ...ExchangeRateOption) *ExchangeRateService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	s := &ExchangeRateService{
		ratesAPI: ratesAPI,
		logger:   log,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetCurrentExchangeRate returns the latest mid rate of code in PLN.
// The boolean is false when neither table could answer.
func (s *ExchangeRateService) GetCurrentExchangeRate(ctx context.Context, code entity.CurrencyCode) (decimal.Decimal, bool) {
	ctx = middleware.EnsureRequestID(ctx)
	requestID := middleware.GetRequestID(ctx)
	code = entity.NormalizeCurrencyCode(code.String())

	for _, table := range entity.FallbackTables {
		point, err := s.ratesAPI.FetchLatestRate(ctx, table, code)
		if err != nil {
			logRemoteFailure(s.logger, "Failed to fetch current exchange rate", err, map[string]interface{}{
				"request_id": requestID,
				"table":      table,
				"currency":   code,
			})
			continue
		}

		s.logger.Info("Found current exchange rate", map[string]interface{}{
			"request_id": requestID,
			"table":      table,
			"currency":   code,
			"mid":        point.Mid.String(),
			"rate_date":  point.Date.Format(api.DateLayout),
		})
		return point.Mid, true
	}

	s.logger.Error("Unable to fetch current exchange rate from any table", map[string]interface{}{
		"request_id": requestID,
		"currency":   code,
	})
	return decimal.Zero, false
}

// GetExchangeRateForPeriod returns the mid rates of code published between
// start and end inclusive, oldest first. Points outside the range are dropped. It returns an empty slice when
// neither table could answer.
func (s *ExchangeRateService) GetExchangeRateForPeriod(ctx context.Context, code entity.CurrencyCode, start, end time.Time) []entity.ExchangeRatePoint {
	ctx = middleware.EnsureRequestID(ctx)
	requestID := middleware.GetRequestID(ctx)
	code = entity.NormalizeCurrencyCode(code.String())

	for _, table := range entity.FallbackTables {
		points, err := s.ratesAPI.FetchRatesForPeriod(ctx, table, code, start, end)
		if err != nil {
			logRemoteFailure(s.logger, "Failed to fetch exchange rates for period", err, map[string]interface{}{
				"request_id": requestID,
				"table":      table,
				"currency":   code,
				"start":      start.Format(api.DateLayout),
				"end":        end.Format(api.DateLayout),
			})
			continue
		}

		sorted := clipToPeriod(points, start, end)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

		s.logger.Info("Found exchange rates for period", map[string]interface{}{
			"request_id": requestID,
			"table":      table,
			"currency":   code,
			"points":     len(sorted),
		})
		return sorted
	}

	s.logger.Error("Unable to fetch exchange rates for period from any table", map[string]interface{}{
		"request_id": requestID,
		"currency":   code,
		"start":      start.Format(api.DateLayout),
		"end":        end.Format(api.DateLayout),
	})
	return []entity.ExchangeRatePoint{}
}

// GetExchangeRateForLastDays returns the mid rates of code for [today-days, today]
func (s *ExchangeRateService) GetExchangeRateForLastDays(ctx context.Context, code entity.CurrencyCode, days int) []entity.ExchangeRatePoint {
	end := s.Today()
	start := end.AddDate(0, 0, -days)
	return s.GetExchangeRateForPeriod(ctx, code, start, end)
}

// Today returns the current date at midnight in the clock's location
func (s *ExchangeRateService) Today() time.Time {
	now := s.now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// GetAvailableCurrencies merges the codes of both tables. A table that cannot
// be fetched is logged and skipped.
func (s *ExchangeRateService) GetAvailableCurrencies(ctx context.Context) entity.CurrencySet {
	ctx = middleware.EnsureRequestID(ctx)
	requestID := middleware.GetRequestID(ctx)

	currencies := entity.NewCurrencySet()
	for _, table := range entity.FallbackTables {
		codes, err := s.ratesAPI.FetchTableCodes(ctx, table)
		if err != nil {
			logRemoteFailure(s.logger, "Failed to fetch currencies for table", err, map[string]interface{}{
				"request_id": requestID,
				"table":      table,
			})
			continue
		}
		currencies.Add(codes...)
	}

	s.logger.Debug("Fetched available currencies", map[string]interface{}{
		"request_id": requestID,
		"count":      currencies.Len(),
	})
	return currencies
}

// IsValidCurrency reports whether code, in any case, is listed by NBP right now.
// Every call fetches the listing again.
func (s *ExchangeRateService) IsValidCurrency(ctx context.Context, code entity.CurrencyCode) bool {
	return s.GetAvailableCurrencies(ctx).Contains(code)
}

// clipToPeriod copies the points whose calendar date lies in [start, end].
// Dates are compared as YYYY-MM-DD so the clock's location does not matter.
func clipToPeriod(points []entity.ExchangeRatePoint, start, end time.Time) []entity.ExchangeRatePoint {
	from, to := start.Format(api.DateLayout), end.Format(api.DateLayout)

	clipped := make([]entity.ExchangeRatePoint, 0, len(points))
	for _, p := range points {
		d := p.Date.Format(api.DateLayout)
		if d < from || d > to {
			continue
		}
		clipped = append(clipped, p)
	}
	return clipped
}

// logRemoteFailure logs err at warn level with fields describing its kind
func logRemoteFailure(log logger.Logger, msg string, err error, fields map[string]interface{}) {
	fields["error"] = err.Error()

	var statusErr *api.HTTPStatusError
	switch {
	case errors.As(err, &statusErr):
		fields["error_kind"] = "http_status"
		fields["status_code"] = statusErr.StatusCode
		fields["reason"] = statusErr.Reason
	case errors.Is(err, api.ErrMalformedResponse):
		fields["error_kind"] = "malformed_response"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fields["error_kind"] = "cancelled"
	default:
		fields["error_kind"] = "transport"
	}

	log.Warn(msg, fields)
}
