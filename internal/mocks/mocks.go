// internal/mocks/mocks.go
package mocks

import (
	"context"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/chart"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRatesAPI mocks the RatesAPI interface
type MockRatesAPI struct {
	mock.Mock
}

func (m *MockRatesAPI) FetchLatestRate(ctx context.Context, table entity.Table, code entity.CurrencyCode) (*entity.ExchangeRatePoint, error) {
	args := m.Called(ctx, table, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExchangeRatePoint), args.Error(1)
}

func (m *MockRatesAPI) FetchRatesForPeriod(ctx context.Context, table entity.Table, code entity.CurrencyCode, start, end time.Time) ([]entity.ExchangeRatePoint, error) {
	args := m.Called(ctx, table, code, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExchangeRatePoint), args.Error(1)
}

func (m *MockRatesAPI) FetchTableCodes(ctx context.Context, table entity.Table) ([]entity.CurrencyCode, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CurrencyCode), args.Error(1)
}

// MockPokemonAPI mocks the PokemonAPI interface
type MockPokemonAPI struct {
	mock.Mock
}

func (m *MockPokemonAPI) FetchPokemon(ctx context.Context, name string) (*entity.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pokemon), args.Error(1)
}

func (m *MockPokemonAPI) FetchPokemonMoves(ctx context.Context, name string) ([]string, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPokemonAPI) FetchAbilityNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPokemonAPI) FetchTypeNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPokemonAPI) FetchPokemonOfType(ctx context.Context, typeName string) ([]string, error) {
	args := m.Called(ctx, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockLogger mocks the logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	args := m.Called(key, value)
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}

// MockExchangeRates mocks the rate lookup used by the currency console
type MockExchangeRates struct {
	mock.Mock
}

func (m *MockExchangeRates) GetCurrentExchangeRate(ctx context.Context, code entity.CurrencyCode) (decimal.Decimal, bool) {
	args := m.Called(ctx, code)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

func (m *MockExchangeRates) GetExchangeRateForLastDays(ctx context.Context, code entity.CurrencyCode, days int) []entity.ExchangeRatePoint {
	args := m.Called(ctx, code, days)
	return args.Get(0).([]entity.ExchangeRatePoint)
}

func (m *MockExchangeRates) GetExchangeRateForPeriod(ctx context.Context, code entity.CurrencyCode, start, end time.Time) []entity.ExchangeRatePoint {
	args := m.Called(ctx, code, start, end)
	return args.Get(0).([]entity.ExchangeRatePoint)
}

func (m *MockExchangeRates) GetAvailableCurrencies(ctx context.Context) entity.CurrencySet {
	args := m.Called(ctx)
	return args.Get(0).(entity.CurrencySet)
}

func (m *MockExchangeRates) IsValidCurrency(ctx context.Context, code entity.CurrencyCode) bool {
	args := m.Called(ctx, code)
	return args.Bool(0)
}

// MockPokedex mocks the pokemon lookup used by the pokedex console
type MockPokedex struct {
	mock.Mock
}

func (m *MockPokedex) GetPokemonInfo(ctx context.Context, name string) (*entity.Pokemon, bool) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entity.Pokemon), args.Bool(1)
}

func (m *MockPokedex) GetPokemonAbilities(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockPokedex) GetPokemonMoves(ctx context.Context, name string) []string {
	args := m.Called(ctx, name)
	return args.Get(0).([]string)
}

func (m *MockPokedex) GetPokemonTypes(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockPokedex) GetPokemonOfType(ctx context.Context, typeName string) []string {
	args := m.Called(ctx, typeName)
	return args.Get(0).([]string)
}

// MockRenderer mocks a chart renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Show(ctx context.Context, c chart.Chart) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}
