// Package service internal/domain/service/remote_api.go
package service

import (
	"context"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
)

// RatesAPI defines what the application needs from the NBP exchange rate API.
// Each call targets a single table; fallback between tables is an application concern.
type RatesAPI interface {
	// FetchLatestRate retrieves the most recent mid rate for a currency
	FetchLatestRate(ctx context.Context, table entity.Table, code entity.CurrencyCode) (*entity.ExchangeRatePoint, error)

	// FetchRatesForPeriod retrieves mid rates published between start and end inclusive
	FetchRatesForPeriod(ctx context.Context, table entity.Table, code entity.CurrencyCode, start, end time.Time) ([]entity.ExchangeRatePoint, error)

	// FetchTableCodes retrieves the codes listed in the latest table
	FetchTableCodes(ctx context.Context, table entity.Table) ([]entity.CurrencyCode, error)
}

// PokemonAPI defines what the application needs from PokeAPI
type PokemonAPI interface {
	// FetchPokemon retrieves a single pokemon resource by name
	FetchPokemon(ctx context.Context, name string) (*entity.Pokemon, error)

	// FetchPokemonMoves retrieves only the move names of a pokemon resource
	FetchPokemonMoves(ctx context.Context, name string) ([]string, error)

	// FetchAbilityNames retrieves the first page of the ability listing
	FetchAbilityNames(ctx context.Context) ([]string, error)

	// FetchTypeNames retrieves the type listing
	FetchTypeNames(ctx context.Context) ([]string, error)

	// FetchPokemonOfType retrieves the names of pokemon that have a type
	FetchPokemonOfType(ctx context.Context, typeName string) ([]string, error)
}
