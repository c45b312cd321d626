// Package service internal/application/service/pokemon_service.go
package service

import (
	"context"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	ports "github.com/damon-houk/nbp-pokeapi-console/internal/domain/service"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
)

// PokemonService wraps PokeAPI lookups. There is a single source, so any
// failure is logged and returned as an empty result.
type PokemonService struct {
	pokemonAPI ports.PokemonAPI
	logger     logger.Logger
}

// NewPokemonService creates a new pokemon service
func NewPokemonService(pokemonAPI ports.PokemonAPI, log logger.Logger) *PokemonService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &PokemonService{
		pokemonAPI: pokemonAPI,
		logger:     log,
	}
}

// GetPokemonInfo returns the pokemon called name, or false if it could not be fetched
func (s *PokemonService) GetPokemonInfo(ctx context.Context, name string) (*entity.Pokemon, bool) {
	ctx = middleware.EnsureRequestID(ctx)

	pokemon, err := s.pokemonAPI.FetchPokemon(ctx, name)
	if err != nil {
		logRemoteFailure(s.logger, "Failed to fetch pokemon", err, map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"pokemon":    name,
		})
		return nil, false
	}

	return pokemon, true
}

// GetPokemonAbilities returns the names on the first page of the ability listing
func (s *PokemonService) GetPokemonAbilities(ctx context.Context) []string {
	ctx = middleware.EnsureRequestID(ctx)

	abilities, err := s.pokemonAPI.FetchAbilityNames(ctx)
	if err != nil {
		logRemoteFailure(s.logger, "Failed to fetch abilities", err, map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
		})
		return []string{}
	}

	return abilities
}

// GetPokemonMoves returns the move names of the pokemon called name
func (s *PokemonService) GetPokemonMoves(ctx context.Context, name string) []string {
	ctx = middleware.EnsureRequestID(ctx)

	moves, err := s.pokemonAPI.FetchPokemonMoves(ctx, name)
	if err != nil {
		logRemoteFailure(s.logger, "Failed to fetch pokemon moves", err, map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"pokemon":    name,
		})
		return []string{}
	}

	return moves
}

// GetPokemonTypes returns the type names
func (s *PokemonService) GetPokemonTypes(ctx context.Context) []string {
	ctx = middleware.EnsureRequestID(ctx)

	types, err := s.pokemonAPI.FetchTypeNames(ctx)
	if err != nil {
		logRemoteFailure(s.logger, "Failed to fetch types", err, map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
		})
		return []string{}
	}

	return types
}

// GetPokemonOfType returns the names of pokemon that have typeName
func (s *PokemonService) GetPokemonOfType(ctx context.Context, typeName string) []string {
	ctx = middleware.EnsureRequestID(ctx)

	names, err := s.pokemonAPI.FetchPokemonOfType(ctx, typeName)
	if err != nil {
		logRemoteFailure(s.logger, "Failed to fetch pokemon of type", err, map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"type":       typeName,
		})
		return []string{}
	}

	return names
}
