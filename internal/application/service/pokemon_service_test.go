// internal/application/service/pokemon_service_test.go
package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/mocks"
	"github.com/damon-houk/nbp-pokeapi-console/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPokemonServiceSuccess(t *testing.T) {
	pokemonAPI := new(mocks.MockPokemonAPI)
	log := logger.NewJSONLogger(&bytes.Buffer{}, logger.InfoLevel)
	svc := NewPokemonService(pokemonAPI, log)
	ctx := context.Background()

	pikachu := &entity.Pokemon{Name: "pikachu", Height: 4, Weight: 60, Abilities: []string{"static"}}

	pokemonAPI.On("FetchPokemon", mock.Anything, "Pikachu").Return(pikachu, nil).Once()
	pokemonAPI.On("FetchPokemonMoves", mock.Anything, "pikachu").Return([]string{"tackle", "growl"}, nil).Once()
	pokemonAPI.On("FetchAbilityNames", mock.Anything).Return([]string{"stench", "drizzle"}, nil).Once()
	pokemonAPI.On("FetchTypeNames", mock.Anything).Return([]string{"normal", "fire"}, nil).Once()
	pokemonAPI.On("FetchPokemonOfType", mock.Anything, "fire").Return([]string{"charmander"}, nil).Once()

	info, ok := svc.GetPokemonInfo(ctx, "Pikachu")
	assert.True(t, ok)
	assert.Equal(t, pikachu, info)

	assert.Equal(t, []string{"tackle", "growl"}, svc.GetPokemonMoves(ctx, "pikachu"))
	assert.Equal(t, []string{"stench", "drizzle"}, svc.GetPokemonAbilities(ctx))
	assert.Equal(t, []string{"normal", "fire"}, svc.GetPokemonTypes(ctx))
	assert.Equal(t, []string{"charmander"}, svc.GetPokemonOfType(ctx, "fire"))

	pokemonAPI.AssertExpectations(t)
}

func TestPokemonServiceFailuresDegradeToEmpty(t *testing.T) {
	var buf bytes.Buffer
	pokemonAPI := new(mocks.MockPokemonAPI)
	log := logger.NewJSONLogger(&buf, logger.WarnLevel)
	svc := NewPokemonService(pokemonAPI, log)
	ctx := context.Background()

	notFound := &api.HTTPStatusError{StatusCode: http.StatusNotFound, Reason: "Not Found"}
	transport := errors.New("failed to execute request: dial tcp: lookup pokeapi.co: no such host")

	pokemonAPI.On("FetchPokemon", mock.Anything, "missingno").Return(nil, notFound).Once()
	pokemonAPI.On("FetchPokemonMoves", mock.Anything, "missingno").Return(nil, notFound).Once()
	pokemonAPI.On("FetchAbilityNames", mock.Anything).Return(nil, transport).Once()
	pokemonAPI.On("FetchTypeNames", mock.Anything).Return(nil, api.ErrMalformedResponse).Once()
	pokemonAPI.On("FetchPokemonOfType", mock.Anything, "shadow").Return(nil, notFound).Once()

	info, ok := svc.GetPokemonInfo(ctx, "missingno")
	assert.False(t, ok)
	assert.Nil(t, info)

	assert.Empty(t, svc.GetPokemonMoves(ctx, "missingno"))
	assert.Empty(t, svc.GetPokemonAbilities(ctx))
	assert.Empty(t, svc.GetPokemonTypes(ctx))
	assert.Empty(t, svc.GetPokemonOfType(ctx, "shadow"))

	logs := buf.String()
	assert.Contains(t, logs, "Failed to fetch pokemon")
	assert.Contains(t, logs, `"error_kind":"transport"`)
	assert.Contains(t, logs, `"error_kind":"malformed_response"`)
	assert.Contains(t, logs, `"status_code":404`)

	pokemonAPI.AssertExpectations(t)
}

func TestPokemonServiceWithPokeAPIClient(t *testing.T) {
	fake := testutil.NewPokeAPIServer(t)
	fake.RespondJSON("/pokemon/pikachu", `{"moves":[{"move":{"name":"tackle"}},{"move":{"name":"growl"}}]}`)
	fake.RespondJSON("/type/fire", testutil.TypeJSON("fire", "charmander", "charmeleon"))

	log := logger.NewJSONLogger(&bytes.Buffer{}, logger.InfoLevel)
	svc := NewPokemonService(api.NewPokeAPIClient(fake.URL, nil), log)
	ctx := context.Background()

	assert.Equal(t, []string{"tackle", "growl"}, svc.GetPokemonMoves(ctx, "pikachu"))
	assert.Equal(t, []string{"charmander", "charmeleon"}, svc.GetPokemonOfType(ctx, "FIRE"))

	// The moves-only payload lacks the info fields
	_, ok := svc.GetPokemonInfo(ctx, "pikachu")
	assert.False(t, ok)

	// Unknown resources answer 404
	assert.Empty(t, svc.GetPokemonAbilities(ctx))

	require.Len(t, fake.Requests(), 4)
	for _, r := range fake.Requests() {
		assert.NotEmpty(t, r.Header.Get("Accept"))
	}
}
