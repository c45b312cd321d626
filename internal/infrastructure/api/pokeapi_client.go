package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
)

// DefaultPokeAPIBaseURL is the public PokeAPI v2 endpoint
const DefaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"

// PokeAPIClient talks to PokeAPI
type PokeAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPokeAPIClient creates a new PokeAPI client. An empty baseURL selects the
// public API and a nil httpClient gets a client with a 10 second timeout.
func NewPokeAPIClient(baseURL string, httpClient *http.Client) *PokeAPIClient {
	return &PokeAPIClient{
		baseURL:    trimBaseURL(baseURL, DefaultPokeAPIBaseURL),
		httpClient: defaultHTTPClient(httpClient),
	}
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonResponse keeps pointers so absent fields can be told apart from zero values
type pokemonResponse struct {
	Name      *string `json:"name"`
	Height    *int    `json:"height"`
	Weight    *int    `json:"weight"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Moves []struct {
		Move namedResource `json:"move"`
	} `json:"moves"`
}

type listingResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type typeResponse struct {
	Name    string `json:"name"`
	Pokemon []struct {
		Pokemon namedResource `json:"pokemon"`
		Slot    int           `json:"slot"`
	} `json:"pokemon"`
}

// FetchPokemon retrieves a pokemon by name. The payload must carry name,
// height, weight and abilities.
func (c *PokeAPIClient) FetchPokemon(ctx context.Context, name string) (*entity.Pokemon, error) {
	resp, err := c.fetchPokemonResource(ctx, name)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.Name == nil:
		return nil, malformed("pokemon %q has no name", name)
	case resp.Height == nil:
		return nil, malformed("pokemon %q has no height", name)
	case resp.Weight == nil:
		return nil, malformed("pokemon %q has no weight", name)
	case resp.Abilities == nil:
		return nil, malformed("pokemon %q has no abilities", name)
	}

	pokemon := &entity.Pokemon{
		Name:      *resp.Name,
		Height:    *resp.Height,
		Weight:    *resp.Weight,
		Abilities: make([]string, 0, len(resp.Abilities)),
		Moves:     make([]string, 0, len(resp.Moves)),
	}
	for _, a := range resp.Abilities {
		pokemon.Abilities = append(pokemon.Abilities, a.Ability.Name)
	}
	for _, m := range resp.Moves {
		pokemon.Moves = append(pokemon.Moves, m.Move.Name)
	}

	return pokemon, nil
}

// FetchPokemonMoves retrieves the move names of a pokemon
func (c *PokeAPIClient) FetchPokemonMoves(ctx context.Context, name string) ([]string, error) {
	resp, err := c.fetchPokemonResource(ctx, name)
	if err != nil {
		return nil, err
	}
	if resp.Moves == nil {
		return nil, malformed("pokemon %q has no moves", name)
	}

	moves := make([]string, 0, len(resp.Moves))
	for _, m := range resp.Moves {
		moves = append(moves, m.Move.Name)
	}
	return moves, nil
}

// FetchAbilityNames retrieves the first page of the ability listing
func (c *PokeAPIClient) FetchAbilityNames(ctx context.Context) ([]string, error) {
	return c.fetchListing(ctx, c.baseURL+"/ability")
}

// FetchTypeNames retrieves the type listing
func (c *PokeAPIClient) FetchTypeNames(ctx context.Context) ([]string, error) {
	return c.fetchListing(ctx, c.baseURL+"/type")
}

// FetchPokemonOfType retrieves the names of pokemon that have the given type
func (c *PokeAPIClient) FetchPokemonOfType(ctx context.Context, typeName string) ([]string, error) {
	reqURL := fmt.Sprintf("%s/type/%s", c.baseURL, url.PathEscape(normalizeName(typeName)))

	var resp typeResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &resp); err != nil {
		return nil, err
	}
	if resp.Pokemon == nil {
		return nil, malformed("type %q has no pokemon list", typeName)
	}

	names := make([]string, 0, len(resp.Pokemon))
	for _, p := range resp.Pokemon {
		names = append(names, p.Pokemon.Name)
	}
	return names, nil
}

func (c *PokeAPIClient) fetchPokemonResource(ctx context.Context, name string) (*pokemonResponse, error) {
	reqURL := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(normalizeName(name)))

	var resp pokemonResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *PokeAPIClient) fetchListing(ctx context.Context, reqURL string) ([]string, error) {
	var resp listingResponse
	if err := getJSON(ctx, c.httpClient, reqURL, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		return nil, malformed("missing results in response from %s", reqURL)
	}

	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
