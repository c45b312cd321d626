// Package testutil provides fake NBP and PokeAPI servers for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// Response is a canned answer for one path
type Response struct {
	Status int
	Body   string
}

// RecordedRequest is what the fake saw for one call
type RecordedRequest struct {
	Path   string
	Query  url.Values
	Vars   map[string]string
	Header http.Header
}

// FakeAPI serves canned responses keyed by URL path. Paths without a canned
// response answer 404 Not Found, like both real APIs do for unknown resources.
type FakeAPI struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []RecordedRequest
}

func newFakeAPI(t testing.TB, register func(r *mux.Router, h http.HandlerFunc)) *FakeAPI {
	t.Helper()

	f := &FakeAPI{responses: make(map[string]Response)}

	router := mux.NewRouter()
	register(router, f.serve)
	router.NotFoundHandler = http.HandlerFunc(f.serve)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Close)

	return f
}

// NewNBPServer starts a fake NBP exchange rate API
func NewNBPServer(t testing.TB) *FakeAPI {
	return newFakeAPI(t, func(r *mux.Router, h http.HandlerFunc) {
		r.HandleFunc("/rates/{table}/{code}/", h).Methods(http.MethodGet)
		r.HandleFunc("/rates/{table}/{code}/{start}/{end}/", h).Methods(http.MethodGet)
		r.HandleFunc("/tables/{table}/", h).Methods(http.MethodGet)
	})
}

// NewPokeAPIServer starts a fake PokeAPI
func NewPokeAPIServer(t testing.TB) *FakeAPI {
	return newFakeAPI(t, func(r *mux.Router, h http.HandlerFunc) {
		r.HandleFunc("/pokemon/{name}", h).Methods(http.MethodGet)
		r.HandleFunc("/ability", h).Methods(http.MethodGet)
		r.HandleFunc("/type", h).Methods(http.MethodGet)
		r.HandleFunc("/type/{name}", h).Methods(http.MethodGet)
	})
}

// Respond registers a canned response for path
func (f *FakeAPI) Respond(path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = Response{Status: status, Body: body}
}

// RespondJSON registers a 200 response for path
func (f *FakeAPI) RespondJSON(path, body string) {
	f.Respond(path, http.StatusOK, body)
}

// Requests returns every request received so far
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Paths returns the path of every request received so far
func (f *FakeAPI) Paths() []string {
	reqs := f.Requests()
	paths := make([]string, 0, len(reqs))
	for _, r := range reqs {
		paths = append(paths, r.Path)
	}
	return paths
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Vars:   mux.Vars(r),
		Header: r.Header.Clone(),
	})
	resp, ok := f.responses[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// RatePoint is one entry of an NBP rates payload
type RatePoint struct {
	Date string
	Mid  float64
}

// NBPRatesJSON builds a /rates/{table}/{code}/ payload
func NBPRatesJSON(table, code string, points ...RatePoint) string {
	type rate struct {
		No            string  `json:"no"`
		EffectiveDate string  `json:"effectiveDate"`
		Mid           float64 `json:"mid"`
	}
	rates := make([]rate, 0, len(points))
	for i, p := range points {
		rates = append(rates, rate{
			No:            fmt.Sprintf("%03d/%s/NBP/2024", i+1, table),
			EffectiveDate: p.Date,
			Mid:           p.Mid,
		})
	}
	return mustJSON(map[string]interface{}{
		"table":    table,
		"currency": code,
		"code":     code,
		"rates":    rates,
	})
}

// NBPTableJSON builds a /tables/{table}/ payload listing codes
func NBPTableJSON(table string, codes ...string) string {
	rates := make([]map[string]interface{}, 0, len(codes))
	for _, c := range codes {
		rates = append(rates, map[string]interface{}{
			"currency": c,
			"code":     c,
			"mid":      1.0,
		})
	}
	return mustJSON([]map[string]interface{}{{
		"table":         table,
		"no":            "001/" + table + "/NBP/2024",
		"effectiveDate": "2024-01-02",
		"rates":         rates,
	}})
}

// PokemonJSON builds a /pokemon/{name} payload
func PokemonJSON(name string, height, weight int, abilities, moves []string) string {
	abilityEntries := make([]map[string]interface{}, 0, len(abilities))
	for i, a := range abilities {
		abilityEntries = append(abilityEntries, map[string]interface{}{
			"ability":   map[string]string{"name": a, "url": "https://pokeapi.co/api/v2/ability/" + a + "/"},
			"is_hidden": false,
			"slot":      i + 1,
		})
	}
	moveEntries := make([]map[string]interface{}, 0, len(moves))
	for _, m := range moves {
		moveEntries = append(moveEntries, map[string]interface{}{
			"move": map[string]string{"name": m, "url": "https://pokeapi.co/api/v2/move/" + m + "/"},
		})
	}
	return mustJSON(map[string]interface{}{
		"name":      name,
		"height":    height,
		"weight":    weight,
		"abilities": abilityEntries,
		"moves":     moveEntries,
	})
}

// ListingJSON builds a named resource listing such as /ability or /type
func ListingJSON(names ...string) string {
	results := make([]map[string]string, 0, len(names))
	for _, n := range names {
		results = append(results, map[string]string{"name": n, "url": "https://pokeapi.co/api/v2/" + n + "/"})
	}
	return mustJSON(map[string]interface{}{
		"count":   len(names),
		"results": results,
	})
}

// TypeJSON builds a /type/{name} payload
func TypeJSON(typeName string, pokemon ...string) string {
	entries := make([]map[string]interface{}, 0, len(pokemon))
	for i, p := range pokemon {
		entries = append(entries, map[string]interface{}{
			"pokemon": map[string]string{"name": p, "url": "https://pokeapi.co/api/v2/pokemon/" + p + "/"},
			"slot":    i%2 + 1,
		})
	}
	return mustJSON(map[string]interface{}{
		"name":    typeName,
		"pokemon": entries,
	})
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
