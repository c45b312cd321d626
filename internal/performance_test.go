package internal

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/damon-houk/nbp-pokeapi-console/internal/application/service"
	"github.com/damon-houk/nbp-pokeapi-console/internal/domain/entity"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
	"github.com/damon-houk/nbp-pokeapi-console/internal/testutil"
)

func TestPerformance(t *testing.T) {
	// Skip in short mode or CI
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	log := logger.NewJSONLogger(io.Discard, logger.ErrorLevel)
	httpClient := middleware.NewHTTPClient(5*time.Second, log, nil)

	// NBP answers USD and EUR from table A and AFN only from table B
	nbp := testutil.NewNBPServer(t)
	nbp.RespondJSON("/tables/A/", testutil.NBPTableJSON("A", "USD", "EUR"))
	nbp.RespondJSON("/tables/B/", testutil.NBPTableJSON("B", "AFN"))
	nbp.RespondJSON("/rates/A/USD/", testutil.NBPRatesJSON("A", "USD", testutil.RatePoint{Date: "2024-01-10", Mid: 3.9432}))
	nbp.RespondJSON("/rates/A/EUR/", testutil.NBPRatesJSON("A", "EUR", testutil.RatePoint{Date: "2024-01-10", Mid: 4.3213}))
	nbp.RespondJSON("/rates/B/AFN/", testutil.NBPRatesJSON("B", "AFN", testutil.RatePoint{Date: "2024-01-10", Mid: 0.0563}))

	pokeapi := testutil.NewPokeAPIServer(t)
	pokeapi.RespondJSON("/pokemon/pikachu", testutil.PokemonJSON("pikachu", 4, 60, []string{"static"}, []string{"tackle", "growl"}))
	pokeapi.RespondJSON("/type/fire", testutil.TypeJSON("fire", "charmander", "vulpix"))

	ratesService := service.NewExchangeRateService(api.NewNBPClient(nbp.URL, httpClient), log)
	pokemonService := service.NewPokemonService(api.NewPokeAPIClient(pokeapi.URL, httpClient), log)

	// Performance test configuration
	numLookups := 200
	concurrency := 10

	run := func(t *testing.T, name string, lookup func(ctx context.Context, i int) bool) {
		startTime := time.Now()

		var mu sync.Mutex
		failures := 0

		wg := sync.WaitGroup{}
		wg.Add(concurrency)

		perWorker := numLookups / concurrency

		for i := 0; i < concurrency; i++ {
			go func(workerID int) {
				defer wg.Done()

				ctx := context.Background()
				for j := 0; j < perWorker; j++ {
					if !lookup(ctx, workerID*perWorker+j) {
						mu.Lock()
						failures++
						mu.Unlock()
					}
				}
			}(i)
		}

		wg.Wait()
		duration := time.Since(startTime)

		if failures > 0 {
			t.Errorf("%s: %d of %d lookups failed", name, failures, numLookups)
		}

		// Calculate throughput
		throughput := float64(numLookups) / duration.Seconds()
		t.Logf("%s: %d lookups in %v (%.2f lookups/sec)", name, numLookups, duration, throughput)
	}

	t.Run("Current Rate", func(t *testing.T) {
		codes := []entity.CurrencyCode{"USD", "EUR", "AFN"}
		run(t, "Current rate", func(ctx context.Context, i int) bool {
			_, ok := ratesService.GetCurrentExchangeRate(ctx, codes[i%len(codes)])
			return ok
		})
	})

	t.Run("Currency Validation", func(t *testing.T) {
		codes := []entity.CurrencyCode{"usd", "Eur", "AFN"}
		run(t, "Currency validation", func(ctx context.Context, i int) bool {
			return ratesService.IsValidCurrency(ctx, codes[i%len(codes)])
		})
	})

	t.Run("Pokemon Lookup", func(t *testing.T) {
		run(t, "Pokemon lookup", func(ctx context.Context, i int) bool {
			if i%2 == 0 {
				_, ok := pokemonService.GetPokemonInfo(ctx, "Pikachu")
				return ok
			}
			return len(pokemonService.GetPokemonOfType(ctx, "fire")) == 2
		})
	})
}
