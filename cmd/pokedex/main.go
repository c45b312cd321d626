package main

import (
	"context"
	"fmt"
	"os"

	"github.com/damon-houk/nbp-pokeapi-console/internal/application/service"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/cli"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/config"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/logger"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/middleware"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewJSONLogger(os.Stderr, level)
	logger.SetDefaultLogger(log)

	color.NoColor = cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	httpClient := middleware.NewHTTPClient(cfg.HTTPTimeout, log, nil)
	pokemonService := service.NewPokemonService(api.NewPokeAPIClient(cfg.PokeAPIBaseURL, httpClient), log)

	log.Info("Starting pokedex console", map[string]interface{}{
		"pokeapi_base_url": cfg.PokeAPIBaseURL,
	})

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	console := cli.NewPokedexConsole(pokemonService, prompter, os.Stdout, log)

	if err := console.Menu().Run(context.Background()); err != nil {
		log.Error("Pokedex console stopped with an error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
