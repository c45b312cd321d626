package main

import (
	"context"
	"fmt"
	"os"

	"github.com/damon-houk/nbp-pokeapi-console/internal/application/service"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/api"
	"github.com/damon-houk/nbp-pokeapi-console/internal/infrastructure/chart"
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

	// Initialize API clients
	httpClient := middleware.NewHTTPClient(cfg.HTTPTimeout, log, nil)
	nbpClient := api.NewNBPClient(cfg.NBPBaseURL, httpClient)

	// Initialize services
	ratesService := service.NewExchangeRateService(nbpClient, log)

	var renderer chart.Renderer
	switch cfg.ChartMode {
	case config.ChartModeTerminal:
		renderer = chart.NewTerminalRenderer(os.Stdout, 0)
	default:
		renderer = chart.NewWindowRenderer(cfg.ChartDir)
	}

	log.Info("Starting currency console", map[string]interface{}{
		"nbp_base_url": cfg.NBPBaseURL,
		"chart_mode":   cfg.ChartMode,
	})

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	console := cli.NewCurrencyConsole(ratesService, renderer, prompter, os.Stdout, log)

	if err := console.Menu().Run(context.Background()); err != nil {
		log.Error("Currency console stopped with an error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
