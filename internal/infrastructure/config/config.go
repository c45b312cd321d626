// Package config loads console settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ChartModeWindow renders a PNG and opens it in the desktop viewer
	ChartModeWindow = "window"
	// ChartModeTerminal draws the chart inline on stdout
	ChartModeTerminal = "terminal"
)

// Config holds console configuration.
type Config struct {
	NBPBaseURL     string        `mapstructure:"NBP_BASE_URL" validate:"required,url"`
	PokeAPIBaseURL string        `mapstructure:"POKEAPI_BASE_URL" validate:"required,url"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"min=1ms"`
	LogLevel       string        `mapstructure:"LOG_LEVEL" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	ChartMode      string        `mapstructure:"CHART_MODE" validate:"required,oneof=window terminal"`
	ChartDir       string        `mapstructure:"CHART_DIR" validate:"required"`
	NoColor        bool          `mapstructure:"NO_COLOR"`
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("NBP_BASE_URL", "https://api.nbp.pl/api/exchangerates")
	v.SetDefault("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "WARN")
	v.SetDefault("CHART_MODE", ChartModeWindow)
	v.SetDefault("CHART_DIR", os.TempDir())
	v.SetDefault("NO_COLOR", false)

	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from v
func FromViper(v *viper.Viper) (*Config, error) {
	timeoutStr := v.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", timeoutStr, err)
	}

	// NO_COLOR disables colour when set to any value other than false
	noColor := v.GetString("NO_COLOR")

	cfg := &Config{
		NBPBaseURL:     v.GetString("NBP_BASE_URL"),
		PokeAPIBaseURL: v.GetString("POKEAPI_BASE_URL"),
		HTTPTimeout:    timeout,
		LogLevel:       v.GetString("LOG_LEVEL"),
		ChartMode:      v.GetString("CHART_MODE"),
		ChartDir:       v.GetString("CHART_DIR"),
		NoColor:        noColor != "" && noColor != "false",
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
