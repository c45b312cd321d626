package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"NBP_BASE_URL", "POKEAPI_BASE_URL", "HTTP_TIMEOUT", "LOG_LEVEL", "CHART_MODE", "CHART_DIR", "NO_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.nbp.pl/api/exchangerates", cfg.NBPBaseURL)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, ChartModeWindow, cfg.ChartMode)
	assert.Equal(t, os.TempDir(), cfg.ChartDir)
	assert.False(t, cfg.NoColor)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NBP_BASE_URL", "http://localhost:9000/api/exchangerates")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHART_MODE", "terminal")
	t.Setenv("CHART_DIR", "/tmp/charts")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api/exchangerates", cfg.NBPBaseURL)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ChartModeTerminal, cfg.ChartMode)
	assert.Equal(t, "/tmp/charts", cfg.ChartDir)
	assert.True(t, cfg.NoColor)
}

func TestFromViperRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
		want  string
	}{
		"bad url":        {key: "NBP_BASE_URL", value: "not a url", want: "NBPBaseURL"},
		"bad timeout":    {key: "HTTP_TIMEOUT", value: "soon", want: "HTTP_TIMEOUT"},
		"zero timeout":   {key: "HTTP_TIMEOUT", value: "0s", want: "HTTPTimeout"},
		"bad chart mode": {key: "CHART_MODE", value: "svg", want: "ChartMode"},
		"bad log level":  {key: "LOG_LEVEL", value: "chatty", want: "LogLevel"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			v.Set("NBP_BASE_URL", "https://api.nbp.pl/api/exchangerates")
			v.Set("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2")
			v.Set("HTTP_TIMEOUT", "10s")
			v.Set("LOG_LEVEL", "WARN")
			v.Set("CHART_MODE", "window")
			v.Set("CHART_DIR", "/tmp")
			v.Set(tt.key, tt.value)

			cfg, err := FromViper(v)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
