package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_ENV", "LOG_LEVEL", "PORT", "HTTP_TIMEOUT",
	"LOCATION_ENDPOINT", "WEATHER_ENDPOINT", "QUOTE_ENDPOINT",
	"QUOTE_CACHE_DURATION", "QUOTE_CACHE_KEY", "QUOTE_CACHE_PATH",
	"WEATHER_REFRESH_INTERVAL", "BREAKER_MAX_FAILURES", "BREAKER_OPEN_TIMEOUT",
	"PINNED_CITY", "PINNED_REGION", "PINNED_COUNTRY", "PINNED_TIMEZONE", "GEOCODER_API_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, defaultLocationEndpoint, cfg.LocationEndpoint)
	assert.Equal(t, defaultWeatherEndpoint, cfg.WeatherEndpoint)
	assert.Equal(t, defaultQuoteEndpoint, cfg.QuoteEndpoint)
	assert.Equal(t, 24*time.Hour, cfg.QuoteCacheDuration)
	assert.Equal(t, "weather-app-quote", cfg.QuoteCacheKey)
	assert.Empty(t, cfg.QuoteCachePath)
	assert.Equal(t, 15*time.Minute, cfg.WeatherRefreshInterval)
	assert.Zero(t, cfg.BreakerMaxFailures, "breaker is opt-in")
	assert.Equal(t, time.Minute, cfg.BreakerOpenTimeout)
	assert.Equal(t, "UTC", cfg.PinnedTimezone)
	assert.False(t, cfg.Pinned())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTE_CACHE_DURATION", "10s")
	t.Setenv("QUOTE_CACHE_PATH", "/tmp/quote.db")
	t.Setenv("WEATHER_REFRESH_INTERVAL", "0s")
	t.Setenv("BREAKER_MAX_FAILURES", "3")
	t.Setenv("PINNED_CITY", "Lisbon")
	t.Setenv("PINNED_TIMEZONE", "Europe/Lisbon")
	t.Setenv("GEOCODER_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.QuoteCacheDuration)
	assert.Equal(t, "/tmp/quote.db", cfg.QuoteCachePath)
	assert.Zero(t, cfg.WeatherRefreshInterval)
	assert.Equal(t, uint32(3), cfg.BreakerMaxFailures)
	assert.True(t, cfg.Pinned())
	assert.Equal(t, "Europe/Lisbon", cfg.PinnedTimezone)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"QUOTE_CACHE_DURATION": "soon"}},
		{"zero cache duration", map[string]string{"QUOTE_CACHE_DURATION": "0s"}},
		{"negative refresh", map[string]string{"WEATHER_REFRESH_INTERVAL": "-1m"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
		{"bad app env", map[string]string{"APP_ENV": "staging"}},
		{"bad endpoint", map[string]string{"WEATHER_ENDPOINT": "not a url"}},
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"pinned without key", map[string]string{"PINNED_CITY": "Lisbon"}},
		{"non numeric breaker", map[string]string{"BREAKER_MAX_FAILURES": "many"}},
		{"negative breaker", map[string]string{"BREAKER_MAX_FAILURES": "-1"}},
		{"breaker overflows uint32", map[string]string{"BREAKER_MAX_FAILURES": "4294967296"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
