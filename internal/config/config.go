package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultLocationEndpoint = "https://ipapi.co/json/"
	defaultWeatherEndpoint  = "https://api.open-meteo.com/v1/forecast"
	defaultQuoteEndpoint    = "https://api.quotable.io/random?maxLength=150&tags=inspirational|motivational|success|life"
)

type AppConfig struct {
	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level
	Port     string `validate:"required,numeric"`

	// HTTPTimeout bounds every outbound collaborator request.
	HTTPTimeout time.Duration `validate:"gt=0"`

	LocationEndpoint string `validate:"required,url"`
	WeatherEndpoint  string `validate:"required,url"`
	QuoteEndpoint    string `validate:"required,url"`

	// QuoteCacheDuration is how long a fetched quote is served from cache.
	QuoteCacheDuration time.Duration `validate:"gt=0"`
	QuoteCacheKey      string        `validate:"required"`
	QuoteCachePath     string        // empty = in-memory

	// WeatherRefreshInterval controls how often the scheduler refreshes the
	// current weather (0 = disabled).
	WeatherRefreshInterval time.Duration `validate:"gte=0"`

	// BreakerMaxFailures opens a collaborator's circuit after that many
	// consecutive failures (0 = disabled, every call reaches the service).
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration `validate:"gt=0"`

	// Pinned location: when PinnedCity is set the geocoder replaces the
	// IP-based location endpoint.
	PinnedCity     string
	PinnedRegion   string
	PinnedCountry  string
	PinnedTimezone string `validate:"required"`
	GeocoderAPIKey string `validate:"required_with=PinnedCity"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	cfg.AppEnv = strings.ToLower(getenvDefault("APP_ENV", "dev"))
	if cfg.LogLevel, err = parseLogLevel(getenvDefault("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	cfg.Port = getenvDefault("PORT", "8080")

	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.LocationEndpoint = getenvDefault("LOCATION_ENDPOINT", defaultLocationEndpoint)
	cfg.WeatherEndpoint = getenvDefault("WEATHER_ENDPOINT", defaultWeatherEndpoint)
	cfg.QuoteEndpoint = getenvDefault("QUOTE_ENDPOINT", defaultQuoteEndpoint)

	if cfg.QuoteCacheDuration, err = getenvDuration("QUOTE_CACHE_DURATION", "24h"); err != nil {
		return nil, err
	}
	cfg.QuoteCacheKey = getenvDefault("QUOTE_CACHE_KEY", "weather-app-quote")
	cfg.QuoteCachePath = os.Getenv("QUOTE_CACHE_PATH")

	if cfg.WeatherRefreshInterval, err = getenvDuration("WEATHER_REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	if cfg.BreakerMaxFailures, err = getenvUint32("BREAKER_MAX_FAILURES", 0); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = getenvDuration("BREAKER_OPEN_TIMEOUT", "1m"); err != nil {
		return nil, err
	}

	cfg.PinnedCity = strings.TrimSpace(os.Getenv("PINNED_CITY"))
	cfg.PinnedRegion = strings.TrimSpace(os.Getenv("PINNED_REGION"))
	cfg.PinnedCountry = strings.TrimSpace(os.Getenv("PINNED_COUNTRY"))
	cfg.PinnedTimezone = getenvDefault("PINNED_TIMEZONE", "UTC")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Pinned reports whether a fixed location replaces IP-based lookup.
func (c *AppConfig) Pinned() bool {
	return c.PinnedCity != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvUint32(key string, def uint32) (uint32, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return uint32(n), nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	s := getenvDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
