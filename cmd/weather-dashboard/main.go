package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/logging"
	"github.com/i474232898/weather-dashboard/internal/metrics"
	"github.com/i474232898/weather-dashboard/internal/quote"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/upstream"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

const appName = "weather-dashboard"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg, appName)
	m := metrics.New()

	// Shared HTTP client for outbound collaborator calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	breaker := upstream.BreakerConfig{
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerOpenTimeout,
	}

	// Location: pinned place via geocoder, or IP-based lookup.
	var resolver weather.LocationResolver
	if cfg.Pinned() {
		resolver = providers.NewPinnedResolver(cfg.GeocoderAPIKey, providers.PinnedPlace{
			City:     cfg.PinnedCity,
			Region:   cfg.PinnedRegion,
			Country:  cfg.PinnedCountry,
			Timezone: cfg.PinnedTimezone,
		})
		logger.Info("using pinned location", "city", cfg.PinnedCity, "country", cfg.PinnedCountry)
	} else {
		resolver = providers.NewLocationResolver(cfg.LocationEndpoint,
			upstream.NewClient("location", httpClient, breaker, logger, m))
	}

	fetcher := providers.NewOpenMeteoFetcher(cfg.WeatherEndpoint,
		upstream.NewClient("openmeteo", httpClient, breaker, logger, m))

	current := weather.NewCurrentWeather()
	weatherPipeline := weather.NewPipeline(resolver, fetcher, current, logger, m)

	kv := store.Open(cfg.QuoteCachePath, logger)
	defer kv.Close()

	quoteCache := quote.NewCache(kv, quote.CacheConfig{
		Key:      cfg.QuoteCacheKey,
		Duration: cfg.QuoteCacheDuration,
	}, nil, logger, m)
	quoteClient := quote.NewClient(cfg.QuoteEndpoint,
		upstream.NewClient("quotes", httpClient, breaker, logger, m))
	quotePipeline := quote.NewPipeline(quoteCache, quoteClient, logger, m)

	sched := scheduler.New(weatherPipeline, cfg.WeatherRefreshInterval, 2*cfg.HTTPTimeout, logger)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := httpapi.NewApp(httpapi.Options{
		AppName:   appName,
		AccessLog: true,
		Metrics:   promhttp.Handler(),
	}, weatherPipeline, quotePipeline, current)

	go func() {
		logger.Info("http server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
