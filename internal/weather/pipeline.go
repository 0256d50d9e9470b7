package weather

import (
	"context"
	"log/slog"

	"github.com/i474232898/weather-dashboard/internal/metrics"
)

// Pipeline resolves the caller's location, fetches current conditions for
// it, and normalizes the result.
type Pipeline struct {
	resolver  LocationResolver
	fetcher   Fetcher
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewPipeline creates a Pipeline. publisher may be nil.
func NewPipeline(resolver LocationResolver, fetcher Fetcher, publisher Publisher, logger *slog.Logger, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		fetcher:   fetcher,
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

// GetSnapshot runs the pipeline and returns only the weather snapshot.
func (p *Pipeline) GetSnapshot(ctx context.Context) (WeatherSnapshot, error) {
	report, err := p.GetReport(ctx)
	if err != nil {
		return WeatherSnapshot{}, err
	}
	return report.Weather, nil
}

// GetReport runs the pipeline. Errors are *PipelineError naming the first
// stage that failed; the weather fetch is skipped if location fails.
func (p *Pipeline) GetReport(ctx context.Context) (Report, error) {
	loc, err := p.resolver.Resolve(ctx)
	if err != nil {
		return Report{}, p.fail(StageLocation, err)
	}

	raw, err := p.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude, loc.Timezone)
	if err != nil {
		return Report{}, p.fail(StageWeather, err)
	}

	snapshot := Summarize(raw)
	p.publish(snapshot)

	p.logger.Debug("weather pipeline completed",
		"city", loc.City, "country", loc.Country,
		"temperature", snapshot.Temperature, "condition", snapshot.Condition)

	return Report{
		Location: loc,
		Weather:  snapshot,
		Theme:    DeriveTheme(snapshot),
	}, nil
}

func (p *Pipeline) fail(stage Stage, err error) error {
	p.metrics.WeatherFailures.WithLabelValues(string(stage)).Inc()
	p.logger.Warn("weather pipeline failed", "stage", stage, "error", err)
	return &PipelineError{Stage: stage, Err: err}
}

// publish is best effort: a failing publisher never fails the pipeline.
func (p *Pipeline) publish(snapshot WeatherSnapshot) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(snapshot); err != nil {
		p.logger.Warn("failed to publish current weather", "error", err)
	}
}
