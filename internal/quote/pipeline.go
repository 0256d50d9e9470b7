package quote

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/i474232898/weather-dashboard/internal/metrics"
)

// Fetcher retrieves a fresh quote from upstream.
type Fetcher interface {
	Fetch(ctx context.Context) (Record, error)
}

// Pipeline serves quotes from the cache, then upstream, then the fallback
// set. It never fails.
type Pipeline struct {
	cache     *Cache
	fetcher   Fetcher
	fallbacks []Record
	intn      func(n int) int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRandom replaces the source used to pick a fallback quote. intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(p *Pipeline) {
		p.intn = intn
	}
}

// WithFallbacks replaces the built-in fallback set. An empty set is ignored.
func WithFallbacks(records []Record) Option {
	return func(p *Pipeline) {
		if len(records) == 0 {
			return
		}
		p.fallbacks = make([]Record, len(records))
		for i, r := range records {
			p.fallbacks[i] = r.Clone()
		}
	}
}

func NewPipeline(cache *Cache, fetcher Fetcher, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		cache:     cache,
		fetcher:   fetcher,
		fallbacks: Fallbacks(),
		intn:      rand.Intn,
		logger:    logger,
		metrics:   m,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetQuote returns the cached quote while it is valid, otherwise fetches a
// new one.
func (p *Pipeline) GetQuote(ctx context.Context) Record {
	if cached, ok := p.cache.Read(); ok {
		return cached.Record.Clone()
	}
	return p.fetch(ctx)
}

// Refresh drops the cached quote and fetches a new one.
func (p *Pipeline) Refresh(ctx context.Context) Record {
	p.cache.Invalidate()
	return p.fetch(ctx)
}

// fetch caches upstream quotes only; a fallback is never cached so the next
// call tries upstream again.
func (p *Pipeline) fetch(ctx context.Context) Record {
	r, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.logger.Warn("quote service failed, using fallback quote", "error", err)
		p.metrics.QuoteFallbacks.Inc()
		return p.fallback()
	}

	p.cache.Write(r)
	return r.Clone()
}

func (p *Pipeline) fallback() Record {
	i := p.intn(len(p.fallbacks))
	if i < 0 || i >= len(p.fallbacks) {
		i = 0
	}
	return p.fallbacks[i].Clone()
}
