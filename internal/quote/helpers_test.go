package quote

import (
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/i474232898/weather-dashboard/internal/metrics"
	"github.com/i474232898/weather-dashboard/internal/store"
)

const testCacheDuration = 24 * time.Hour

var epoch = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCache(s store.Store) (*Cache, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(epoch)
	c := NewCache(s, CacheConfig{Key: DefaultCacheKey, Duration: testCacheDuration}, clock, discardLogger(), metrics.NewForTesting())
	return c, clock
}

var sampleQuote = Record{
	Text:   "Stay hungry, stay foolish.",
	Author: "Stewart Brand",
	Tags:   []string{"life", "inspirational"},
}
