package quote

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"

	"github.com/i474232898/weather-dashboard/internal/metrics"
	"github.com/i474232898/weather-dashboard/internal/store"
)

// DefaultCacheKey is the key the cached quote lives under.
const DefaultCacheKey = "weather-app-quote"

// ErrMalformedEntry marks a stored entry that could not be used. It is
// logged and purged, never returned to callers.
var ErrMalformedEntry = errors.New("malformed cached quote")

// CacheConfig configures the quote cache.
type CacheConfig struct {
	Key      string
	Duration time.Duration
}

// Cache keeps at most one quote under a fixed key. Entries are valid while
// their age is below Duration and are purged the first time they are read
// after that.
type Cache struct {
	store    store.Store
	key      string
	duration time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewCache creates a Cache. A nil clock means the real clock.
func NewCache(s store.Store, cfg CacheConfig, clock clockwork.Clock, logger *slog.Logger, m *metrics.Metrics) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	key := cfg.Key
	if key == "" {
		key = DefaultCacheKey
	}
	return &Cache{
		store:    s,
		key:      key,
		duration: cfg.Duration,
		clock:    clock,
		logger:   logger,
		metrics:  m,
	}
}

// Read returns the cached quote if one exists and has not expired.
func (c *Cache) Read() (CachedQuote, bool) {
	raw, err := c.store.Get(c.key)
	if errors.Is(err, store.ErrNotFound) {
		c.metrics.QuoteCache.WithLabelValues("miss").Inc()
		return CachedQuote{}, false
	}
	if err != nil {
		c.logger.Warn("quote cache unavailable", "error", err)
		c.metrics.QuoteCache.WithLabelValues("miss").Inc()
		c.purge()
		return CachedQuote{}, false
	}

	entry, err := decodeEntry(raw)
	if err != nil {
		c.logger.Warn("failed to parse cached quote", "error", err)
		c.metrics.QuoteCache.WithLabelValues("corrupt").Inc()
		c.purge()
		return CachedQuote{}, false
	}

	age := c.clock.Now().UnixMilli() - entry.CachedAtMillis
	if age >= c.duration.Milliseconds() {
		c.logger.Debug("cached quote expired", "age_ms", age)
		c.metrics.QuoteCache.WithLabelValues("expired").Inc()
		c.purge()
		return CachedQuote{}, false
	}

	c.metrics.QuoteCache.WithLabelValues("hit").Inc()
	return entry, true
}

// Write stores r stamped with the current time, replacing any entry.
func (c *Cache) Write(r Record) {
	entry := CachedQuote{
		Record:         r.Clone(),
		CachedAtMillis: c.clock.Now().UnixMilli(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("failed to encode quote for cache", "error", err)
		return
	}
	if err := c.store.Set(c.key, raw); err != nil {
		c.logger.Warn("failed to cache quote", "error", err)
	}
}

// Invalidate removes the cached entry, if any.
func (c *Cache) Invalidate() {
	c.purge()
}

func (c *Cache) purge() {
	if err := c.store.Delete(c.key); err != nil {
		c.logger.Warn("failed to remove cached quote", "error", err)
	}
}

func decodeEntry(raw []byte) (CachedQuote, error) {
	var entry CachedQuote
	if err := json.Unmarshal(raw, &entry); err != nil {
		return CachedQuote{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if entry.Text == "" || entry.CachedAtMillis == 0 {
		return CachedQuote{}, fmt.Errorf("%w: missing quote or timestamp", ErrMalformedEntry)
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	return entry, nil
}
