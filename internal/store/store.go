package store

import (
	"errors"
	"log/slog"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Store is a small process-local key-value store. Each call is atomic;
// compound read-then-write sequences are last-write-wins.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open picks the backing store once, at startup. An empty path means
// memory. A SQLite file that cannot be opened falls back to memory so
// callers never have to check for a missing store per call.
func Open(path string, logger *slog.Logger) Store {
	if path == "" {
		logger.Info("using in-memory key-value store")
		return NewMemoryStore()
	}

	s, err := NewSQLiteStore(path)
	if err != nil {
		logger.Warn("sqlite store unavailable; falling back to memory", "path", path, "error", err)
		return NewMemoryStore()
	}
	logger.Info("using sqlite key-value store", "path", path)
	return s
}
