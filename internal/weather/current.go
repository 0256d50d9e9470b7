package weather

import (
	"sync"
	"time"
)

// CurrentWeather is the process-wide "current weather" slot. The last
// Publish wins; readers get a copy.
type CurrentWeather struct {
	mu        sync.RWMutex
	snapshot  WeatherSnapshot
	updatedAt time.Time
	set       bool
}

// NewCurrentWeather returns an empty slot.
func NewCurrentWeather() *CurrentWeather {
	return &CurrentWeather{}
}

// Publish replaces the stored snapshot.
func (c *CurrentWeather) Publish(snapshot WeatherSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
	c.updatedAt = time.Now().UTC()
	c.set = true
	return nil
}

// Latest returns the most recently published snapshot and when it was
// published. ok is false until the first Publish.
func (c *CurrentWeather) Latest() (snapshot WeatherSnapshot, updatedAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot, c.updatedAt, c.set
}

// Theme derives the theme for the current snapshot, or the default theme
// when nothing has been published yet.
func (c *CurrentWeather) Theme() ThemeDescriptor {
	snap, _, ok := c.Latest()
	if !ok {
		return DefaultTheme()
	}
	return DeriveTheme(snap)
}
