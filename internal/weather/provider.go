package weather

import (
	"context"
)

// LocationResolver determines the caller's approximate location.
type LocationResolver interface {
	Resolve(ctx context.Context) (LocationSnapshot, error)
}

// Fetcher retrieves current conditions for a coordinate pair.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, timezone string) (RawWeatherObservation, error)
}

// Publisher receives each successful snapshot, e.g. the process-wide
// CurrentWeather slot.
type Publisher interface {
	Publish(snapshot WeatherSnapshot) error
}
