package providers

import (
	"context"

	"github.com/i474232898/weather-dashboard/internal/upstream"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// LocationResolver implements weather.LocationResolver with a single GET
// to a location endpoint that answers with a LocationSnapshot-shaped body
// (e.g. ipapi.co/json).
type LocationResolver struct {
	endpoint string
	client   *upstream.Client
}

func NewLocationResolver(endpoint string, client *upstream.Client) *LocationResolver {
	return &LocationResolver{
		endpoint: endpoint,
		client:   client,
	}
}

// Resolve fetches and normalizes the caller's location. It never
// substitutes a default location: any failure is an *upstream.Error.
func (r *LocationResolver) Resolve(ctx context.Context) (weather.LocationSnapshot, error) {
	var payload struct {
		City      string   `json:"city"`
		Region    string   `json:"region"`
		Country   string   `json:"country"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Timezone  string   `json:"timezone"`
	}

	if err := r.client.GetJSON(ctx, r.endpoint, &payload); err != nil {
		return weather.LocationSnapshot{}, err
	}

	if payload.Latitude == nil || payload.Longitude == nil {
		return weather.LocationSnapshot{}, upstream.Malformed(r.client.Service(), errMissingCoordinates)
	}

	loc := weather.NormalizeLocation(weather.LocationSnapshot{
		City:      payload.City,
		Region:    payload.Region,
		Country:   payload.Country,
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		Timezone:  payload.Timezone,
	})
	if err := weather.ValidateLocation(loc); err != nil {
		return weather.LocationSnapshot{}, upstream.Malformed(r.client.Service(), err)
	}
	return loc, nil
}
