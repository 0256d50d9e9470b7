package providers

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-dashboard/internal/upstream"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const pinnedService = "geocoder"

// PinnedPlace is a configured place used instead of IP-based lookup.
type PinnedPlace struct {
	City     string
	Region   string
	Country  string
	Timezone string
}

// PinnedResolver implements weather.LocationResolver by geocoding a fixed
// place through the Google Geocoding API.
type PinnedResolver struct {
	place   PinnedPlace
	geocode func(geocoder.Address) (geocoder.Location, error)
}

// NewPinnedResolver sets the package-level geocoder API key; only one
// pinned resolver is expected per process.
func NewPinnedResolver(apiKey string, place PinnedPlace) *PinnedResolver {
	geocoder.ApiKey = apiKey
	return &PinnedResolver{
		place:   place,
		geocode: geocoder.Geocoding,
	}
}

// Resolve geocodes the pinned place once per call. The geocoder has no
// context support, so the call is abandoned (not cancelled) when ctx ends.
func (r *PinnedResolver) Resolve(ctx context.Context) (weather.LocationSnapshot, error) {
	type result struct {
		loc geocoder.Location
		err error
	}
	done := make(chan result, 1)

	go func() {
		loc, err := r.geocode(geocoder.Address{
			City:    r.place.City,
			State:   r.place.Region,
			Country: r.place.Country,
		})
		done <- result{loc: loc, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return weather.LocationSnapshot{}, &upstream.Error{Service: pinnedService, Err: ctx.Err()}
	case res = <-done:
	}

	if res.err != nil {
		return weather.LocationSnapshot{}, &upstream.Error{Service: pinnedService, Err: fmt.Errorf("geocode %q: %w", r.place.City, res.err)}
	}
	if res.loc.Latitude == 0 && res.loc.Longitude == 0 {
		return weather.LocationSnapshot{}, upstream.Malformed(pinnedService, errNoGeocodeResult)
	}

	loc := weather.NormalizeLocation(weather.LocationSnapshot{
		City:      r.place.City,
		Region:    r.place.Region,
		Country:   r.place.Country,
		Latitude:  res.loc.Latitude,
		Longitude: res.loc.Longitude,
		Timezone:  r.place.Timezone,
	})
	if err := weather.ValidateLocation(loc); err != nil {
		return weather.LocationSnapshot{}, upstream.Malformed(pinnedService, err)
	}
	return loc, nil
}
