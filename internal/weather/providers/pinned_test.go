package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-dashboard/internal/upstream"
)

func pinnedResolver(fn func(geocoder.Address) (geocoder.Location, error)) *PinnedResolver {
	return &PinnedResolver{
		place:   PinnedPlace{City: "Lisbon", Country: "Portugal", Timezone: "Europe/Lisbon"},
		geocode: fn,
	}
}

func TestPinnedResolver_Success(t *testing.T) {
	var got geocoder.Address
	r := pinnedResolver(func(a geocoder.Address) (geocoder.Location, error) {
		got = a
		return geocoder.Location{Latitude: 38.7223, Longitude: -9.1393}, nil
	})

	loc, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.City)
	assert.Equal(t, "Portugal", got.Country)
	assert.Equal(t, "Lisbon", loc.City)
	assert.Equal(t, "Unknown", loc.Region)
	assert.Equal(t, 38.7223, loc.Latitude)
	assert.Equal(t, -9.1393, loc.Longitude)
	assert.Equal(t, "Europe/Lisbon", loc.Timezone)
}

func TestPinnedResolver_GeocoderError(t *testing.T) {
	r := pinnedResolver(func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, errors.New("REQUEST_DENIED")
	})

	_, err := r.Resolve(context.Background())
	var upErr *upstream.Error
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "geocoder", upErr.Service)
}

func TestPinnedResolver_NoResult(t *testing.T) {
	r := pinnedResolver(func(geocoder.Address) (geocoder.Location, error) {
		return geocoder.Location{}, nil
	})

	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, upstream.ErrMalformedBody)
}

func TestPinnedResolver_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	r := pinnedResolver(func(geocoder.Address) (geocoder.Location, error) {
		<-release
		return geocoder.Location{Latitude: 1, Longitude: 1}, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Resolve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
