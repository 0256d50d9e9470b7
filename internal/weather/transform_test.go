package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_ClearSky(t *testing.T) {
	got := Summarize(RawWeatherObservation{TemperatureC: 22.5, RelativeHumidity: 65, WindSpeedKmh: 12.3, WeatherCode: 0})
	assert.Equal(t, WeatherSnapshot{Temperature: 23, Condition: "Clear sky", Humidity: 65, WindSpeed: 12, Icon: "☀️"}, got)
}

func TestSummarize_RainBelowZero(t *testing.T) {
	got := Summarize(RawWeatherObservation{TemperatureC: -1.4, RelativeHumidity: 90, WindSpeedKmh: 20.5, WeatherCode: 61})
	assert.Equal(t, -1, got.Temperature)
	assert.Equal(t, "Rain", got.Condition)
	assert.Equal(t, "🌧️", got.Icon)
	assert.Equal(t, 21, got.WindSpeed)
	assert.Equal(t, 90, got.Humidity)
}

func TestNormalizeLocation_FillsSentinels(t *testing.T) {
	got := NormalizeLocation(LocationSnapshot{Latitude: 1, Longitude: 2, City: "  "})
	assert.Equal(t, "Unknown", got.City)
	assert.Equal(t, "Unknown", got.Region)
	assert.Equal(t, "Unknown", got.Country)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, 1.0, got.Latitude)
	assert.Equal(t, 2.0, got.Longitude)
}

func TestNormalizeLocation_KeepsValues(t *testing.T) {
	in := LocationSnapshot{City: "New York", Region: "NY", Country: "US", Latitude: 40.7128, Longitude: -74.006, Timezone: "America/New_York"}
	assert.Equal(t, in, NormalizeLocation(in))
}

func TestValidateLocation(t *testing.T) {
	require.NoError(t, ValidateLocation(LocationSnapshot{Latitude: 90, Longitude: -180}))
	require.NoError(t, ValidateLocation(LocationSnapshot{Latitude: -90, Longitude: 180}))
	assert.Error(t, ValidateLocation(LocationSnapshot{Latitude: 90.1}))
	assert.Error(t, ValidateLocation(LocationSnapshot{Longitude: -180.5}))
}
