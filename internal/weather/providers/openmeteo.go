package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/i474232898/weather-dashboard/internal/upstream"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

const openMeteoCurrentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"

// OpenMeteoFetcher implements weather.Fetcher against the Open-Meteo
// forecast API.
type OpenMeteoFetcher struct {
	baseURL string
	client  *upstream.Client
}

func NewOpenMeteoFetcher(baseURL string, client *upstream.Client) *OpenMeteoFetcher {
	return &OpenMeteoFetcher{
		baseURL: baseURL,
		client:  client,
	}
}

// Fetch makes one request for the current conditions at lat/lon.
func (f *OpenMeteoFetcher) Fetch(ctx context.Context, lat, lon float64, timezone string) (weather.RawWeatherObservation, error) {
	var payload struct {
		Current *struct {
			Temperature      *float64 `json:"temperature_2m"`
			RelativeHumidity *float64 `json:"relative_humidity_2m"`
			WindSpeed        *float64 `json:"wind_speed_10m"`
			WeatherCode      *int     `json:"weather_code"`
		} `json:"current"`
	}

	if err := f.client.GetJSON(ctx, f.requestURL(lat, lon, timezone), &payload); err != nil {
		return weather.RawWeatherObservation{}, err
	}

	cur := payload.Current
	if cur == nil || cur.Temperature == nil || cur.RelativeHumidity == nil || cur.WindSpeed == nil || cur.WeatherCode == nil {
		return weather.RawWeatherObservation{}, upstream.Malformed(f.client.Service(), errMissingCurrent)
	}

	return weather.RawWeatherObservation{
		TemperatureC:     *cur.Temperature,
		RelativeHumidity: int(*cur.RelativeHumidity),
		WindSpeedKmh:     *cur.WindSpeed,
		WeatherCode:      *cur.WeatherCode,
	}, nil
}

// requestURL is a pure function of its inputs; url.Values encodes keys in
// sorted order.
func (f *OpenMeteoFetcher) requestURL(lat, lon float64, timezone string) string {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current", openMeteoCurrentFields)
	values.Set("timezone", timezone)

	return fmt.Sprintf("%s?%s", f.baseURL, values.Encode())
}
