package weather

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-dashboard/internal/common"
)

const unknownField = "Unknown"

var validate = validator.New()

// NormalizeLocation fills blank text fields with their sentinels.
func NormalizeLocation(l LocationSnapshot) LocationSnapshot {
	l.City = orDefault(l.City, unknownField)
	l.Region = orDefault(l.Region, unknownField)
	l.Country = orDefault(l.Country, unknownField)
	l.Timezone = orDefault(l.Timezone, "UTC")
	return l
}

// ValidateLocation checks that the coordinates are on the globe.
func ValidateLocation(l LocationSnapshot) error {
	return validate.Struct(l)
}

// Summarize turns a raw observation into the rounded snapshot shown to
// users.
func Summarize(raw RawWeatherObservation) WeatherSnapshot {
	cond := Classify(raw.WeatherCode)
	return WeatherSnapshot{
		Temperature: common.RoundHalfUp(raw.TemperatureC),
		Condition:   cond.Label,
		Humidity:    raw.RelativeHumidity,
		WindSpeed:   common.RoundHalfUp(raw.WindSpeedKmh),
		Icon:        cond.Icon,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
