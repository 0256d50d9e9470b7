package providers

import "errors"

var (
	errMissingCoordinates = errors.New("latitude and longitude are required")
	errNoGeocodeResult    = errors.New("geocoder returned no coordinates")
	errMissingCurrent     = errors.New("current conditions are incomplete")
)
