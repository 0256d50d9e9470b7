package weather

// LocationSnapshot is the caller's approximate location as reported by a
// location collaborator. Unknown text fields hold "Unknown", never "".
type LocationSnapshot struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Timezone  string  `json:"timezone"`
}

// RawWeatherObservation is a single current-conditions reading as returned
// by the weather collaborator. It is never stored.
type RawWeatherObservation struct {
	TemperatureC     float64
	RelativeHumidity int // percent
	WindSpeedKmh     float64
	WeatherCode      int
}

// WeatherCondition is the human-readable form of a weather code.
type WeatherCondition struct {
	Label string `json:"condition"`
	Icon  string `json:"icon"`
}

// WeatherSnapshot is the normalized output of the weather pipeline.
type WeatherSnapshot struct {
	Temperature int    `json:"temperature"` // °C, rounded
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`  // percent
	WindSpeed   int    `json:"windSpeed"` // km/h, rounded
	Icon        string `json:"icon"`
}

// ThemeDescriptor pairs the opaque background and text style tokens derived
// from the weather.
type ThemeDescriptor struct {
	Background string `json:"backgroundClass"`
	TextColor  string `json:"textColorClass"`
}

// Report is everything the dashboard shows in its weather card.
type Report struct {
	Location LocationSnapshot `json:"location"`
	Weather  WeatherSnapshot  `json:"weather"`
	Theme    ThemeDescriptor  `json:"theme"`
}
