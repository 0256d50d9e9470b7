package weather

var unknownCondition = WeatherCondition{Label: "Unknown", Icon: "❓"}

// Open-Meteo WMO weather codes.
var conditions = map[int]WeatherCondition{
	0:  {"Clear sky", "☀️"},
	1:  {"Partly cloudy", "⛅"},
	2:  {"Partly cloudy", "⛅"},
	3:  {"Partly cloudy", "⛅"},
	45: {"Foggy", "🌫️"},
	48: {"Foggy", "🌫️"},
	51: {"Drizzle", "🌦️"},
	53: {"Drizzle", "🌦️"},
	55: {"Drizzle", "🌦️"},
	56: {"Freezing drizzle", "🌨️"},
	57: {"Freezing drizzle", "🌨️"},
	61: {"Rain", "🌧️"},
	63: {"Rain", "🌧️"},
	65: {"Rain", "🌧️"},
	66: {"Freezing rain", "🌨️"},
	67: {"Freezing rain", "🌨️"},
	71: {"Snow", "❄️"},
	73: {"Snow", "❄️"},
	75: {"Snow", "❄️"},
	77: {"Snow grains", "❄️"},
	80: {"Rain showers", "🌦️"},
	81: {"Rain showers", "🌦️"},
	82: {"Rain showers", "🌦️"},
	85: {"Snow showers", "🌨️"},
	86: {"Snow showers", "🌨️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm with hail", "⛈️"},
	99: {"Thunderstorm with hail", "⛈️"},
}

// Classify maps a weather code to its condition. Unmapped codes yield
// {"Unknown", "❓"}.
func Classify(code int) WeatherCondition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return unknownCondition
}
