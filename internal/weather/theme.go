package weather

import "github.com/i474232898/weather-dashboard/internal/common"

const (
	textLight = "text-white"
	textDark  = "text-gray-800"
)

type tier struct {
	minTemp int
	sunny   string
	rainy   string
	snowy   string
	other   string
	text    string
}

// Ordered hottest first; the last tier catches everything below zero.
var tiers = []tier{
	{
		minTemp: 30,
		sunny:   "bg-gradient-to-br from-orange-500 to-red-600",
		rainy:   "bg-gradient-to-br from-amber-600 to-slate-700",
		snowy:   "bg-gradient-to-br from-orange-400 to-red-500",
		other:   "bg-gradient-to-br from-orange-400 to-red-500",
		text:    textLight,
	},
	{
		minTemp: 20,
		sunny:   "bg-gradient-to-br from-yellow-400 to-orange-400",
		rainy:   "bg-gradient-to-br from-sky-300 to-slate-400",
		snowy:   "bg-gradient-to-br from-amber-200 to-orange-300",
		other:   "bg-gradient-to-br from-amber-200 to-orange-300",
		text:    textDark,
	},
	{
		minTemp: 10,
		sunny:   "bg-gradient-to-br from-yellow-200 to-sky-300",
		rainy:   "bg-gradient-to-br from-slate-300 to-blue-400",
		snowy:   "bg-gradient-to-br from-slate-100 to-sky-200",
		other:   "bg-gradient-to-br from-sky-200 to-blue-300",
		text:    textDark,
	},
	{
		minTemp: 0,
		sunny:   "bg-gradient-to-br from-sky-100 to-blue-300",
		rainy:   "bg-gradient-to-br from-gray-300 to-blue-400",
		snowy:   "bg-gradient-to-br from-slate-100 to-blue-200",
		other:   "bg-gradient-to-br from-blue-100 to-slate-300",
		text:    textDark,
	},
}

var freezing = tier{
	sunny: "bg-gradient-to-br from-blue-100 to-cyan-200",
	rainy: "bg-gradient-to-br from-slate-300 to-indigo-300",
	snowy: "bg-gradient-to-br from-white to-blue-200",
	other: "bg-gradient-to-br from-slate-200 to-blue-300",
	text:  textDark,
}

// DeriveTheme picks background and text tokens from the snapshot's
// temperature tier and condition label. Only the hottest tier uses light
// text.
func DeriveTheme(s WeatherSnapshot) ThemeDescriptor {
	t := freezing
	for _, candidate := range tiers {
		if s.Temperature >= candidate.minTemp {
			t = candidate
			break
		}
	}

	bg := t.other
	switch {
	case common.HasAny(s.Condition, "clear", "sunny"):
		bg = t.sunny
	// "Snow grains" contains "rain", so snow is matched first.
	case common.HasAny(s.Condition, "snow"):
		bg = t.snowy
	case common.HasAny(s.Condition, "rain", "drizzle"):
		bg = t.rainy
	}

	return ThemeDescriptor{Background: bg, TextColor: t.text}
}

// DefaultTheme is shown before any weather has been published.
func DefaultTheme() ThemeDescriptor {
	return ThemeDescriptor{
		Background: "bg-gradient-to-br from-blue-50 to-indigo-100",
		TextColor:  textDark,
	}
}
