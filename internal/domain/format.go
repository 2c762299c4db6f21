package domain

import (
	"fmt"
	"math"
)

// compassPoints lists the 16-wind rose clockwise from north. Each point
// covers a 22.5 degree sector centered on its heading.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint converts meteorological degrees (0 = north, clockwise) to
// the nearest 16-point compass label. Inputs outside [0,360) are wrapped.
func CompassPoint(deg float64) string {
	idx := int(math.Round(math.Mod(deg, 360)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// ClockLabel renders a 24-hour time as a 12-hour clock string, so hour 18
// minute 5 reads "6:05 PM" and hour 0 minute 30 reads "12:30 AM".
func ClockLabel(hour, minute int) string {
	period := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		h = hour - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// weatherLabels maps WMO weather interpretation codes to short display
// strings. The codes are the standard Open-Meteo subset.
var weatherLabels = map[int]string{
	0:  "clear sky",
	1:  "mainly clear",
	2:  "partly cloudy",
	3:  "overcast",
	45: "fog",
	48: "depositing rime fog",
	51: "light drizzle",
	53: "drizzle",
	55: "dense drizzle",
	56: "freezing drizzle",
	57: "dense freezing drizzle",
	61: "light rain",
	63: "rain",
	65: "heavy rain",
	66: "freezing rain",
	67: "heavy freezing rain",
	71: "light snow",
	73: "snow",
	75: "heavy snow",
	77: "snow grains",
	80: "light showers",
	81: "showers",
	82: "violent showers",
	85: "snow showers",
	86: "heavy snow showers",
	95: "thunderstorm",
	96: "thunderstorm with hail",
	99: "thunderstorm with heavy hail",
}

// WeatherLabel describes a WMO weather code in plain words. Unknown codes
// report themselves rather than guessing.
func WeatherLabel(code int) string {
	if label, ok := weatherLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("unknown (%d)", code)
}
