package domain

// PressureTrend classifies a day's barometric direction, derived from two
// fixed-hour samples inside the day's hourly pressure window.
type PressureTrend string

const (
	PressureRising  PressureTrend = "rising"
	PressureFalling PressureTrend = "falling"
	PressureStable  PressureTrend = "stable"
)

// TideType marks a predicted extreme as high or low water. The single-letter
// values match the tide feed's own encoding, so raw rows map straight through.
type TideType string

const (
	TideHigh TideType = "H"
	TideLow  TideType = "L"
)

// TidePreference says which tide a fishing spot produces best on: incoming
// (rising toward high) or outgoing (falling toward low).
type TidePreference string

const (
	PrefersIncoming TidePreference = "incoming"
	PrefersOutgoing TidePreference = "outgoing"
)

// DayRecord is one calendar day's normalized weather summary. Every field is
// populated after normalization: precipitation nulls become zero and pressure
// falls back to a standard atmosphere when a day has no usable samples.
type DayRecord struct {
	Date        string        `json:"date"` // YYYY-MM-DD
	TempHighF   float64       `json:"temp_high_f"`
	TempLowF    float64       `json:"temp_low_f"`
	PrecipIn    float64       `json:"precip_in"`
	WindMph     float64       `json:"wind_mph"`
	WindDirDeg  float64       `json:"wind_dir_deg"` // meteorological, 0 = N
	WeatherCode int           `json:"weather_code"` // WMO classification code
	PressureMb  int           `json:"pressure_mb"`  // rounded mean sea-level pressure
	Trend       PressureTrend `json:"pressure_trend"`
}

// TideEvent is a single predicted high or low water instant on some date.
// Hour and minute are station-local clock values.
type TideEvent struct {
	Hour     int      `json:"hour"`
	Minute   int      `json:"minute"`
	HeightFt float64  `json:"height_ft"` // relative to MLLW, may be negative
	Type     TideType `json:"type"`
}

// TideSchedule maps a date (YYYY-MM-DD) to that date's tide events in feed
// order. Order is as received, not guaranteed chronological; consumers must
// not assume more than source order.
type TideSchedule map[string][]TideEvent

// DayConditions pairs one day's weather with that day's tide events. It is
// the unit of input to the scoring engine, assembled per call and never
// stored.
type DayConditions struct {
	Day   DayRecord   `json:"day"`
	Tides []TideEvent `json:"tides"`
}

// Conditions builds the scoring view for one day. A date absent from the
// schedule yields an empty tide slice, which the scorers treat as a neutral
// no-movement day.
func Conditions(day DayRecord, tides TideSchedule) DayConditions {
	return DayConditions{Day: day, Tides: tides[day.Date]}
}

// Spot is one static catalog entry: a named fishing location with its target
// species, habitat features, and local knowledge. The catalog is defined at
// compile time and never mutated.
type Spot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Lat         float64        `json:"lat"`
	Lon         float64        `json:"lon"`
	Species     []string       `json:"species"`
	Description string         `json:"description"`
	Habitat     []string       `json:"habitat"`
	TidePref    TidePreference `json:"tide_preference"`
	Tips        []string       `json:"tips"`
}
