package domain

// ForecastPayload mirrors the forecast feed's JSON layout: one parallel
// array per daily field, indexed by day, plus an hourly block carrying 24
// sea-level pressure samples per day in day order.
type ForecastPayload struct {
	Daily  ForecastDaily  `json:"daily"`
	Hourly ForecastHourly `json:"hourly"`
}

// ForecastDaily holds the daily parallel arrays. Time fixes the day count;
// every other slice is positionally indexed against it. Precipitation sums
// may be null upstream, so they decode through pointers.
type ForecastDaily struct {
	Time                     []string   `json:"time"`
	Temperature2mMax         []float64  `json:"temperature_2m_max"`
	Temperature2mMin         []float64  `json:"temperature_2m_min"`
	PrecipitationSum         []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax          []float64  `json:"wind_speed_10m_max"`
	WindDirection10mDominant []float64  `json:"wind_direction_10m_dominant"`
	WeatherCode              []int      `json:"weather_code"`
}

// ForecastHourly holds hourly sea-level pressure. Individual samples may be
// null upstream when a station gap leaves an hour unmodeled.
type ForecastHourly struct {
	Time        []string   `json:"time"`
	PressureMsl []*float64 `json:"pressure_msl"`
}

// TidePayload mirrors the tide feed's JSON layout. A well-formed response
// carries Predictions; the feed reports some failures as HTTP 200 with Error
// populated in place of the prediction list, which callers must check before
// trusting Predictions.
type TidePayload struct {
	Metadata    TideMetadata     `json:"metadata"`
	Predictions []TidePrediction `json:"predictions"`
	Error       *TideError       `json:"error,omitempty"`
}

// TideMetadata identifies the station a prediction set belongs to.
type TideMetadata struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Lat  string `json:"lat"`
	Lon  string `json:"lon"`
}

// TidePrediction is one raw high/low row. All values arrive as strings.
type TidePrediction struct {
	Time   string `json:"t"`    // "YYYY-MM-DD HH:MM", station-local clock
	Height string `json:"v"`    // signed decimal feet
	Type   string `json:"type"` // "H" or "L"
}

// TideError is the tide feed's embedded application-level failure report.
type TideError struct {
	Message string `json:"message"`
}
