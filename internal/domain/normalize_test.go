package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDate1 = "2024-06-15"
	testDate2 = "2024-06-16"
)

// flatPressure builds an hourly window of n identical non-null samples.
func flatPressure(n int, value float64) []*float64 {
	samples := make([]*float64, n)
	for i := range samples {
		v := value
		samples[i] = &v
	}
	return samples
}

func ptr(v float64) *float64 { return &v }

func singleDayPayload(pressure []*float64) ForecastPayload {
	return ForecastPayload{
		Daily: ForecastDaily{
			Time:                     []string{testDate1},
			Temperature2mMax:         []float64{84.2},
			Temperature2mMin:         []float64{71.5},
			PrecipitationSum:         []*float64{ptr(0.12)},
			WindSpeed10mMax:          []float64{9.8},
			WindDirection10mDominant: []float64{225},
			WeatherCode:              []int{2},
		},
		Hourly: ForecastHourly{PressureMsl: pressure},
	}
}

func TestNormalizeForecast(t *testing.T) {
	t.Run("copies daily fields positionally", func(t *testing.T) {
		payload := ForecastPayload{
			Daily: ForecastDaily{
				Time:                     []string{testDate1, testDate2},
				Temperature2mMax:         []float64{84.2, 79.0},
				Temperature2mMin:         []float64{71.5, 68.3},
				PrecipitationSum:         []*float64{ptr(0.12), ptr(0)},
				WindSpeed10mMax:          []float64{9.8, 14.1},
				WindDirection10mDominant: []float64{225, 90},
				WeatherCode:              []int{2, 61},
			},
			Hourly: ForecastHourly{
				PressureMsl: append(flatPressure(24, 1016), flatPressure(24, 1009)...),
			},
		}

		days := NormalizeForecast(payload)
		require.Len(t, days, 2)

		assert.Equal(t, testDate1, days[0].Date)
		assert.Equal(t, 84.2, days[0].TempHighF)
		assert.Equal(t, 71.5, days[0].TempLowF)
		assert.Equal(t, 0.12, days[0].PrecipIn)
		assert.Equal(t, 9.8, days[0].WindMph)
		assert.Equal(t, 225.0, days[0].WindDirDeg)
		assert.Equal(t, 2, days[0].WeatherCode)
		assert.Equal(t, 1016, days[0].PressureMb)

		assert.Equal(t, testDate2, days[1].Date)
		assert.Equal(t, 61, days[1].WeatherCode)
		assert.Equal(t, 1009, days[1].PressureMb)
	})

	t.Run("pressure mean rounds to nearest millibar", func(t *testing.T) {
		days := NormalizeForecast(singleDayPayload(flatPressure(24, 1017.6)))
		require.Len(t, days, 1)
		assert.Equal(t, 1018, days[0].PressureMb)
		assert.Equal(t, PressureStable, days[0].Trend)
	})

	t.Run("rising trend when evening exceeds morning", func(t *testing.T) {
		window := flatPressure(24, 1012)
		window[trendMorningHour] = ptr(1010)
		window[trendEveningHour] = ptr(1013)

		days := NormalizeForecast(singleDayPayload(window))
		require.Len(t, days, 1)
		assert.Equal(t, PressureRising, days[0].Trend)
	})

	t.Run("falling trend when evening drops below morning", func(t *testing.T) {
		window := flatPressure(24, 1012)
		window[trendMorningHour] = ptr(1015)
		window[trendEveningHour] = ptr(1011)

		days := NormalizeForecast(singleDayPayload(window))
		require.Len(t, days, 1)
		assert.Equal(t, PressureFalling, days[0].Trend)
	})

	t.Run("moves inside the band read stable", func(t *testing.T) {
		window := flatPressure(24, 1012)
		window[trendMorningHour] = ptr(1011)
		window[trendEveningHour] = ptr(1012.5)

		days := NormalizeForecast(singleDayPayload(window))
		require.Len(t, days, 1)
		assert.Equal(t, PressureStable, days[0].Trend)
	})

	t.Run("null samples are excluded from the mean", func(t *testing.T) {
		window := flatPressure(24, 1020)
		window[3] = nil
		window[11] = nil

		days := NormalizeForecast(singleDayPayload(window))
		require.Len(t, days, 1)
		assert.Equal(t, 1020, days[0].PressureMb)
	})

	t.Run("no usable samples defaults to standard atmosphere", func(t *testing.T) {
		days := NormalizeForecast(singleDayPayload(nil))
		require.Len(t, days, 1)
		assert.Equal(t, StandardPressureMb, days[0].PressureMb)
		assert.Equal(t, PressureStable, days[0].Trend)

		allNull := make([]*float64, 24)
		days = NormalizeForecast(singleDayPayload(allNull))
		require.Len(t, days, 1)
		assert.Equal(t, StandardPressureMb, days[0].PressureMb)
	})

	t.Run("missing comparison sample falls back to day mean", func(t *testing.T) {
		// Only the first 12 hours delivered: no hour-18 sample, so the
		// evening side of the comparison is the day mean itself.
		window := flatPressure(12, 1010)
		window[trendMorningHour] = ptr(1010)

		days := NormalizeForecast(singleDayPayload(window))
		require.Len(t, days, 1)
		assert.Equal(t, 1010, days[0].PressureMb)
		assert.Equal(t, PressureStable, days[0].Trend)
	})

	t.Run("null precipitation becomes zero", func(t *testing.T) {
		payload := singleDayPayload(flatPressure(24, 1015))
		payload.Daily.PrecipitationSum = []*float64{nil}

		days := NormalizeForecast(payload)
		require.Len(t, days, 1)
		assert.Equal(t, 0.0, days[0].PrecipIn)
	})

	t.Run("idempotent over identical input", func(t *testing.T) {
		payload := singleDayPayload(flatPressure(24, 1017.6))
		assert.Equal(t, NormalizeForecast(payload), NormalizeForecast(payload))
	})
}

func TestNormalizeTides(t *testing.T) {
	t.Run("slices date, hour, and minute from the raw stamp", func(t *testing.T) {
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15 06:30", Height: "1.2", Type: "H"},
		}}

		schedule := NormalizeTides(payload)
		require.Len(t, schedule, 1)
		require.Len(t, schedule[testDate1], 1)

		event := schedule[testDate1][0]
		assert.Equal(t, 6, event.Hour)
		assert.Equal(t, 30, event.Minute)
		assert.Equal(t, 1.2, event.HeightFt)
		assert.Equal(t, TideHigh, event.Type)
	})

	t.Run("preserves feed order within a date", func(t *testing.T) {
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15 00:12", Height: "2.8", Type: "H"},
			{Time: "2024-06-15 06:41", Height: "0.3", Type: "L"},
			{Time: "2024-06-15 12:55", Height: "3.1", Type: "H"},
			{Time: "2024-06-15 19:20", Height: "-0.4", Type: "L"},
		}}

		schedule := NormalizeTides(payload)
		events := schedule[testDate1]
		require.Len(t, events, 4)
		assert.Equal(t, []TideType{TideHigh, TideLow, TideHigh, TideLow},
			[]TideType{events[0].Type, events[1].Type, events[2].Type, events[3].Type})
		assert.Equal(t, 0, events[0].Hour)
		assert.Equal(t, 12, events[0].Minute)
		assert.Equal(t, -0.4, events[3].HeightFt)
	})

	t.Run("creates a key per date on first occurrence", func(t *testing.T) {
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15 06:30", Height: "1.2", Type: "H"},
			{Time: "2024-06-16 07:18", Height: "1.4", Type: "H"},
			{Time: "2024-06-15 12:45", Height: "0.2", Type: "L"},
		}}

		schedule := NormalizeTides(payload)
		require.Len(t, schedule, 2)
		assert.Len(t, schedule[testDate1], 2)
		assert.Len(t, schedule[testDate2], 1)
	})

	t.Run("local clock is never shifted", func(t *testing.T) {
		// Midnight and late-evening stamps keep their literal hour values
		// regardless of the host timezone.
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15 00:05", Height: "2.1", Type: "H"},
			{Time: "2024-06-15 23:45", Height: "-0.1", Type: "L"},
		}}

		events := NormalizeTides(payload)[testDate1]
		require.Len(t, events, 2)
		assert.Equal(t, 0, events[0].Hour)
		assert.Equal(t, 5, events[0].Minute)
		assert.Equal(t, 23, events[1].Hour)
		assert.Equal(t, 45, events[1].Minute)
	})

	t.Run("skips rows that do not slice cleanly", func(t *testing.T) {
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15", Height: "1.2", Type: "H"},        // no time portion
			{Time: "2024-06-15 0630", Height: "1.2", Type: "H"},   // no colon
			{Time: "2024-06-15 06:30", Height: "tall", Type: "H"}, // bad height
			{Time: "2024-06-15 06:30", Height: "1.2", Type: "H"},
		}}

		schedule := NormalizeTides(payload)
		require.Len(t, schedule, 1)
		assert.Len(t, schedule[testDate1], 1)
	})

	t.Run("empty payload yields empty schedule", func(t *testing.T) {
		schedule := NormalizeTides(TidePayload{})
		assert.Empty(t, schedule)
	})

	t.Run("idempotent over identical input", func(t *testing.T) {
		payload := TidePayload{Predictions: []TidePrediction{
			{Time: "2024-06-15 06:30", Height: "1.2", Type: "H"},
			{Time: "2024-06-16 07:18", Height: "1.4", Type: "L"},
		}}
		assert.Equal(t, NormalizeTides(payload), NormalizeTides(payload))
	})
}
