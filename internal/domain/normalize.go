package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	// StandardPressureMb substitutes for a day with zero usable hourly
	// samples. 1013 mb is the standard atmosphere at sea level.
	StandardPressureMb = 1013

	hoursPerDay = 24

	// Trend compares the hour-6 sample against the hour-18 sample. Moves
	// within ±1.5 mb over that span read as stable.
	trendMorningHour = 6
	trendEveningHour = 18
	trendBandMb      = 1.5
)

// NormalizeForecast flattens the feed's parallel daily arrays into one
// DayRecord per forecast day. Each day's 24-sample hourly pressure window is
// reduced to a rounded mean plus a trend label; null precipitation sums
// become zero. The transform is pure: identical payloads yield identical
// records.
func NormalizeForecast(p ForecastPayload) []DayRecord {
	days := make([]DayRecord, 0, len(p.Daily.Time))
	for i := range p.Daily.Time {
		pressure, trend := dayPressure(pressureWindow(p.Hourly.PressureMsl, i))
		days = append(days, DayRecord{
			Date:        p.Daily.Time[i],
			TempHighF:   p.Daily.Temperature2mMax[i],
			TempLowF:    p.Daily.Temperature2mMin[i],
			PrecipIn:    floatOrZero(p.Daily.PrecipitationSum[i]),
			WindMph:     p.Daily.WindSpeed10mMax[i],
			WindDirDeg:  p.Daily.WindDirection10mDominant[i],
			WeatherCode: p.Daily.WeatherCode[i],
			PressureMb:  pressure,
			Trend:       trend,
		})
	}
	return days
}

// pressureWindow slices day i's 24 hourly samples, bounded by whatever the
// feed actually delivered.
func pressureWindow(samples []*float64, day int) []*float64 {
	start := day * hoursPerDay
	if start >= len(samples) {
		return nil
	}
	end := min(start+hoursPerDay, len(samples))
	return samples[start:end]
}

// dayPressure reduces one day's hourly window to a rounded mean and a trend.
// Null samples are excluded from the mean; a missing morning or evening
// sample falls back to the day's mean, which reads as no movement on that
// side of the comparison.
func dayPressure(window []*float64) (int, PressureTrend) {
	var sum float64
	var n int
	for _, s := range window {
		if s != nil {
			sum += *s
			n++
		}
	}
	if n == 0 {
		return StandardPressureMb, PressureStable
	}
	mean := sum / float64(n)

	sampleOrMean := func(hour int) float64 {
		if hour < len(window) && window[hour] != nil {
			return *window[hour]
		}
		return mean
	}

	diff := sampleOrMean(trendEveningHour) - sampleOrMean(trendMorningHour)
	trend := PressureStable
	switch {
	case diff > trendBandMb:
		trend = PressureRising
	case diff < -trendBandMb:
		trend = PressureFalling
	}
	return int(math.Round(mean)), trend
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// NormalizeTides groups raw predictions under their date substring, in feed
// order. The combined "YYYY-MM-DD HH:MM" stamp is split on the first space
// and first colon by plain string slicing, never a time parser: the station
// reports local clock values and running them through a timezone-aware type
// would silently shift the hours. Rows that do not slice cleanly are
// skipped.
func NormalizeTides(p TidePayload) TideSchedule {
	schedule := make(TideSchedule)
	for _, pred := range p.Predictions {
		space := strings.IndexByte(pred.Time, ' ')
		if space < 0 {
			continue
		}
		date, hm := pred.Time[:space], pred.Time[space+1:]

		colon := strings.IndexByte(hm, ':')
		if colon < 0 {
			continue
		}
		hour, errH := strconv.Atoi(hm[:colon])
		minute, errM := strconv.Atoi(hm[colon+1:])
		height, errV := strconv.ParseFloat(pred.Height, 64)
		if errH != nil || errM != nil || errV != nil {
			continue
		}

		schedule[date] = append(schedule[date], TideEvent{
			Hour:     hour,
			Minute:   minute,
			HeightFt: height,
			Type:     TideType(pred.Type),
		})
	}
	return schedule
}
