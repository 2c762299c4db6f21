package domain

import "math"

// dateFormat is the calendar-date layout shared by both feeds.
const dateFormat = "2006-01-02"

// lunarDriftHours shifts each successive fallback day's tide pattern later.
// The lunar day runs ~24h50m, so real tide times drift about 0.83 hours per
// calendar day.
const lunarDriftHours = 0.83

// tidePhase is one leg of the synthetic semidiurnal base pattern.
type tidePhase struct {
	hour     float64
	heightFt float64
	typ      TideType
}

// semidiurnalPattern approximates a mixed semidiurnal cycle: two highs and
// two lows roughly six hours apart, with unequal heights.
var semidiurnalPattern = [4]tidePhase{
	{hour: 2.0, heightFt: 2.8, typ: TideHigh},
	{hour: 8.25, heightFt: 0.4, typ: TideLow},
	{hour: 14.5, heightFt: 3.4, typ: TideHigh},
	{hour: 20.75, heightFt: -0.2, typ: TideLow},
}

// FallbackDays returns n synthetic day records starting today, stepping one
// calendar day at a time. Values are a fixed mild archetype: mostly clear,
// light southwest wind, dry, stable pressure. They stand in for live data
// only when a feed is down and make no claim to being a climatology model.
func FallbackDays(n int) []DayRecord {
	start := clock.Now()
	days := make([]DayRecord, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, DayRecord{
			Date:        start.AddDate(0, 0, i).Format(dateFormat),
			TempHighF:   78,
			TempLowF:    64,
			PrecipIn:    0,
			WindMph:     6,
			WindDirDeg:  225,
			WeatherCode: 1,
			PressureMb:  1015,
			Trend:       PressureStable,
		})
	}
	return days
}

// FallbackTides returns a synthetic schedule covering n days starting today.
// Day d applies a phase shift of (d × lunarDriftHours) mod 24 to the base
// pattern. Events pushed past midnight by the shift are dropped rather than
// wrapped, so a date may carry fewer than four events; every date still gets
// a key.
func FallbackTides(n int) TideSchedule {
	start := clock.Now()
	schedule := make(TideSchedule, n)
	for d := 0; d < n; d++ {
		date := start.AddDate(0, 0, d).Format(dateFormat)
		shift := math.Mod(float64(d)*lunarDriftHours, hoursPerDay)

		events := make([]TideEvent, 0, len(semidiurnalPattern))
		for _, phase := range semidiurnalPattern {
			totalMin := int(math.Round((phase.hour + shift) * 60))
			if totalMin < 0 || totalMin >= hoursPerDay*60 {
				continue
			}
			events = append(events, TideEvent{
				Hour:     totalMin / 60,
				Minute:   totalMin % 60,
				HeightFt: phase.heightFt,
				Type:     phase.typ,
			})
		}
		schedule[date] = events
	}
	return schedule
}
