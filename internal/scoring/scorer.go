package scoring

import (
	"math"

	"github.com/couchcryptid/fishcast/internal/domain"
)

// Sub-score ranges. Wind and pressure carry up to 25 points each, tide up
// to 30, temperature up to 20, so a perfect day sums to 100.
const (
	WindMax        = 25
	PressureMax    = 25
	TideMax        = 30
	TemperatureMax = 20
)

// Prime bite windows: tide movement around first and last light outfishes
// the same movement at midday. Hours are inclusive.
const (
	dawnStartHour = 5
	dawnEndHour   = 9
	duskStartHour = 16
	duskEndHour   = 20
)

// Tide sub-score composition.
const (
	tideNeutral       = 14 // no predictions: moving water unknown, assume middling
	tideActivityStep  = 4  // per event, capped at four events
	tideActivityCap   = 4
	tidePresenceBonus = 8  // preferred tide type occurs sometime that day
	tidePrimeBonus    = 10 // preferred type lands inside a dawn/dusk window
)

// ScoreWind rates wind speed, 0 to 25. Light wind means easy casting and
// undisturbed flats; anything past 25 mph blows the day out. The step
// function never increases with speed.
func ScoreWind(mph float64) int {
	switch {
	case mph < 5:
		return 25
	case mph < 10:
		return 20
	case mph < 15:
		return 13
	case mph < 20:
		return 6
	case mph < 25:
		return 2
	default:
		return 0
	}
}

// ScorePressure rates barometric conditions, 0 to 25: a base from the
// absolute reading plus a trend adjustment, clamped to the range. Falling
// pressure ahead of a front shuts the bite down harder than any absolute
// level helps.
func ScorePressure(mb int, trend domain.PressureTrend) int {
	var base int
	switch {
	case mb >= 1023:
		base = 21
	case mb >= 1015:
		base = 17
	case mb >= 1008:
		base = 11
	case mb >= 1000:
		base = 6
	default:
		base = 2
	}

	switch trend {
	case domain.PressureRising:
		base += 4
	case domain.PressureStable:
		base += 1
	case domain.PressureFalling:
		base -= 6
	}

	return clamp(base, 0, PressureMax)
}

// ScoreTide rates tidal water movement for a spot's preferred tide, 0 to
// 30. A day without predictions scores a fixed neutral value. With
// predictions, activity scales with event count, the preferred type being
// present anywhere that day adds a bonus, and the preferred type landing in
// a dawn or dusk window adds a larger one; the sum is capped.
func ScoreTide(events []domain.TideEvent, pref domain.TidePreference) int {
	if len(events) == 0 {
		return tideNeutral
	}

	score := tideActivityStep * min(len(events), tideActivityCap)
	want := preferredType(pref)
	if hasType(events, want) {
		score += tidePresenceBonus
	}
	if hasTypeInPrimeWindow(events, want) {
		score += tidePrimeBonus
	}
	return min(score, TideMax)
}

// ScoreTemperature rates estimated water temperature against a species'
// tolerance band, 0 to 20. Water temperature is approximated as the air
// high minus 3°F. Inside the band the score decays from 20 at optimal with
// a floor of 5; outside it decays from 8 with the overshoot past the
// nearest bound, so the score is discontinuous at the band edge.
func ScoreTemperature(airHighF float64, p Profile) int {
	water := airHighF - 3

	if water >= p.MinF && water <= p.MaxF {
		s := int(math.Round(20 - 0.75*math.Abs(water-p.OptF)))
		return max(s, 5)
	}

	overshoot := p.MinF - water
	if water > p.MaxF {
		overshoot = water - p.MaxF
	}
	return max(int(math.Round(8-overshoot)), 0)
}

// preferredType maps a spot's tide preference to the event type that
// delivers it: incoming water rises toward a high, outgoing falls toward a
// low.
func preferredType(pref domain.TidePreference) domain.TideType {
	if pref == domain.PrefersOutgoing {
		return domain.TideLow
	}
	return domain.TideHigh
}

func hasType(events []domain.TideEvent, want domain.TideType) bool {
	for _, event := range events {
		if event.Type == want {
			return true
		}
	}
	return false
}

func hasTypeInPrimeWindow(events []domain.TideEvent, want domain.TideType) bool {
	for _, event := range events {
		if event.Type == want && inPrimeWindow(event.Hour) {
			return true
		}
	}
	return false
}

func inPrimeWindow(hour int) bool {
	return (hour >= dawnStartHour && hour <= dawnEndHour) ||
		(hour >= duskStartHour && hour <= duskEndHour)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
