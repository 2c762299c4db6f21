package scoring

import (
	"math"

	"github.com/couchcryptid/fishcast/internal/domain"
)

// Water-movement variant composition, 0 to 20. With predictions it mirrors
// the tide scorer at reduced weight; without them it estimates movement
// from wind chop and pressure change instead of a flat neutral.
const (
	movementMax          = 20
	movementActivityStep = 3
	movementTypeBonus    = 4
	movementPrimeBonus   = 4
	movementDriverBase   = 6
	movementWindCapMph   = 16 // wind contribution tops out at mph/2 = 8
)

// ScoreWaterMovement is the 0-20 alternative to ScoreTide. Days with no
// predictions are scored from their wind and pressure drivers: harder wind
// pushes more water, and falling pressure ahead of a front moves it even
// without tide.
func ScoreWaterMovement(events []domain.TideEvent, pref domain.TidePreference, day domain.DayRecord) int {
	if len(events) == 0 {
		score := movementDriverBase + int(math.Round(math.Min(day.WindMph, movementWindCapMph)/2))
		switch day.Trend {
		case domain.PressureFalling:
			score += 3
		case domain.PressureRising:
			score -= 2
		}
		return clamp(score, 0, movementMax)
	}

	score := movementActivityStep * min(len(events), tideActivityCap)
	want := preferredType(pref)
	if hasType(events, want) {
		score += movementTypeBonus
	}
	if hasTypeInPrimeWindow(events, want) {
		score += movementPrimeBonus
	}
	return min(score, movementMax)
}

// ScoreWindDirection rates the wind's bearing, 0 to 10, after the old saw:
// wind from the west, fish bite the best; wind from the east, fish bite the
// least. The score falls linearly with angular distance from due west.
func ScoreWindDirection(deg float64) int {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	dist := math.Abs(d - 270)
	if dist > 180 {
		dist = 360 - dist
	}
	return int(math.Round(10 * (1 - dist/180)))
}

// ScorePrecipitation rates rainfall, 0 to 10. A trace of rain stirs bait
// and beats bluebird-clear; real rain muddies water and drops the score
// fast.
func ScorePrecipitation(inches float64) int {
	switch {
	case inches <= 0:
		return 8
	case inches <= 0.1:
		return 10
	case inches <= 0.4:
		return 6
	case inches <= 1.0:
		return 3
	default:
		return 0
	}
}

// FrontRiskLow, moderate, high label an approaching-front risk estimate.
const (
	FrontRiskLow      = "low"
	FrontRiskModerate = "moderate"
	FrontRiskHigh     = "high"
)

// FrontRisk estimates how likely an approaching front is to shut the bite
// down, 0 to 10 with a label. Falling pressure is the main signal; a low
// absolute reading and building wind corroborate it.
func FrontRisk(day domain.DayRecord) (int, string) {
	risk := 0
	if day.Trend == domain.PressureFalling {
		risk += 5
	}
	if day.PressureMb < 1008 {
		risk += 3
	}
	if day.WindMph >= 15 {
		risk += 2
	}

	label := FrontRiskLow
	switch {
	case risk >= 7:
		label = FrontRiskHigh
	case risk >= 4:
		label = FrontRiskModerate
	}
	return risk, label
}

// Insights bundles the secondary, spot-independent signals for one day.
// They ride alongside the spot ratings for display and never feed the
// aggregate score.
type Insights struct {
	WindCompass        string `json:"wind_compass"`
	Weather            string `json:"weather"`
	WindDirectionScore int    `json:"wind_direction_score"`
	PrecipitationScore int    `json:"precipitation_score"`
	FrontRisk          int    `json:"front_risk"`
	FrontRiskLabel     string `json:"front_risk_label"`
}

// DayInsights derives the secondary signals for one day record.
func DayInsights(day domain.DayRecord) Insights {
	risk, label := FrontRisk(day)
	return Insights{
		WindCompass:        domain.CompassPoint(day.WindDirDeg),
		Weather:            domain.WeatherLabel(day.WeatherCode),
		WindDirectionScore: ScoreWindDirection(day.WindDirDeg),
		PrecipitationScore: ScorePrecipitation(day.PrecipIn),
		FrontRisk:          risk,
		FrontRiskLabel:     label,
	}
}
