package scoring

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/fishcast/internal/domain"
)

// SpeciesAll is the filter value that matches every species a spot holds.
const SpeciesAll = "all"

// Rating is the categorical quality label derived from the aggregate score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// Rating thresholds, inclusive on the high side: 78 is excellent, 77 good.
const (
	excellentThreshold = 78
	goodThreshold      = 57
	fairThreshold      = 37
)

// ratingColors maps each rating to its display hex color. One color per
// rating, no two ratings share one.
var ratingColors = map[Rating]string{
	RatingExcellent: "#22c55e",
	RatingGood:      "#84cc16",
	RatingFair:      "#eab308",
	RatingPoor:      "#ef4444",
}

// RatingFor classifies a capped aggregate score.
func RatingFor(score int) Rating {
	switch {
	case score >= excellentThreshold:
		return RatingExcellent
	case score >= goodThreshold:
		return RatingGood
	case score >= fairThreshold:
		return RatingFair
	default:
		return RatingPoor
	}
}

// RatingColor returns the display color for a rating. Unknown ratings get
// the poor color rather than an empty string.
func RatingColor(r Rating) string {
	if c, ok := ratingColors[r]; ok {
		return c
	}
	return ratingColors[RatingPoor]
}

// Breakdown carries the named sub-scores behind an aggregate. Only the
// total is capped at 100, so the parts may sum past the displayed score.
type Breakdown struct {
	Wind        int `json:"wind"`
	Pressure    int `json:"pressure"`
	Tide        int `json:"tide"`
	Temperature int `json:"temperature"`
}

// Result is one scored (spot, species) pair for one day's conditions.
// Results are recomputed whenever inputs change and never mutated.
type Result struct {
	SpotID    string    `json:"spot_id"`
	SpotName  string    `json:"spot_name"`
	Species   string    `json:"species"`
	Score     int       `json:"score"`
	Rating    Rating    `json:"rating"`
	Color     string    `json:"color"`
	Breakdown Breakdown `json:"breakdown"`
	BestTime  string    `json:"best_time"`
}

// genericBestTime covers days where no tide event lines up with the spot's
// preference, and days with no predictions at all.
const genericBestTime = "Any time with moving water"

// RateSpot scores one spot against a day's conditions for a species filter.
// The second return is false when the filter names a species the spot does
// not hold, meaning the caller should omit the spot entirely. The filter
// value "all" never excludes; it scores the spot's first listed species,
// an arbitrary but deterministic choice.
func RateSpot(spot domain.Spot, cond domain.DayConditions, speciesFilter string) (Result, bool) {
	species := ""
	if len(spot.Species) > 0 {
		species = spot.Species[0]
	}
	if !strings.EqualFold(speciesFilter, SpeciesAll) {
		matched, ok := matchSpecies(spot.Species, speciesFilter)
		if !ok {
			return Result{}, false
		}
		species = matched
	}

	breakdown := Breakdown{
		Wind:        ScoreWind(cond.Day.WindMph),
		Pressure:    ScorePressure(cond.Day.PressureMb, cond.Day.Trend),
		Tide:        ScoreTide(cond.Tides, spot.TidePref),
		Temperature: ScoreTemperature(cond.Day.TempHighF, ProfileFor(species)),
	}
	score := min(breakdown.Wind+breakdown.Pressure+breakdown.Tide+breakdown.Temperature, 100)
	rating := RatingFor(score)

	return Result{
		SpotID:    spot.ID,
		SpotName:  spot.Name,
		Species:   species,
		Score:     score,
		Rating:    rating,
		Color:     RatingColor(rating),
		Breakdown: breakdown,
		BestTime:  BestTime(cond.Tides, spot.TidePref),
	}, true
}

// matchSpecies finds the catalog spelling for a filter value, ignoring
// case, so results always carry the catalog's own capitalization.
func matchSpecies(species []string, filter string) (string, bool) {
	for _, s := range species {
		if strings.EqualFold(s, filter) {
			return s, true
		}
	}
	return "", false
}

// ScoreCatalog expands spots against a species filter. For "all" it scores
// every (spot, species) pair the catalog supports, one result per pair; for
// a specific species it scores each spot once. Spots the filter excludes
// are omitted without error. Result order follows catalog order.
func ScoreCatalog(spots []domain.Spot, cond domain.DayConditions, speciesFilter string) []Result {
	results := make([]Result, 0, len(spots))
	for _, spot := range spots {
		if strings.EqualFold(speciesFilter, SpeciesAll) {
			for _, species := range spot.Species {
				if r, ok := RateSpot(spot, cond, species); ok {
					results = append(results, r)
				}
			}
			continue
		}
		if r, ok := RateSpot(spot, cond, speciesFilter); ok {
			results = append(results, r)
		}
	}
	return results
}

// BestTime names the most promising bite window. It scans events in feed
// order for the first one matching both the preferred tide type and a
// dawn/dusk window; failing that, the first event of the preferred type
// anywhere in the day; failing that, the generic fallback.
func BestTime(events []domain.TideEvent, pref domain.TidePreference) string {
	if len(events) == 0 {
		return genericBestTime
	}

	want := preferredType(pref)
	for _, event := range events {
		if event.Type == want && inPrimeWindow(event.Hour) {
			return fmt.Sprintf("%s around %s", windowName(event.Hour), domain.ClockLabel(event.Hour, event.Minute))
		}
	}
	for _, event := range events {
		if event.Type == want {
			return fmt.Sprintf("Around %s (%s tide)", domain.ClockLabel(event.Hour, event.Minute), tideWord(event.Type))
		}
	}
	return genericBestTime
}

func windowName(hour int) string {
	if hour <= dawnEndHour {
		return "Dawn"
	}
	return "Dusk"
}

func tideWord(t domain.TideType) string {
	if t == domain.TideLow {
		return "low"
	}
	return "high"
}
