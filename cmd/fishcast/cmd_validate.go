package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/catalog"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/scoring"
)

// validateHorizon is the fixed horizon the self-checks sweep. Seven days
// covers every distinct fallback tide pattern length.
const validateHorizon = 7

var validateBase = time.Date(2024, time.June, 15, 6, 0, 0, 0, time.UTC)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Self-check the catalog and scoring engine",
	Long: `Run internal consistency checks over the spot catalog, species
profiles, scorer output ranges, and the deterministic fallback generator.
Exits non-zero when any phase fails.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func runValidate(_ *cobra.Command, _ []string) error {
	// Fix the clock so fallback generation is reproducible run to run.
	domain.SetClock(clockwork.NewFakeClockAt(validateBase))
	defer domain.SetClock(nil)

	fmt.Println("=== Fishcast Self-Check ===")
	fmt.Println()

	phases := []*phase{
		validateCatalog(),
		validateProfiles(),
		validateScorers(),
		validateFallback(),
		validateScoring(),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Checked: %d spots, %d species, %d-day horizon\n",
		len(catalog.Spots()), len(catalog.SpeciesList()), validateHorizon)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return nil
	}
	fmt.Println("\nValidation FAILED.")
	return fmt.Errorf("self-check failed")
}

// ── Phase 1: catalog integrity ──

func validateCatalog() *phase {
	p := &phase{name: "Catalog integrity"}
	if len(catalog.Spots()) == 0 {
		p.errorf("catalog is empty")
	}
	if err := catalog.Validate(); err != nil {
		p.errorf("%v", err)
	}
	return p
}

// ── Phase 2: species thermal profiles ──

func validateProfiles() *phase {
	p := &phase{name: "Species thermal profiles"}
	for _, sp := range catalog.SpeciesList() {
		if !scoring.KnownSpecies(sp) {
			p.errorf("%s: no thermal profile", sp)
			continue
		}
		prof := scoring.ProfileFor(sp)
		if prof.MinF >= prof.OptF || prof.OptF >= prof.MaxF {
			p.errorf("%s: profile not ordered (min=%g opt=%g max=%g)",
				sp, prof.MinF, prof.OptF, prof.MaxF)
		}
	}
	return p
}

// ── Phase 3: scorer bounds ──

func validateScorers() *phase {
	p := &phase{name: "Scorer bounds"}

	prev := scoring.WindMax
	for mph := 0.0; mph <= 40; mph += 0.5 {
		s := scoring.ScoreWind(mph)
		if s < 0 || s > scoring.WindMax {
			p.errorf("wind %.1f mph: score %d out of range", mph, s)
		}
		if s > prev {
			p.errorf("wind %.1f mph: score %d rose from %d", mph, s, prev)
		}
		prev = s
	}

	trends := []domain.PressureTrend{domain.PressureRising, domain.PressureStable, domain.PressureFalling}
	for _, trend := range trends {
		for mb := 980; mb <= 1040; mb++ {
			if s := scoring.ScorePressure(mb, trend); s < 0 || s > scoring.PressureMax {
				p.errorf("pressure %d mb %s: score %d out of range", mb, trend, s)
			}
		}
	}

	for _, sp := range catalog.SpeciesList() {
		prof := scoring.ProfileFor(sp)
		for f := 30.0; f <= 100; f++ {
			if s := scoring.ScoreTemperature(f, prof); s < 0 || s > scoring.TemperatureMax {
				p.errorf("%s at %.0fF: score %d out of range", sp, f, s)
			}
		}
	}

	boundaries := []struct {
		score int
		want  scoring.Rating
	}{
		{100, scoring.RatingExcellent},
		{78, scoring.RatingExcellent},
		{77, scoring.RatingGood},
		{57, scoring.RatingGood},
		{56, scoring.RatingFair},
		{37, scoring.RatingFair},
		{36, scoring.RatingPoor},
		{0, scoring.RatingPoor},
	}
	for _, b := range boundaries {
		if got := scoring.RatingFor(b.score); got != b.want {
			p.errorf("score %d: rating %s, want %s", b.score, got, b.want)
		}
	}
	for _, r := range []scoring.Rating{scoring.RatingExcellent, scoring.RatingGood, scoring.RatingFair, scoring.RatingPoor} {
		if scoring.RatingColor(r) == "" {
			p.errorf("rating %s: no color", r)
		}
	}
	return p
}

// ── Phase 4: fallback determinism ──

func validateFallback() *phase {
	p := &phase{name: "Fallback determinism"}

	days := domain.FallbackDays(validateHorizon)
	if len(days) != validateHorizon {
		p.errorf("days: got %d, want %d", len(days), validateHorizon)
	}
	for i := 1; i < len(days); i++ {
		prevDate, err1 := time.Parse("2006-01-02", days[i-1].Date)
		currDate, err2 := time.Parse("2006-01-02", days[i].Date)
		if err1 != nil || err2 != nil {
			p.errorf("days: unparseable dates %q, %q", days[i-1].Date, days[i].Date)
			continue
		}
		if currDate.Sub(prevDate) != 24*time.Hour {
			p.errorf("days: %s to %s is not one day", days[i-1].Date, days[i].Date)
		}
	}

	tides := domain.FallbackTides(validateHorizon)
	if len(tides) != validateHorizon {
		p.errorf("tides: got %d dates, want %d", len(tides), validateHorizon)
	}
	for _, day := range days {
		events, ok := tides[day.Date]
		if !ok {
			p.errorf("tides: no entry for %s", day.Date)
			continue
		}
		if len(events) == 0 || len(events) > 4 {
			p.errorf("tides: %d events for %s", len(events), day.Date)
		}
		for _, e := range events {
			if e.Hour < 0 || e.Hour > 23 || e.Minute < 0 || e.Minute > 59 {
				p.errorf("tides: %s has impossible time %d:%02d", day.Date, e.Hour, e.Minute)
			}
			if e.Type != domain.TideHigh && e.Type != domain.TideLow {
				p.errorf("tides: %s has unknown type %q", day.Date, e.Type)
			}
		}
	}

	first, _ := json.Marshal(tides)
	again, _ := json.Marshal(domain.FallbackTides(validateHorizon))
	if !bytes.Equal(first, again) {
		p.errorf("tides: two generations differ under the same clock")
	}
	return p
}

// ── Phase 5: catalog scoring smoke ──

func validateScoring() *phase {
	p := &phase{name: "Catalog scoring smoke"}

	spots := catalog.Spots()
	days := domain.FallbackDays(validateHorizon)
	tides := domain.FallbackTides(validateHorizon)

	// The "all" filter expands to one result per (spot, species) pair.
	wantResults := 0
	for _, s := range spots {
		wantResults += len(s.Species)
	}

	for _, day := range days {
		results := scoring.ScoreCatalog(spots, domain.Conditions(day, tides), scoring.SpeciesAll)
		if len(results) != wantResults {
			p.errorf("%s: %d results, want %d", day.Date, len(results), wantResults)
		}
		for _, res := range results {
			if res.Score < 0 || res.Score > 100 {
				p.errorf("%s %s: score %d out of range", day.Date, res.SpotID, res.Score)
			}
			if res.Rating != scoring.RatingFor(res.Score) {
				p.errorf("%s %s: rating %s does not match score %d", day.Date, res.SpotID, res.Rating, res.Score)
			}
			if res.Color != scoring.RatingColor(res.Rating) {
				p.errorf("%s %s: color %s does not match rating %s", day.Date, res.SpotID, res.Color, res.Rating)
			}
			if res.BestTime == "" {
				p.errorf("%s %s: empty best time", day.Date, res.SpotID)
			}
			sum := res.Breakdown.Wind + res.Breakdown.Pressure + res.Breakdown.Tide + res.Breakdown.Temperature
			if sum != res.Score {
				p.errorf("%s %s: breakdown sums to %d, score is %d", day.Date, res.SpotID, sum, res.Score)
			}
		}
	}
	return p
}
