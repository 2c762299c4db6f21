package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/catalog"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/scoring"
)

var (
	rateDate    string
	rateSpecies string
	rateJSON    bool
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Rate every spot for a forecast day",
	Long: `Score the spot catalog against one day of the forecast horizon and
print the ranked results with their factor breakdowns.`,
	RunE: runRate,
}

func init() {
	rateCmd.Flags().StringVar(&rateDate, "date", "", "forecast day to rate (YYYY-MM-DD, default first)")
	rateCmd.Flags().StringVar(&rateSpecies, "species", scoring.SpeciesAll, "species filter")
	rateCmd.Flags().BoolVar(&rateJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, _ []string) error {
	cfg, logger, metrics, err := newRuntime()
	if err != nil {
		return err
	}

	bundle := newCoordinator(cfg, logger, metrics).FetchAll(cmd.Context())
	if len(bundle.Days) == 0 {
		return fmt.Errorf("no forecast available")
	}

	date := rateDate
	if date == "" {
		date = bundle.Days[0].Date
	}
	day, ok := findDay(bundle.Days, date)
	if !ok {
		return fmt.Errorf("no forecast for %s: horizon runs %s to %s",
			date, bundle.Days[0].Date, bundle.Days[len(bundle.Days)-1].Date)
	}

	cond := domain.Conditions(day, bundle.Tides)
	results := scoring.ScoreCatalog(catalog.Spots(), cond, rateSpecies)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	metrics.RatingsComputed.Add(float64(len(results)))

	if rateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	printRatings(day, cond.Tides, results, bundle.Err)
	return nil
}

func findDay(days []domain.DayRecord, date string) (domain.DayRecord, bool) {
	for _, d := range days {
		if d.Date == date {
			return d, true
		}
	}
	return domain.DayRecord{}, false
}

func printRatings(day domain.DayRecord, tides []domain.TideEvent, results []scoring.Result, feedErr string) {
	insights := scoring.DayInsights(day)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("Spot Ratings for %s\n", day.Date)
	fmt.Println(strings.Repeat("=", 80))

	if feedErr != "" {
		fmt.Printf("\n! upstream feeds unavailable (%s): rating the typical seasonal pattern\n", feedErr)
	}

	fmt.Printf("\nConditions: %s, wind %.0f mph %s, %d mb %s, %.0f/%.0fF\n",
		insights.Weather, day.WindMph, insights.WindCompass, day.PressureMb, day.Trend,
		day.TempHighF, day.TempLowF)
	fmt.Printf("Front risk: %s (%d/10)   Wind direction %d/10   Precipitation %d/10\n",
		insights.FrontRiskLabel, insights.FrontRisk,
		insights.WindDirectionScore, insights.PrecipitationScore)

	if len(results) == 0 {
		fmt.Println("\nNo spots hold the requested species.")
		fmt.Println("\n" + strings.Repeat("=", 80))
		return
	}

	for i, res := range results {
		fmt.Printf("\n[%d] %s (%s)\n", i+1, res.SpotName, res.Species)
		fmt.Printf("    Score %d/100 (%s)\n", res.Score, res.Rating)
		fmt.Printf("    Wind %d/%d   Pressure %d/%d   Tide %d/%d   Temp %d/%d\n",
			res.Breakdown.Wind, scoring.WindMax,
			res.Breakdown.Pressure, scoring.PressureMax,
			res.Breakdown.Tide, scoring.TideMax,
			res.Breakdown.Temperature, scoring.TemperatureMax)
		if spot, ok := catalog.ByID(res.SpotID); ok {
			fmt.Printf("    Water movement %d (prefers %s tide)\n",
				scoring.ScoreWaterMovement(tides, spot.TidePref, day), spot.TidePref)
		}
		fmt.Printf("    Best time: %s\n", res.BestTime)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
}
