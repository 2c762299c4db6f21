package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/adapter/kafka"
	"github.com/couchcryptid/fishcast/internal/catalog"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/forecast"
	"github.com/couchcryptid/fishcast/internal/scoring"
)

var (
	mockOutDir string
	mockDays   int
	mockDate   string
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Generate deterministic mock data fixtures",
	Long: `Generate conditions, ratings, and snapshot fixtures from the seasonal
fallback pattern pinned to a fixed date. The files feed test suites and
local frontends without touching the live APIs.`,
	RunE: runMock,
}

func init() {
	mockCmd.Flags().StringVar(&mockOutDir, "out", "data/mock", "output directory")
	mockCmd.Flags().IntVar(&mockDays, "days", 7, "horizon length in days")
	mockCmd.Flags().StringVar(&mockDate, "date", "2024-06-15", "base date (YYYY-MM-DD)")
	rootCmd.AddCommand(mockCmd)
}

func runMock(_ *cobra.Command, _ []string) error {
	base, err := time.Parse("2006-01-02", mockDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", mockDate, err)
	}
	if mockDays < 1 || mockDays > 16 {
		return fmt.Errorf("days must be between 1 and 16")
	}

	// Pin the clock so every run regenerates identical fixtures.
	generated := base.Add(6 * time.Hour)
	domain.SetClock(clockwork.NewFakeClockAt(generated))
	defer domain.SetClock(nil)

	days := domain.FallbackDays(mockDays)
	tides := domain.FallbackTides(mockDays)
	snapshots := kafka.BuildSnapshots(days, tides, catalog.Spots(), generated)

	ratings := make(map[string][]scoring.Result, len(days))
	for _, day := range days {
		ratings[day.Date] = scoring.ScoreCatalog(catalog.Spots(), domain.Conditions(day, tides), scoring.SpeciesAll)
	}

	fixtures := []struct {
		name string
		v    any
	}{
		{"conditions.json", forecast.Bundle{Days: days, Tides: tides}},
		{"ratings.json", ratings},
		{"snapshots.json", snapshots},
	}
	for _, f := range fixtures {
		path := filepath.Join(mockOutDir, f.name)
		if err := writeFixture(path, f.v); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		log.Printf("wrote %s", path)
	}

	printMockStats(days, ratings)
	return nil
}

func writeFixture(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printMockStats(days []domain.DayRecord, ratings map[string][]scoring.Result) {
	fmt.Println("\n=== Stats for updating test assertions ===")

	counts := map[scoring.Rating]int{}
	total := 0
	for _, day := range days {
		results := ratings[day.Date]
		if len(results) == 0 {
			continue
		}
		total += len(results)
		top := results[0]
		for _, res := range results[1:] {
			if res.Score > top.Score {
				top = res
			}
		}
		for _, res := range results {
			counts[res.Rating]++
		}
		fmt.Printf("%s: top %s %d/100 (%s)\n", day.Date, top.SpotID, top.Score, top.Rating)
	}

	fmt.Printf("Total ratings: %d\n", total)
	fmt.Printf("By rating: excellent=%d, good=%d, fair=%d, poor=%d\n",
		counts[scoring.RatingExcellent], counts[scoring.RatingGood],
		counts[scoring.RatingFair], counts[scoring.RatingPoor])
}
