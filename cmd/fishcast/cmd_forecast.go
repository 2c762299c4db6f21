package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/config"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/forecast"
)

var forecastJSON bool

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Fetch and print the conditions bundle",
	Long: `Fetch the marine forecast and tide predictions for the configured
location and print the normalized horizon day by day.`,
	RunE: runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&forecastJSON, "json", false, "print the bundle as JSON")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, _ []string) error {
	cfg, logger, metrics, err := newRuntime()
	if err != nil {
		return err
	}

	bundle := newCoordinator(cfg, logger, metrics).FetchAll(cmd.Context())

	if forecastJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	printBundle(cfg, bundle)
	return nil
}

func printBundle(cfg *config.Config, bundle forecast.Bundle) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("%d-Day Conditions for %.4f, %.4f (tide station %s)\n",
		len(bundle.Days), cfg.ForecastLat, cfg.ForecastLon, cfg.TideStation)
	fmt.Println(strings.Repeat("=", 80))

	if bundle.Err != "" {
		fmt.Printf("\n! upstream feeds unavailable (%s): showing typical seasonal pattern\n", bundle.Err)
	}

	for _, day := range bundle.Days {
		fmt.Printf("\n%s  %s\n", day.Date, domain.WeatherLabel(day.WeatherCode))
		fmt.Printf("    Temp %.0f/%.0fF   Wind %.0f mph %s   Pressure %d mb (%s)   Rain %.2f in\n",
			day.TempHighF, day.TempLowF,
			day.WindMph, domain.CompassPoint(day.WindDirDeg),
			day.PressureMb, day.Trend, day.PrecipIn)
		printTideLine(bundle.Tides[day.Date])
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
}

func printTideLine(events []domain.TideEvent) {
	if len(events) == 0 {
		fmt.Println("    Tides: no predictions")
		return
	}
	parts := make([]string, 0, len(events))
	for _, e := range events {
		kind := "High"
		if e.Type == domain.TideLow {
			kind = "Low"
		}
		parts = append(parts, fmt.Sprintf("%s %s (%.1f ft)", kind, domain.ClockLabel(e.Hour, e.Minute), e.HeightFt))
	}
	fmt.Printf("    Tides: %s\n", strings.Join(parts, ", "))
}
