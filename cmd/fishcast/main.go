// Command fishcast runs the Tampa Bay fishing conditions service and its
// operational subcommands: the HTTP API server, one-shot forecast and
// rating printers, catalog inspection, fixture generation, self-checks,
// and the Kafka snapshot publisher.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/fishcast/internal/adapter/coops"
	"github.com/couchcryptid/fishcast/internal/adapter/openmeteo"
	"github.com/couchcryptid/fishcast/internal/config"
	"github.com/couchcryptid/fishcast/internal/forecast"
	"github.com/couchcryptid/fishcast/internal/observability"
)

var rootCmd = &cobra.Command{
	Use:   "fishcast",
	Short: "Fishcast - Tampa Bay inshore fishing conditions",
	Long: `Fishcast rates Tampa Bay inshore fishing spots from marine weather
forecasts and NOAA tide predictions. It serves the conditions API, prints
one-shot forecasts and spot ratings, and publishes daily snapshots to Kafka.`,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRuntime loads configuration and builds the logger and metrics shared
// by every subcommand that talks to the upstream feeds.
func newRuntime() (*config.Config, *slog.Logger, *observability.Metrics, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, observability.NewLogger(cfg.LogLevel, cfg.LogFormat), observability.NewMetrics(), nil
}

func newCoordinator(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *forecast.Coordinator {
	forecasts := openmeteo.NewClient(cfg.ForecastBaseURL, cfg.FetchTimeout, metrics, logger)
	tides := coops.NewClient(cfg.TideBaseURL, cfg.FetchTimeout, metrics, logger)
	return forecast.NewCoordinator(cfg, forecasts, tides, logger, metrics)
}
