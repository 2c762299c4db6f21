package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/couchcryptid/fishcast/internal/adapter/http"
	"github.com/couchcryptid/fishcast/internal/catalog"
	"github.com/couchcryptid/fishcast/internal/forecast"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conditions API server",
	Long: `Serve the conditions and ratings API over HTTP. Forecast and tide
data is fetched on demand, cached for the configured TTL, and degraded to
a seasonal fallback pattern when the upstream feeds are unreachable.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, metrics, err := newRuntime()
	if err != nil {
		return err
	}

	coordinator := newCoordinator(cfg, logger, metrics)
	cached := forecast.NewCachedSource(coordinator, cfg.CacheTTL, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, cached, cached, catalog.Spots(), logger, metrics)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Warm the cache so readiness flips as soon as the feeds answer.
	go cached.FetchAll(ctx)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("fishcast serving",
		"addr", cfg.HTTPAddr,
		"station", cfg.TideStation,
		"horizon_days", cfg.ForecastDays,
		"cache_ttl", cfg.CacheTTL,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
