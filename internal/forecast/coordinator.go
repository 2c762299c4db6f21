// Package forecast acquires weather and tide data and shapes it into the
// condition bundles the scoring engine consumes. Acquisition fans out to
// both feeds concurrently and degrades to synthetic data rather than
// failing: callers always get a usable bundle.
package forecast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/couchcryptid/fishcast/internal/config"
	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/observability"
)

// Bundle is one acquisition result: normalized days, the tide schedule,
// and a diagnostic when the feeds were unreachable. Err is set only on the
// full-fallback path; a bundle with Err empty may still contain fallback
// tides from a feed-reported error.
type Bundle struct {
	Days  []domain.DayRecord  `json:"days"`
	Tides domain.TideSchedule `json:"tides"`
	Err   string              `json:"error,omitempty"`
}

// Source produces condition bundles. Implementations never return an
// error: acquisition failures degrade to fallback data inside the bundle.
type Source interface {
	FetchAll(ctx context.Context) Bundle
}

// ForecastFetcher retrieves the raw forecast payload for a location.
type ForecastFetcher interface {
	Fetch(ctx context.Context, lat, lon float64, days int) (domain.ForecastPayload, error)
}

// TideFetcher retrieves raw tide predictions for a station.
type TideFetcher interface {
	Fetch(ctx context.Context, station string, days int) (domain.TidePayload, error)
}

// Coordinator fans acquisition out to the two feeds and fans the results
// back into one bundle.
type Coordinator struct {
	forecasts ForecastFetcher
	tides     TideFetcher

	lat     float64
	lon     float64
	days    int
	station string

	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewCoordinator wires a coordinator for the configured location, horizon,
// and tide station.
func NewCoordinator(cfg *config.Config, forecasts ForecastFetcher, tides TideFetcher, logger *slog.Logger, metrics *observability.Metrics) *Coordinator {
	return &Coordinator{
		forecasts: forecasts,
		tides:     tides,
		lat:       cfg.ForecastLat,
		lon:       cfg.ForecastLon,
		days:      cfg.ForecastDays,
		station:   cfg.TideStation,
		logger:    logger,
		metrics:   metrics,
	}
}

// FetchAll issues both feed requests concurrently and waits for both. If
// either transport fails, the whole bundle is replaced with fallback data
// and Err carries the failure's message; there is no partial-success path
// for transport errors. A tide feed error embedded in a 200 response
// replaces only the tide schedule and leaves Err empty.
func (c *Coordinator) FetchAll(ctx context.Context) Bundle {
	var (
		wg          sync.WaitGroup
		forecastRes domain.ForecastPayload
		forecastErr error
		tideRes     domain.TidePayload
		tideErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		forecastRes, forecastErr = c.forecasts.Fetch(ctx, c.lat, c.lon, c.days)
	}()
	go func() {
		defer wg.Done()
		tideRes, tideErr = c.tides.Fetch(ctx, c.station, c.days)
	}()
	wg.Wait()

	if forecastErr != nil || tideErr != nil {
		err := forecastErr
		if err == nil {
			err = tideErr
		}
		c.logger.WarnContext(ctx, "feed fetch failed, serving fallback data", "error", err)
		c.metrics.Fallbacks.WithLabelValues("both", "fetch_error").Inc()
		return Bundle{
			Days:  domain.FallbackDays(c.days),
			Tides: domain.FallbackTides(c.days),
			Err:   err.Error(),
		}
	}

	tides := domain.NormalizeTides(tideRes)
	if tideRes.Error != nil {
		// The tide feed reports some failures inside a 200 response.
		// Only the tide half is replaced and Err stays empty.
		c.logger.WarnContext(ctx, "tide feed reported an error, serving fallback tides",
			"message", tideRes.Error.Message)
		c.metrics.Fallbacks.WithLabelValues("tides", "feed_error").Inc()
		tides = domain.FallbackTides(c.days)
	}

	return Bundle{
		Days:  domain.NormalizeForecast(forecastRes),
		Tides: tides,
	}
}
