// Package coops fetches high/low tide predictions from the NOAA CO-OPS
// data API.
package coops

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/observability"
)

const (
	// dateFormat is the compact form the CO-OPS API expects for
	// begin_date and end_date.
	dateFormat = "20060102"

	feedLabel = "tides"
)

// Client calls the CO-OPS datagetter endpoint for tide predictions.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a tide prediction client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves hilo predictions for a station from today through the
// end of the horizon. Times come back in the station's local time zone,
// matching the forecast feed's local dates.
func (c *Client) Fetch(ctx context.Context, station string, days int) (domain.TidePayload, error) {
	begin := clock.Now()
	end := begin.AddDate(0, 0, days-1)

	params := url.Values{
		"begin_date":  {begin.Format(dateFormat)},
		"end_date":    {end.Format(dateFormat)},
		"station":     {station},
		"product":     {"predictions"},
		"datum":       {"MLLW"},
		"time_zone":   {"lst_ldt"},
		"interval":    {"hilo"},
		"units":       {"english"},
		"format":      {"json"},
		"application": {"fishcast"},
	}

	start := time.Now()
	payload, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	c.metrics.FeedDuration.WithLabelValues(feedLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(feedLabel, "error").Inc()
		return domain.TidePayload{}, err
	}

	c.metrics.FeedRequests.WithLabelValues(feedLabel, "success").Inc()
	c.logger.DebugContext(ctx, "fetched tide predictions",
		"station", station,
		"predictions", len(payload.Predictions))
	return payload, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.TidePayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.TidePayload{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TidePayload{}, fmt.Errorf("tide request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.TidePayload{}, fmt.Errorf("tide API returned %d", resp.StatusCode)
	}

	var payload domain.TidePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.TidePayload{}, fmt.Errorf("decode tide response: %w", err)
	}
	return payload, nil
}
