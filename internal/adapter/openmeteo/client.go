// Package openmeteo fetches daily and hourly forecast data from the
// Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/fishcast/internal/domain"
	"github.com/couchcryptid/fishcast/internal/observability"
)

// dailyFields and hourlyFields are the variable lists requested from the
// API. The daily arrays come back index-aligned with the time array.
const (
	dailyFields  = "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max,wind_direction_10m_dominant,weather_code"
	hourlyFields = "pressure_msl"

	feedLabel = "forecast"
)

// Client calls the Open-Meteo forecast endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a forecast client against the given base URL.
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

// Fetch retrieves the raw forecast payload for a location and horizon.
// Units are requested imperial so downstream scoring never converts.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, days int) (domain.ForecastPayload, error) {
	params := url.Values{
		"latitude":           {fmt.Sprintf("%.4f", lat)},
		"longitude":          {fmt.Sprintf("%.4f", lon)},
		"daily":              {dailyFields},
		"hourly":             {hourlyFields},
		"forecast_days":      {strconv.Itoa(days)},
		"timezone":           {"auto"},
		"temperature_unit":   {"fahrenheit"},
		"wind_speed_unit":    {"mph"},
		"precipitation_unit": {"inch"},
	}

	start := time.Now()
	payload, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	c.metrics.FeedDuration.WithLabelValues(feedLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(feedLabel, "error").Inc()
		return domain.ForecastPayload{}, err
	}

	c.metrics.FeedRequests.WithLabelValues(feedLabel, "success").Inc()
	c.logger.DebugContext(ctx, "fetched forecast",
		"days", len(payload.Daily.Time),
		"pressure_samples", len(payload.Hourly.PressureMsl))
	return payload, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (domain.ForecastPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ForecastPayload{}, fmt.Errorf("weather API returned %d", resp.StatusCode)
	}

	var payload domain.ForecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ForecastPayload{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return payload, nil
}
