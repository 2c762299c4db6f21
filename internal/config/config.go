package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Forecast location and horizon.
	ForecastLat  float64
	ForecastLon  float64
	ForecastDays int

	// TideStation is the NOAA CO-OPS station id for tide predictions.
	TideStation string

	ForecastBaseURL string
	TideBaseURL     string
	FetchTimeout    time.Duration
	CacheTTL        time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka snapshot publishing configuration.
	KafkaBrokers   []string
	KafkaTopic     string
	PublishEnabled bool
}

const (
	// Lower Tampa Bay off St. Petersburg, and its nearest harmonic tide
	// station. Defaults target the water the built-in catalog covers.
	defaultLat     = "27.7634"
	defaultLon     = "-82.5437"
	defaultStation = "8726520"

	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultTideURL     = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"

	maxForecastDays = 16 // the weather API's horizon limit
)

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first;
// its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	lat, err := parseFloat("FORECAST_LAT", defaultLat)
	if err != nil {
		return nil, err
	}
	lon, err := parseFloat("FORECAST_LON", defaultLon)
	if err != nil {
		return nil, err
	}
	days, err := parseInt("FORECAST_DAYS", "7")
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	kafkaTopic := os.Getenv("KAFKA_TOPIC")
	publishEnabled := kafkaTopic != ""
	if v := os.Getenv("PUBLISH_ENABLED"); v != "" {
		publishEnabled = v == "true"
	}

	cfg := &Config{
		ForecastLat:  lat,
		ForecastLon:  lon,
		ForecastDays: days,
		TideStation:  envOrDefault("TIDE_STATION", defaultStation),

		ForecastBaseURL: envOrDefault("FORECAST_BASE_URL", defaultForecastURL),
		TideBaseURL:     envOrDefault("TIDE_BASE_URL", defaultTideURL),
		FetchTimeout:    fetchTimeout,
		CacheTTL:        cacheTTL,

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:   parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:     kafkaTopic,
		PublishEnabled: publishEnabled,
	}

	if cfg.ForecastLat < -90 || cfg.ForecastLat > 90 {
		return nil, errors.New("FORECAST_LAT must be between -90 and 90")
	}
	if cfg.ForecastLon < -180 || cfg.ForecastLon > 180 {
		return nil, errors.New("FORECAST_LON must be between -180 and 180")
	}
	if cfg.ForecastDays < 1 || cfg.ForecastDays > maxForecastDays {
		return nil, errors.New("FORECAST_DAYS must be between 1 and 16")
	}
	if cfg.TideStation == "" {
		return nil, errors.New("TIDE_STATION is required")
	}
	if cfg.PublishEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("PUBLISH_ENABLED is true but KAFKA_TOPIC is not set")
	}
	if cfg.PublishEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when publishing is enabled")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(envOrDefault(key, def), 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func parseInt(key, def string) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, def))
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func parseDuration(key, def string) (time.Duration, error) {
	v, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || v <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

// parseBrokers splits a comma-separated broker list, dropping empty parts.
func parseBrokers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
