package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port       string
	AMapAPIKey string
	// City hint passed to the transit directions endpoint.
	DefaultCity string

	// Postgres DSN for the route cache; empty selects the SQLite backend.
	DatabaseURL string
	DBPath      string
	SeedPath    string

	// Metrics listen address (e.g., ":9102"). Empty disables the metrics server.
	MetricsAddr string

	// Extra minutes added on top of travel time in departure schedules.
	DefaultBufferMinutes float64
}

// Load reads configuration from the environment. Callers load .env first
// (godotenv) so local runs and deployments resolve the same way.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DefaultCity: Get("DEFAULT_CITY", "beijing"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		SeedPath:    Get("SEED_PATH", "data/seeds/venues.json"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}

	cfg.AMapAPIKey = strings.TrimSpace(os.Getenv("AMAP_API_KEY"))
	if cfg.AMapAPIKey == "" {
		return nil, errors.New("AMAP_API_KEY is required")
	}

	cfg.DefaultBufferMinutes = 5.0
	if v := os.Getenv("BUFFER_MINUTES"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return nil, fmt.Errorf("invalid BUFFER_MINUTES: %q", v)
		}
		cfg.DefaultBufferMinutes = f
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
