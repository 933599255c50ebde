package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	GeocodingURL     string
	ForecastURL      string
	Language         string // fixed geocoding response language
	PreferredCountry string // ranked ahead of every other country
	HTTPTimeout      time.Duration
	DebounceWindow   time.Duration
	OutboundRPS      float64
	OutboundBurst    int

	// Session retention.
	SessionMax     int           // max number of live sessions (0 = unlimited)
	SessionIdleTTL time.Duration // idle sessions older than this are swept
	SweepInterval  time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeocodingURL = getenvDefault("GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search")
	cfg.ForecastURL = getenvDefault("FORECAST_URL", "https://api.open-meteo.com/v1/forecast")
	cfg.Language = getenvDefault("GEOCODING_LANGUAGE", "fr")
	cfg.PreferredCountry = getenvDefault("PREFERRED_COUNTRY", "France")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.DebounceWindow, err = getenvDuration("DEBOUNCE_WINDOW", "500ms"); err != nil {
		return nil, err
	}

	cfg.OutboundRPS = getenvFloat("OUTBOUND_RPS", 5)
	cfg.OutboundBurst = getenvInt("OUTBOUND_BURST", 5)

	cfg.SessionMax = getenvInt("SESSION_MAX", 1000)
	if cfg.SessionIdleTTL, err = getenvDuration("SESSION_IDLE_TTL", "30m"); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", "5m"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
