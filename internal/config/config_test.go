package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "fr" || cfg.PreferredCountry != "France" {
		t.Fatalf("unexpected locale defaults: %+v", cfg)
	}
	if cfg.DebounceWindow != 500*time.Millisecond {
		t.Fatalf("expected 500ms debounce, got %s", cfg.DebounceWindow)
	}
	if cfg.Port != "8080" || cfg.SessionMax != 1000 || cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEBOUNCE_WINDOW", "250ms")
	t.Setenv("OUTBOUND_RPS", "0.5")
	t.Setenv("SESSION_MAX", "12")
	t.Setenv("GEOCODING_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DebounceWindow != 250*time.Millisecond || cfg.OutboundRPS != 0.5 || cfg.SessionMax != 12 || cfg.Language != "en" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid duration")
	}
}
