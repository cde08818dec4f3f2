package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.BaseURL != "https://web-scraping.dev" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.CutoffYear != 2023 {
		t.Errorf("CutoffYear = %d; want 2023", cfg.CutoffYear)
	}
	if !cfg.Headless {
		t.Error("Headless should default to true")
	}
	if cfg.PostgresEnabled() {
		t.Error("Postgres sink should be disabled without POSTGRES_HOST")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CUTOFF_YEAR", "2020")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("HEADLESS", "false")

	cfg := Load()

	if cfg.CutoffYear != 2020 {
		t.Errorf("CutoffYear = %d; want 2020", cfg.CutoffYear)
	}
	if !cfg.PostgresEnabled() {
		t.Error("Postgres sink should be enabled with POSTGRES_HOST set")
	}
	if cfg.Headless {
		t.Error("HEADLESS=false should disable headless mode")
	}
	if got := cfg.DSN(); !strings.Contains(got, "host=db.internal") {
		t.Errorf("DSN = %q; want host=db.internal", got)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("CUTOFF_YEAR", "not-a-year")

	cfg := Load()
	if cfg.CutoffYear != 2023 {
		t.Errorf("CutoffYear = %d; want fallback 2023", cfg.CutoffYear)
	}
}
