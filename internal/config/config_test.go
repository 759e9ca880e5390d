package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all BARO_ env vars to test pure defaults
	envVars := []string{
		"BARO_PORT", "BARO_METRICS_PORT", "BARO_ADMIN_TOKEN",
		"BARO_DATABASE_URL", "BARO_EVENTS_URL", "BARO_METEO_FORECAST_URL",
		"BARO_METEO_ARCHIVE_URL", "BARO_GEOCODE_URL", "BARO_REPORT_BASE_URL",
		"BARO_REPORT_API_KEY", "BARO_REPORT_MODEL", "BARO_DEFAULT_LANGUAGE",
		"BARO_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimit != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimit)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Meteo.ForecastURL != "https://api.open-meteo.com/v1/forecast" {
		t.Errorf("unexpected forecast URL %s", cfg.Meteo.ForecastURL)
	}
	if cfg.Geocode.CacheSize != 512 {
		t.Errorf("expected geocode cache 512, got %d", cfg.Geocode.CacheSize)
	}
	if cfg.Report.Model != "gpt-4o-mini" {
		t.Errorf("unexpected report model %s", cfg.Report.Model)
	}
	if cfg.Planner.MaxDays != 14 || cfg.Planner.DefaultDays != 7 {
		t.Errorf("unexpected planner limits %+v", cfg.Planner)
	}
	if cfg.Planner.DefaultLanguage != "en" {
		t.Errorf("expected default language 'en', got %s", cfg.Planner.DefaultLanguage)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	// Duration helpers
	if cfg.MeteoTimeout() != 10*time.Second {
		t.Errorf("expected MeteoTimeout 10s, got %v", cfg.MeteoTimeout())
	}
	if cfg.ReportTimeout() != time.Minute {
		t.Errorf("expected ReportTimeout 1m, got %v", cfg.ReportTimeout())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BARO_PORT", "9100")
	t.Setenv("BARO_METRICS_PORT", "9101")
	t.Setenv("BARO_ADMIN_TOKEN", "secret-token")
	t.Setenv("BARO_DATABASE_URL", "postgres://localhost/baro_test")
	t.Setenv("BARO_EVENTS_URL", "nats://nats:4222")
	t.Setenv("BARO_GEOCODE_URL", "http://geocode.test/v1/search")
	t.Setenv("BARO_REPORT_API_KEY", "sk-test")
	t.Setenv("BARO_DEFAULT_LANGUAGE", "nl")
	t.Setenv("BARO_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/baro_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Geocode.URL != "http://geocode.test/v1/search" {
		t.Errorf("expected geocode URL override, got '%s'", cfg.Geocode.URL)
	}
	if cfg.Report.APIKey != "sk-test" {
		t.Errorf("expected report api key override, got '%s'", cfg.Report.APIKey)
	}
	if cfg.Planner.DefaultLanguage != "nl" {
		t.Errorf("expected default language 'nl', got '%s'", cfg.Planner.DefaultLanguage)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baro.yaml")
	data := []byte(`
server:
  port: 8800
  rate_limit_per_minute: 30
planner:
  max_days: 10
  default_language: de
report:
  model: gpt-4o
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimit)
	}
	if cfg.Planner.MaxDays != 10 {
		t.Errorf("expected max days 10, got %d", cfg.Planner.MaxDays)
	}
	if cfg.Planner.DefaultLanguage != "de" {
		t.Errorf("expected language de, got %s", cfg.Planner.DefaultLanguage)
	}
	if cfg.Report.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.Report.Model)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port default 8701, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/baro.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
