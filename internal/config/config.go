package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Meteo    MeteoConfig    `yaml:"meteo"`
	Geocode  GeocodeConfig  `yaml:"geocode"`
	Report   ReportConfig   `yaml:"report"`
	Planner  PlannerConfig  `yaml:"planner"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
	RateLimit   int    `yaml:"rate_limit_per_minute"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type MeteoConfig struct {
	ForecastURL string `yaml:"forecast_url"`
	ArchiveURL  string `yaml:"archive_url"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

type GeocodeConfig struct {
	URL       string `yaml:"url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	CacheSize int    `yaml:"cache_size"`
}

type ReportConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type PlannerConfig struct {
	MaxDays         int    `yaml:"max_days"`
	DefaultDays     int    `yaml:"default_days"`
	DefaultLanguage string `yaml:"default_language"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) MeteoTimeout() time.Duration {
	return time.Duration(c.Meteo.TimeoutMs) * time.Millisecond
}

func (c *Config) GeocodeTimeout() time.Duration {
	return time.Duration(c.Geocode.TimeoutMs) * time.Millisecond
}

func (c *Config) ReportTimeout() time.Duration {
	return time.Duration(c.Report.TimeoutMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Meteo: MeteoConfig{
			ForecastURL: "https://api.open-meteo.com/v1/forecast",
			ArchiveURL:  "https://archive-api.open-meteo.com/v1/archive",
			TimeoutMs:   10000,
		},
		Geocode: GeocodeConfig{
			URL:       "https://geocoding-api.open-meteo.com/v1/search",
			TimeoutMs: 10000,
			CacheSize: 512,
		},
		Report: ReportConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			TimeoutMs: 60000,
		},
		Planner: PlannerConfig{
			MaxDays:         14,
			DefaultDays:     7,
			DefaultLanguage: "en",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BARO_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("BARO_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("BARO_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("BARO_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("BARO_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("BARO_METEO_FORECAST_URL"); v != "" {
		cfg.Meteo.ForecastURL = v
	}
	if v := os.Getenv("BARO_METEO_ARCHIVE_URL"); v != "" {
		cfg.Meteo.ArchiveURL = v
	}
	if v := os.Getenv("BARO_GEOCODE_URL"); v != "" {
		cfg.Geocode.URL = v
	}
	if v := os.Getenv("BARO_REPORT_BASE_URL"); v != "" {
		cfg.Report.BaseURL = v
	}
	if v := os.Getenv("BARO_REPORT_API_KEY"); v != "" {
		cfg.Report.APIKey = v
	}
	if v := os.Getenv("BARO_REPORT_MODEL"); v != "" {
		cfg.Report.Model = v
	}
	if v := os.Getenv("BARO_DEFAULT_LANGUAGE"); v != "" {
		cfg.Planner.DefaultLanguage = v
	}
	if v := os.Getenv("BARO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
