package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Upload.MaxFileSize != 32<<20 {
		t.Errorf("Upload.MaxFileSize = %d, want 32MB", cfg.Upload.MaxFileSize)
	}
	if cfg.Convert.DepthUnit != "m" {
		t.Errorf("Convert.DepthUnit = %q, want m", cfg.Convert.DepthUnit)
	}
	if cfg.Convert.HistorySize != 50 {
		t.Errorf("Convert.HistorySize = %d, want 50", cfg.Convert.HistorySize)
	}
	if !cfg.Rate.Enabled || cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate = %+v, want enabled at 100/min", cfg.Rate)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("CONVERT_DEPTH_UNIT", "ft")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Convert.DepthUnit != "ft" {
		t.Errorf("Convert.DepthUnit = %q, want ft", cfg.Convert.DepthUnit)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port type", "SERVER_PORT", "eighty"},
		{"bad duration", "SERVER_READ_TIMEOUT", "fast"},
		{"bad bool", "RATE_LIMIT_ENABLED", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want parse error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		return cfg
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantText string
	}{
		{
			name:     "port out of range",
			mutate:   func(c *Config) { c.Server.Port = 70000 },
			wantText: "SERVER_PORT",
		},
		{
			name:     "zero max file size",
			mutate:   func(c *Config) { c.Upload.MaxFileSize = 0 },
			wantText: "UPLOAD_MAX_FILE_SIZE",
		},
		{
			name:     "empty depth unit",
			mutate:   func(c *Config) { c.Convert.DepthUnit = "" },
			wantText: "CONVERT_DEPTH_UNIT",
		},
		{
			name:     "negative history",
			mutate:   func(c *Config) { c.Convert.HistorySize = -1 },
			wantText: "CONVERT_HISTORY_SIZE",
		},
		{
			name:     "rate limit enabled without budget",
			mutate:   func(c *Config) { c.Rate.RequestsPerMinute = 0 },
			wantText: "RATE_LIMIT_REQUESTS_PER_MINUTE",
		},
		{
			name:     "unknown log level",
			mutate:   func(c *Config) { c.Logging.Level = "verbose" },
			wantText: "LOG_LEVEL",
		},
		{
			name:     "unknown log format",
			mutate:   func(c *Config) { c.Logging.Format = "xml" },
			wantText: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Validate() error = %q, want mention of %s", err, tt.wantText)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
