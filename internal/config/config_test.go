// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Mongo.Database != "mi-mapa" {
		t.Errorf("Mongo.Database = %q, want mi-mapa", cfg.Mongo.Database)
	}
	if cfg.API.MarkerPageSize != 10 {
		t.Errorf("API.MarkerPageSize = %d, want 10", cfg.API.MarkerPageSize)
	}
	if cfg.API.VisitPageSize != 30 {
		t.Errorf("API.VisitPageSize = %d, want 30", cfg.API.VisitPageSize)
	}
	if cfg.API.VisitTimezone != "Europe/Madrid" {
		t.Errorf("API.VisitTimezone = %q, want Europe/Madrid", cfg.API.VisitTimezone)
	}
	if !cfg.Mongo.Breaker.Enabled {
		t.Error("Mongo.Breaker.Enabled should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Mongo.OperationTimeout != 5*time.Second {
		t.Errorf("Mongo.OperationTimeout = %v, want 5s", cfg.Mongo.OperationTimeout)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("MONGO_BREAKER_ENABLED", "false")
	t.Setenv("VISIT_PAGE_SIZE", "50")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if got := strings.Join(cfg.Security.CORSOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("Security.CORSOrigins = %q", got)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("Security.RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if cfg.Mongo.Breaker.Enabled {
		t.Error("Mongo.Breaker.Enabled should be false")
	}
	if cfg.API.VisitPageSize != 50 {
		t.Errorf("API.VisitPageSize = %d, want 50", cfg.API.VisitPageSize)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_LegacyURI(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("URI", "mongodb+srv://cluster0.example.net")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Mongo.URI != "mongodb+srv://cluster0.example.net" {
		t.Errorf("URI not applied, Mongo.URI = %q", cfg.Mongo.URI)
	}

	t.Setenv("MONGO_URI", "mongodb://preferred:27017")
	cfg, err = LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Mongo.URI != "mongodb://preferred:27017" {
		t.Errorf("MONGO_URI should win over URI, got %q", cfg.Mongo.URI)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 7000
mongo:
  uri: mongodb://from-file:27017
  operation_timeout: 2s
api:
  base_path: /api/v1
  visit_timezone: UTC
security:
  cors_origins:
    - https://mapa.example
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7001 {
		t.Errorf("env should override file: Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://from-file:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.OperationTimeout != 2*time.Second {
		t.Errorf("Mongo.OperationTimeout = %v, want 2s", cfg.Mongo.OperationTimeout)
	}
	if cfg.API.BasePath != "/api/v1" {
		t.Errorf("API.BasePath = %q", cfg.API.BasePath)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://mapa.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	// Untouched keys keep their defaults.
	if cfg.Mongo.Database != DefaultDatabase {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MONGO_URI", "postgres://nope")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for non-mongodb URI")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"empty uri", func(c *Config) { c.Mongo.URI = "" }, "required"},
		{"bad scheme", func(c *Config) { c.Mongo.URI = "http://x" }, "mongodb://"},
		{"blank database", func(c *Config) { c.Mongo.Database = " " }, "MONGO_DATABASE"},
		{"zero op timeout", func(c *Config) { c.Mongo.OperationTimeout = 0 }, "TIMEOUT"},
		{"breaker ratio", func(c *Config) { c.Mongo.Breaker.FailureRatio = 1.5 }, "FAILURE_RATIO"},
		{"breaker disabled ignores ratio", func(c *Config) {
			c.Mongo.Breaker.Enabled = false
			c.Mongo.Breaker.FailureRatio = 0
		}, ""},
		{"base path trailing slash", func(c *Config) { c.API.BasePath = "/api/" }, "API_BASE_PATH"},
		{"base path no leading slash", func(c *Config) { c.API.BasePath = "api" }, "API_BASE_PATH"},
		{"negative page size", func(c *Config) { c.API.VisitPageSize = -1 }, "PAGE_SIZE"},
		{"bad timezone", func(c *Config) { c.API.VisitTimezone = "Mars/Olympus" }, "VISIT_TIMEZONE"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"MONGO_URI":          "mongo.uri",
		"mongo_uri":          "mongo.uri",
		"HTTP_PORT":          "server.port",
		"DISABLE_RATE_LIMIT": "security.rate_limit_disabled",
		"URI":                "",
		"PATH":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if s.Addr() != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", s.Addr())
	}
}
