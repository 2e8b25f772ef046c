// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/mimapa/internal/logging"
)

// Validate checks the loaded configuration once at startup.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateMongo(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateMongo() error {
	m := c.Mongo
	if m.URI == "" {
		return fmt.Errorf("MONGO_URI (or URI) is required")
	}
	if !strings.HasPrefix(m.URI, "mongodb://") && !strings.HasPrefix(m.URI, "mongodb+srv://") {
		return fmt.Errorf("MONGO_URI must start with mongodb:// or mongodb+srv://")
	}
	if strings.TrimSpace(m.Database) == "" {
		return fmt.Errorf("MONGO_DATABASE must not be empty")
	}
	if m.ConnectTimeout <= 0 || m.OperationTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT and MONGO_OPERATION_TIMEOUT must be positive")
	}
	if m.Breaker.Enabled {
		if m.Breaker.FailureRatio <= 0 || m.Breaker.FailureRatio > 1 {
			return fmt.Errorf("MONGO_BREAKER_FAILURE_RATIO must be in (0, 1]")
		}
		if m.Breaker.Timeout <= 0 {
			return fmt.Errorf("MONGO_BREAKER_TIMEOUT must be positive")
		}
	}
	return nil
}

func (c *Config) validateAPI() error {
	a := c.API
	if a.BasePath != "" && (!strings.HasPrefix(a.BasePath, "/") || strings.HasSuffix(a.BasePath, "/")) {
		return fmt.Errorf("API_BASE_PATH must start with / and must not end with /")
	}
	if a.MarkerPageSize < 0 || a.VisitPageSize < 0 {
		return fmt.Errorf("MARKER_PAGE_SIZE and VISIT_PAGE_SIZE must not be negative")
	}
	if a.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if _, err := a.Location(); err != nil {
		return fmt.Errorf("VISIT_TIMEZONE %q is not a valid IANA zone: %w", a.VisitTimezone, err)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := c.Security
	if s.RateLimitDisabled {
		return nil
	}
	if s.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if s.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.KnownLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
}
