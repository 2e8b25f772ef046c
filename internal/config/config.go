// Mi Mapa - Marker and Visit API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mimapa

package config

import (
	"net"
	"strconv"
	"time"
	_ "time/tzdata" // visit timestamps need Europe/Madrid even on images without zoneinfo
)

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Mongo    MongoConfig    `koanf:"mongo"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	// URI is a mongodb:// or mongodb+srv:// connection string. Read from
	// MONGO_URI, or from URI when MONGO_URI is unset.
	URI string `koanf:"uri"`

	// Database defaults to mi-mapa. Only tests are expected to change it.
	Database string `koanf:"database"`

	AppName string `koanf:"app_name"`

	// ConnectTimeout bounds the initial connect and server selection.
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	// OperationTimeout bounds every single store round trip.
	OperationTimeout time.Duration `koanf:"operation_timeout"`

	MaxPoolSize uint64 `koanf:"max_pool_size"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker guarding store calls.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests allowed through while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `koanf:"timeout"`

	// The breaker trips once MinRequests have been seen and at least
	// FailureRatio of them failed.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// APIConfig holds resource handler behavior.
type APIConfig struct {
	// BasePath prefixes the resource routes. Empty serves /marcadores and /visitas.
	BasePath string `koanf:"base_path"`

	MarkerPageSize int `koanf:"marker_page_size"`
	VisitPageSize  int `koanf:"visit_page_size"`

	// VisitTimezone is the IANA zone used to stamp and render visit timestamps.
	VisitTimezone string `koanf:"visit_timezone"`

	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// Location loads VisitTimezone.
func (a APIConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.VisitTimezone)
}

// SecurityConfig covers CORS and rate limiting. There is no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads defaults, the optional YAML file and the environment, then validates.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
