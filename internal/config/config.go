// Teste Outsera - Golden Raspberry Awards API
// Copyright 2026 Raphael Ratuczne
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raphaelratuczne/teste-outsera

package config

import (
	"fmt"
	"time"
)

// Supported store drivers.
const (
	DriverDuckDB = "duckdb"
	DriverSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig locates the awards file loaded at startup.
type DatasetConfig struct {
	Path string `koanf:"path"`
}

// DatabaseConfig holds store settings.
type DatabaseConfig struct {
	Driver    string `koanf:"driver"`     // duckdb (default) or sqlite
	Path      string `koanf:"path"`       // ":memory:" keeps the dataset in process memory
	MaxMemory string `koanf:"max_memory"` // DuckDB only
	Threads   int    `koanf:"threads"`    // DuckDB only, 0 = runtime.NumCPU()
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds API response settings.
type APIConfig struct {
	// CacheTTL is how long /movies results stay cached. 0 disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds HTTP protection settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
