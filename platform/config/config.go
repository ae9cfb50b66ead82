// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// APIConfig provides the location of the survey API used by the client.
type APIConfig interface {
	GetAPIBaseURL() string
	GetHTTPTimeout() time.Duration
	APIURL(path string) string
}

// StorageConfig provides settings for the client account storage.
type StorageConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetStoragePrefix() string
	GetStorageTTL() time.Duration
	GetStorageDir() string
}

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AuthServiceConfig provides settings needed by the stub auth service.
type AuthServiceConfig interface {
	JWTConfig
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the stub HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// Config holds every setting of both binaries.
type Config struct {
	Env string

	// Client
	APIBaseURL       string
	HTTPTimeout      time.Duration
	RedisURL         string
	RedisTLSInsecure bool
	StoragePrefix    string
	StorageTTL       time.Duration
	StorageDir       string

	// Stub API server
	HTTPAddr        string
	DatabaseURL     string
	JWTAccessSecret string
	AccessTokenTTL  time.Duration
	CORSAllowAll    bool
	CORSOrigins     []string
}

func (c *Config) GetAPIBaseURL() string         { return c.APIBaseURL }
func (c *Config) GetHTTPTimeout() time.Duration { return c.HTTPTimeout }

// APIURL joins path onto the API base URL.
func (c *Config) APIURL(path string) string {
	return strings.TrimRight(c.APIBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func (c *Config) GetRedisURL() string          { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool    { return c.RedisTLSInsecure }
func (c *Config) GetStoragePrefix() string     { return c.StoragePrefix }
func (c *Config) GetStorageTTL() time.Duration { return c.StorageTTL }
func (c *Config) GetStorageDir() string        { return c.StorageDir }

func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

func (c *Config) GetJWTAccessSecret() string       { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }

func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// Load reads configuration from environment variables, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8080"))

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:5050/api"),
		HTTPTimeout:      mustDuration(getEnv("HTTP_TIMEOUT", "10s")),
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisTLSInsecure: strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		StoragePrefix:    getEnv("STORAGE_PREFIX", "survey:"),
		StorageTTL:       mustDuration(getEnv("STORAGE_TTL", "0s")),
		StorageDir:       getEnv("STORAGE_DIR", defaultStorageDir()),
		HTTPAddr:         getEnv("HTTP_ADDR", ":5050"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:   mustDuration(getEnv("JWT_ACCESS_TTL", "1h")),
		CORSAllowAll:     containsWildcard(corsOrigins),
		CORSOrigins:      corsOrigins,
	}

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("API_BASE_URL is invalid: %w", err)
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be a positive duration")
	}
	if cfg.StorageTTL < 0 {
		return nil, fmt.Errorf("STORAGE_TTL must not be negative")
	}

	return cfg, nil
}

// LoadServer loads the configuration and checks the settings the stub API
// server cannot run without.
func LoadServer() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TTL must be a positive duration")
	}
	return cfg, nil
}

func defaultStorageDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "survey_client")
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// mustDuration returns -1 for malformed values so callers can reject them.
func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return -1
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
