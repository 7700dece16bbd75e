// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides per-IP rate limiting settings for public endpoints.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// ThemeConfig provides the seasonal theme window.
type ThemeConfig interface {
	GetThemeSeasonalStart() time.Time
	GetThemeSeasonalEnd() time.Time
	GetThemeCheckInterval() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RateLimitRPS       float64
	RateLimitBurst     int
	ThemeSeasonalStart time.Time
	ThemeSeasonalEnd   time.Time
	ThemeCheckInterval time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// ThemeConfig implementation
func (c *Config) GetThemeSeasonalStart() time.Time     { return c.ThemeSeasonalStart }
func (c *Config) GetThemeSeasonalEnd() time.Time       { return c.ThemeSeasonalEnd }
func (c *Config) GetThemeCheckInterval() time.Duration { return c.ThemeCheckInterval }

// Load reads configuration from environment variables, after loading a .env
// file if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	seasonalStart, err := parseTime("THEME_SEASONAL_START", getEnv("THEME_SEASONAL_START", "2025-12-15T00:00:00+06:30"))
	if err != nil {
		return nil, err
	}
	seasonalEnd, err := parseTime("THEME_SEASONAL_END", getEnv("THEME_SEASONAL_END", "2026-02-01T00:00:00+06:30"))
	if err != nil {
		return nil, err
	}

	rateLimitRPS, err := parseFloat("RATE_LIMIT_RPS", getEnv("RATE_LIMIT_RPS", "10"))
	if err != nil {
		return nil, err
	}
	rateLimitBurst, err := parseInt("RATE_LIMIT_BURST", getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, err
	}
	themeCheckInterval, err := parseDuration("THEME_CHECK_INTERVAL", getEnv("THEME_CHECK_INTERVAL", "1h"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitRPS:       rateLimitRPS,
		RateLimitBurst:     rateLimitBurst,
		ThemeSeasonalStart: seasonalStart,
		ThemeSeasonalEnd:   seasonalEnd,
		ThemeCheckInterval: themeCheckInterval,
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if !cfg.CORSAllowAll && len(cfg.CORSOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ORIGINS must list at least one origin unless CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if !cfg.ThemeSeasonalStart.Before(cfg.ThemeSeasonalEnd) {
		return nil, fmt.Errorf("THEME_SEASONAL_START must be before THEME_SEASONAL_END")
	}
	if cfg.ThemeCheckInterval <= 0 {
		return nil, fmt.Errorf("THEME_CHECK_INTERVAL must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseTime(key, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return t, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseInt(key, value string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return result, nil
}

func parseFloat(key, value string) (float64, error) {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return result, nil
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
