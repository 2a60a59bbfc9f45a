package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Analytics backend configuration
	Dashboard DashboardConfig

	// Clock configuration
	Clock ClockConfig

	// Logging configuration
	Logging LoggingConfig

	// Application metadata
	App AppConfig
}

// DashboardConfig holds analytics backend client configuration
type DashboardConfig struct {
	BaseURL           string
	APIPrefix         string
	Timeout           time.Duration // 0 keeps the transport default
	RequestsPerSecond float64       // 0 disables client-side rate limiting
	BurstSize         int
	DefaultCategories []string // Used when a caller passes no categories
}

// ClockConfig holds the local offset used to find day boundaries
type ClockConfig struct {
	UTCOffset      time.Duration
	UseLocalOffset bool // true when DASHBOARD_LOCAL_UTC_OFFSET is unset
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string // debug, info, warn, error
	Format    string // json, text
	AddSource bool
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

// maxUTCOffset bounds offsets to the ones real zones use
const maxUTCOffset = 14 * time.Hour

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Dashboard: DashboardConfig{
			BaseURL:           os.Getenv("DASHBOARD_API_URL"),
			APIPrefix:         getEnvOrDefault("DASHBOARD_API_PREFIX", "/api/v1"),
			Timeout:           getDurationOrDefault("DASHBOARD_HTTP_TIMEOUT", 0),
			RequestsPerSecond: getFloatOrDefault("DASHBOARD_RATE_LIMIT_RPS", 0),
			BurstSize:         getIntOrDefault("DASHBOARD_RATE_LIMIT_BURST", 1),
			DefaultCategories: getStringSliceOrDefault("DASHBOARD_DEFAULT_CATEGORIES", []string{}),
		},
		Logging: LoggingConfig{
			Level:     getEnvOrDefault("LOG_LEVEL", "info"),
			Format:    getEnvOrDefault("LOG_FORMAT", "json"),
			AddSource: getBoolOrDefault("LOG_ADD_SOURCE", false),
		},
		App: AppConfig{
			Name:        getEnvOrDefault("APP_NAME", "usage-dashboard"),
			Version:     getEnvOrDefault("APP_VERSION", "dev"),
			Environment: getEnvOrDefault("APP_ENV", "development"),
		},
	}

	var errs []string

	if raw := strings.TrimSpace(os.Getenv("DASHBOARD_LOCAL_UTC_OFFSET")); raw != "" {
		offset, err := ParseUTCOffset(raw)
		if err != nil {
			errs = append(errs, err.Error())
		}
		cfg.Clock.UTCOffset = offset
	} else {
		cfg.Clock.UseLocalOffset = true
	}

	if err := cfg.validate(errs); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validate(nil)
}

func (c *Config) validate(errs []string) error {
	// Required fields
	if c.Dashboard.BaseURL == "" {
		errs = append(errs, "DASHBOARD_API_URL is required")
	} else if u, err := url.Parse(c.Dashboard.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, "DASHBOARD_API_URL must be an absolute http(s) URL")
	}

	// Logical validations
	if c.Dashboard.Timeout < 0 {
		errs = append(errs, "DASHBOARD_HTTP_TIMEOUT cannot be negative")
	}

	if c.Dashboard.RequestsPerSecond < 0 {
		errs = append(errs, "DASHBOARD_RATE_LIMIT_RPS cannot be negative")
	}

	if c.Dashboard.RequestsPerSecond > 0 && c.Dashboard.BurstSize < 1 {
		errs = append(errs, "DASHBOARD_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if c.Clock.UTCOffset > maxUTCOffset || c.Clock.UTCOffset < -maxUTCOffset {
		errs = append(errs, "DASHBOARD_LOCAL_UTC_OFFSET must be within +/-14h")
	}

	if len(errs) > 0 {
		return errors.New("configuration errors:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ParseUTCOffset accepts "Z", "+03:00", "+5:30", "-0330", "-930", "+5" or a
// Go duration such as "-3h".
func ParseUTCOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "Z" || s == "z" {
		return 0, nil
	}

	if len(s) > 1 && (s[0] == '+' || s[0] == '-') && !strings.ContainsAny(s, "hms") {
		sign := time.Duration(1)
		if s[0] == '-' {
			sign = -1
		}
		hh, mm, hasColon := strings.Cut(s[1:], ":")
		if !hasColon {
			switch len(hh) {
			case 3, 4:
				hh, mm = hh[:len(hh)-2], hh[len(hh)-2:]
			}
		}

		hasMinutes := hasColon || mm != ""
		if !isDigits(hh) || len(hh) > 2 || hasMinutes && (len(mm) != 2 || !isDigits(mm)) {
			return 0, fmt.Errorf("DASHBOARD_LOCAL_UTC_OFFSET %q is not a valid offset", s)
		}

		hours, _ := strconv.Atoi(hh)
		minutes := 0
		if hasMinutes {
			minutes, _ = strconv.Atoi(mm)
		}
		if minutes >= 60 {
			return 0, fmt.Errorf("DASHBOARD_LOCAL_UTC_OFFSET %q is not a valid offset", s)
		}
		return sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("DASHBOARD_LOCAL_UTC_OFFSET %q is not a valid offset", s)
	}
	return d, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// String returns a string representation of the config (safe for logging)
func (c *Config) String() string {
	offset := "local"
	if !c.Clock.UseLocalOffset {
		offset = c.Clock.UTCOffset.String()
	}
	return fmt.Sprintf(
		"Config{Dashboard: %s%s, Timeout: %s, RateLimit: %v, Offset: %s, Environment: %s}",
		redactURL(c.Dashboard.BaseURL),
		c.Dashboard.APIPrefix,
		c.Dashboard.Timeout,
		c.Dashboard.RequestsPerSecond > 0,
		offset,
		c.App.Environment,
	)
}

// redactURL drops user info from the backend URL
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.User("REDACTED")
	return u.String()
}
