// Package config loads the client-core settings from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the core needs from its host environment.
type Config struct {
	// API
	APIBaseURL     string
	RequestTimeout time.Duration
	MaxRetries     int

	// Amount formatting
	GroupSeparator    string
	DecimalSeparator  string
	MaxFractionDigits int

	// Logging
	LogLevel string
}

// Load reads the configuration, sourcing a .env file first when one
// exists. Missing keys fall back to defaults; Validate catches nonsense.
func Load() *Config {
	// Absence of a .env file is the normal case outside development.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout: getEnvDuration("API_REQUEST_TIMEOUT", 10*time.Second),
		MaxRetries:     getEnvInt("API_MAX_RETRIES", 2),

		GroupSeparator:    getEnv("AMOUNT_GROUP_SEPARATOR", ","),
		DecimalSeparator:  getEnv("AMOUNT_DECIMAL_SEPARATOR", "."),
		MaxFractionDigits: getEnvInt("AMOUNT_MAX_FRACTION_DIGITS", 2),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.APIBaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API base URL %q: %v", c.APIBaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid API base URL scheme %q: must be http or https", u.Scheme))
	}

	if c.RequestTimeout < time.Second {
		problems = append(problems, fmt.Sprintf("request timeout %v too short: must be at least 1s", c.RequestTimeout))
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		problems = append(problems, fmt.Sprintf("max retries %d out of range [0,10]", c.MaxRetries))
	}

	if c.GroupSeparator == c.DecimalSeparator {
		problems = append(problems, "group and decimal separators must differ")
	}
	if c.MaxFractionDigits < 0 || c.MaxFractionDigits > 8 {
		problems = append(problems, fmt.Sprintf("max fraction digits %d out of range [0,8]", c.MaxFractionDigits))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
