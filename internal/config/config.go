// Package config provides HTTP server configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings for `keizoku serve`.
type Config struct {
	Addr           string
	MaxSessions    int
	SessionTTL     time.Duration
	Metrics        bool
	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("KEIZOKU_ADDR", ":8080"),
		MaxSessions:    getEnvInt("KEIZOKU_MAX_SESSIONS", 1024),
		SessionTTL:     getEnvDuration("KEIZOKU_SESSION_TTL", time.Hour),
		Metrics:        getEnvBool("KEIZOKU_METRICS", true),
		AllowedOrigins: splitList(getEnv("KEIZOKU_ALLOWED_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("KEIZOKU_ADDR cannot be empty")
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("KEIZOKU_MAX_SESSIONS must be > 0, got %d", c.MaxSessions)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("KEIZOKU_SESSION_TTL must be > 0, got %s", c.SessionTTL)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("KEIZOKU_ALLOWED_ORIGINS cannot be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

// getEnvInt returns fallback when key is unset and -1 when it is set but
// not a number, so Validate reports the bad value instead of hiding it.
func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return -1
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
