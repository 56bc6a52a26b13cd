// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Library  LibraryConfig
	LogLevel string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LibraryConfig controls how member libraries are fetched.
type LibraryConfig struct {
	// Timeout bounds a single member library lookup.
	Timeout time.Duration
	// MaxConcurrency caps parallel member lookups per request.
	MaxConcurrency int
	// ShareableTags are the tags that make a library entry eligible for group play.
	ShareableTags []string
}

const (
	defaultLogLevel          = "info"
	defaultLibraryTimeout    = 5 * time.Second
	defaultLibraryConcurrent = 8
	defaultShareableTags     = "online,co-op,multiplayer"
)

// Load reads configuration from environment variables.
// Returns error if required variables are not set or optional ones are malformed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	required := map[string]*string{}
	cfg := &Config{}

	required["SERVER_HOST"] = &cfg.Server.Host
	required["SERVER_PORT"] = &cfg.Server.Port
	required["DB_HOST"] = &cfg.Database.Host
	required["DB_PORT"] = &cfg.Database.Port
	required["DB_USER"] = &cfg.Database.User
	required["DB_PASSWORD"] = &cfg.Database.Password
	required["DB_NAME"] = &cfg.Database.DBName
	required["DB_SSLMODE"] = &cfg.Database.SSLMode

	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	} {
		value, err := getRequiredEnv(key)
		if err != nil {
			return nil, err
		}
		*required[key] = value
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)

	timeout, err := time.ParseDuration(getEnv("LIBRARY_TIMEOUT", defaultLibraryTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid LIBRARY_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid LIBRARY_TIMEOUT: must be positive")
	}

	concurrency, err := strconv.Atoi(getEnv("LIBRARY_MAX_CONCURRENCY", strconv.Itoa(defaultLibraryConcurrent)))
	if err != nil {
		return nil, fmt.Errorf("invalid LIBRARY_MAX_CONCURRENCY: %w", err)
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("invalid LIBRARY_MAX_CONCURRENCY: must be at least 1")
	}

	tags := splitList(getEnv("SHAREABLE_TAGS", defaultShareableTags))
	if len(tags) == 0 {
		return nil, fmt.Errorf("SHAREABLE_TAGS must name at least one tag")
	}

	cfg.Library = LibraryConfig{
		Timeout:        timeout,
		MaxConcurrency: concurrency,
		ShareableTags:  tags,
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
