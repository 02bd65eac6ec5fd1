package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the trimmed environment variable value for key, or def if unset or blank.
func GetEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

// GetEnvInt returns the environment variable value for key parsed as int, or def if unset or invalid.
func GetEnvInt(key string, def int) int {
	if i, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return i
	}
	return def
}

// GetEnvDuration returns the environment variable value for key parsed as time.Duration,
// or def if unset, invalid or negative.
func GetEnvDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(GetEnv(key, "")); err == nil && d >= 0 {
		return d
	}
	return def
}
