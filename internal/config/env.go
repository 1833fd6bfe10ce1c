// This file contains the typed environment accessors underlying all
// domain-grouped lookups.

package config

import (
	"os"
	"strconv"
	"strings"
)

// Config provides typed, fail-soft access to environment-backed settings.
// It holds no state: every accessor re-reads the process environment, so a
// Config can be shared freely and never goes stale.
type Config struct{}

// New creates a Configuration Provider.
//
// Returns:
//   - *Config: The provider instance.
func New() *Config {
	return &Config{}
}

// Get returns the value of the environment variable key, or defaultVal if
// the variable is not set. A variable set to the empty string is returned
// as-is; only absence triggers the default.
//
// Parameters:
//   - key: The environment variable name.
//   - defaultVal: The value returned when the variable is absent.
//
// Returns:
//   - string: The resolved value.
func (c *Config) Get(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// GetBool returns the boolean value of the environment variable key.
// The case-insensitive literals "true", "1", "yes" and "on" parse as true;
// any other present value, including the empty string, parses as false.
// An absent variable resolves to defaultVal.
//
// Parameters:
//   - key: The environment variable name.
//   - defaultVal: The value returned when the variable is absent.
//
// Returns:
//   - bool: The resolved value.
func (c *Config) GetBool(key string, defaultVal bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	switch strings.ToLower(val) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// GetInt returns the integer value of the environment variable key.
// An absent variable or an unparseable value resolves to defaultVal; the
// parse error is swallowed, never surfaced.
//
// Parameters:
//   - key: The environment variable name.
//   - defaultVal: The value returned when the variable is absent or invalid.
//
// Returns:
//   - int: The resolved value.
func (c *Config) GetInt(key string, defaultVal int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return defaultVal
	}
	return parsed
}
