// Package config provides fail-open loaders for optional settings.
//
// Every loader returns a usable value: a missing variable yields the default
// silently, and an unparsable or invalid value yields the default together
// with a warning. Required credentials are not loaded here; see
// notion-inbox/internal/config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigLoadResult represents the result of loading a configuration value.
//
// Fields:
//   - Value: The loaded configuration value (may be fallback if validation failed)
//   - Warnings: List of warning messages (one per fallback applied)
//   - FallbackApplied: True if the default value was used due to a parse or validation failure
type ConfigLoadResult[T any] struct {
	Value           T
	Warnings        []string
	FallbackApplied bool
}

// load is the shared loading routine behind every typed loader.
//
// Loading behavior:
//  1. Read environment variable
//  2. If not set or empty: Use default value (no warning)
//  3. If set: Parse; on failure use default and warn
//  4. Validate the parsed value (validator may be nil); on failure use default and warn
func load[T any](envKey string, defaultValue T, parse func(string) (T, error), validator func(T) error) ConfigLoadResult[T] {
	raw := os.Getenv(envKey)
	if raw == "" {
		return ConfigLoadResult[T]{Value: defaultValue}
	}

	fallback := func(reason error) ConfigLoadResult[T] {
		return ConfigLoadResult[T]{
			Value: defaultValue,
			Warnings: []string{fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%v'",
				envKey, raw, reason, defaultValue,
			)},
			FallbackApplied: true,
		}
	}

	value, err := parse(raw)
	if err != nil {
		return fallback(err)
	}

	if validator != nil {
		if err := validator(value); err != nil {
			return fallback(err)
		}
	}

	return ConfigLoadResult[T]{Value: value}
}

// LoadEnvWithFallback loads a string value from an environment variable
// with validation and automatic fallback to default on validation failure.
//
// Example:
//
//	result := LoadEnvWithFallback("NOTION_TITLE_PROPERTY", "Title", ValidateNotBlank)
//	name := result.Value
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult[string] {
	return load(envKey, defaultValue, func(s string) (string, error) { return s, nil }, validator)
}

// LoadEnvDuration loads a duration parsed by time.ParseDuration ("30s", "1m").
//
// Example:
//
//	result := LoadEnvDuration("TELEGRAM_POLL_TIMEOUT", 60*time.Second, func(d time.Duration) error {
//	    return ValidateDuration(d, time.Second, 60*time.Second)
//	})
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult[time.Duration] {
	return load(envKey, defaultValue, time.ParseDuration, validator)
}

// LoadEnvInt loads a base-10 integer. Spaces, decimals and other characters
// are rejected.
//
// Example:
//
//	result := LoadEnvInt("BOT_MAX_CONCURRENT", 10, func(v int) error {
//	    return ValidateIntRange(v, 1, 100)
//	})
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult[int] {
	return load(envKey, defaultValue, func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return v, nil
	}, validator)
}

// LoadEnvFloat loads a floating point value such as a rate per second.
func LoadEnvFloat(envKey string, defaultValue float64, validator func(float64) error) ConfigLoadResult[float64] {
	return load(envKey, defaultValue, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number format")
		}
		return v, nil
	}, validator)
}

// LoadEnvBool loads a boolean.
//   - True: "1", "t", "T", "true", "TRUE", "True"
//   - False: "0", "f", "F", "false", "FALSE", "False"
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult[bool] {
	return load(envKey, defaultValue, func(s string) (bool, error) {
		switch s {
		case "1", "t", "T", "true", "TRUE", "True":
			return true, nil
		case "0", "f", "F", "false", "FALSE", "False":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean format, expected 'true' or 'false'")
	}, nil)
}
