package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidateDuration validates that a duration is within [min, max].
//
// Example:
//
//	// Long-poll timeout between 1s and 60s
//	err := ValidateDuration(30*time.Second, time.Second, time.Minute)
func ValidateDuration(duration, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}

	if duration < min {
		return fmt.Errorf("duration %v is below minimum %v", duration, min)
	}

	if duration > max {
		return fmt.Errorf("duration %v exceeds maximum %v", duration, max)
	}

	return nil
}

// ValidateIntRange validates that an integer value is within [min, max].
//
// Use cases:
//   - Handler concurrency (1-100)
//   - Port numbers (1024-65535)
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}

	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}

	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}

	return nil
}

// ValidatePositiveFloat validates that a value is strictly greater than zero.
func ValidatePositiveFloat(value float64) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %v", value)
	}
	return nil
}

// ValidateNotBlank rejects strings that are empty after trimming whitespace.
func ValidateNotBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value must not be blank")
	}
	return nil
}
