// Package worker holds the bot runtime around the Telegram listener: its
// tunables, health endpoints and runtime metrics.
package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"notion-inbox/internal/pkg/config"
)

// BotConfig holds the optional runtime settings of the bot process.
type BotConfig struct {
	// MaxConcurrent bounds how many messages are handled at once.
	// Env: BOT_MAX_CONCURRENT (1-100). Default: 10
	MaxConcurrent int

	// PollTimeout is the getUpdates long-poll timeout.
	// Env: TELEGRAM_POLL_TIMEOUT (1s-60s). Default: 60s
	PollTimeout time.Duration

	// HealthPort is the port of the /health server.
	// Env: BOT_HEALTH_PORT (1024-65535). Default: 9091
	HealthPort int

	// ReplyRate is the sustained outgoing reply rate per second.
	// Env: BOT_REPLY_RATE (> 0). Default: 30
	ReplyRate float64

	// ReplyBurst is the reply limiter burst size.
	// Env: BOT_REPLY_BURST (1-1000). Default: 30
	ReplyBurst int

	// Debug logs every Bot API request.
	// Env: TELEGRAM_DEBUG. Default: false
	Debug bool
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() BotConfig {
	return BotConfig{
		MaxConcurrent: 10,
		PollTimeout:   60 * time.Second,
		HealthPort:    9091,
		ReplyRate:     30,
		ReplyBurst:    30,
	}
}

func validateMaxConcurrent(v int) error { return config.ValidateIntRange(v, 1, 100) }
func validatePollTimeout(d time.Duration) error {
	return config.ValidateDuration(d, time.Second, 60*time.Second)
}
func validatePort(v int) error       { return config.ValidateIntRange(v, 1024, 65535) }
func validateReplyBurst(v int) error { return config.ValidateIntRange(v, 1, 1000) }

// Validate checks every field against its allowed range.
func (c *BotConfig) Validate() error {
	var errs []error

	if err := validateMaxConcurrent(c.MaxConcurrent); err != nil {
		errs = append(errs, fmt.Errorf("max concurrent: %w", err))
	}
	if err := validatePollTimeout(c.PollTimeout); err != nil {
		errs = append(errs, fmt.Errorf("poll timeout: %w", err))
	}
	if err := validatePort(c.HealthPort); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}
	if err := config.ValidatePositiveFloat(c.ReplyRate); err != nil {
		errs = append(errs, fmt.Errorf("reply rate: %w", err))
	}
	if err := validateReplyBurst(c.ReplyBurst); err != nil {
		errs = append(errs, fmt.Errorf("reply burst: %w", err))
	}

	return errors.Join(errs...)
}

// LoadConfigFromEnv loads BotConfig with fail-open semantics: an invalid value
// never stops the bot. Each fallback is logged as a warning and counted in
// metrics, and the fallback gauge reflects whether any field fell back.
//
// Returns:
//   - *BotConfig: always valid configuration
func LoadConfigFromEnv(logger *slog.Logger, metrics *BotMetrics) *BotConfig {
	cfg := DefaultConfig()
	anyFallback := false

	observe := func(field string, warnings []string, fallback bool) {
		metrics.Observe(field, fallback)
		if fallback {
			anyFallback = true
		}
		for _, warning := range warnings {
			logger.Warn("Configuration fallback applied",
				slog.String("field", field),
				slog.String("warning", warning))
		}
	}

	maxConcurrent := config.LoadEnvInt("BOT_MAX_CONCURRENT", cfg.MaxConcurrent, validateMaxConcurrent)
	cfg.MaxConcurrent = maxConcurrent.Value
	observe("max_concurrent", maxConcurrent.Warnings, maxConcurrent.FallbackApplied)

	pollTimeout := config.LoadEnvDuration("TELEGRAM_POLL_TIMEOUT", cfg.PollTimeout, validatePollTimeout)
	cfg.PollTimeout = pollTimeout.Value
	observe("poll_timeout", pollTimeout.Warnings, pollTimeout.FallbackApplied)

	healthPort := config.LoadEnvInt("BOT_HEALTH_PORT", cfg.HealthPort, validatePort)
	cfg.HealthPort = healthPort.Value
	observe("health_port", healthPort.Warnings, healthPort.FallbackApplied)

	replyRate := config.LoadEnvFloat("BOT_REPLY_RATE", cfg.ReplyRate, config.ValidatePositiveFloat)
	cfg.ReplyRate = replyRate.Value
	observe("reply_rate", replyRate.Warnings, replyRate.FallbackApplied)

	replyBurst := config.LoadEnvInt("BOT_REPLY_BURST", cfg.ReplyBurst, validateReplyBurst)
	cfg.ReplyBurst = replyBurst.Value
	observe("reply_burst", replyBurst.Warnings, replyBurst.FallbackApplied)

	debug := config.LoadEnvBool("TELEGRAM_DEBUG", cfg.Debug)
	cfg.Debug = debug.Value
	observe("debug", debug.Warnings, debug.FallbackApplied)

	metrics.SetFallbackActive(anyFallback)
	metrics.RecordLoadTimestamp()

	return &cfg
}
