package worker

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var botEnvKeys = []string{
	"BOT_MAX_CONCURRENT",
	"TELEGRAM_POLL_TIMEOUT",
	"BOT_HEALTH_PORT",
	"BOT_REPLY_RATE",
	"BOT_REPLY_BURST",
	"TELEGRAM_DEBUG",
}

func clearBotEnv(t *testing.T) {
	t.Helper()
	for _, key := range botEnvKeys {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.MaxConcurrent)
	assert.Equal(t, 60*time.Second, cfg.PollTimeout)
	assert.Equal(t, 9091, cfg.HealthPort)
	assert.Equal(t, 30.0, cfg.ReplyRate)
	assert.Equal(t, 30, cfg.ReplyBurst)
	assert.False(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestBotConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BotConfig)
		wantErr string
	}{
		{name: "zero concurrency", mutate: func(c *BotConfig) { c.MaxConcurrent = 0 }, wantErr: "max concurrent"},
		{name: "poll timeout too long", mutate: func(c *BotConfig) { c.PollTimeout = 2 * time.Minute }, wantErr: "poll timeout"},
		{name: "privileged port", mutate: func(c *BotConfig) { c.HealthPort = 80 }, wantErr: "health port"},
		{name: "zero rate", mutate: func(c *BotConfig) { c.ReplyRate = 0 }, wantErr: "reply rate"},
		{name: "zero burst", mutate: func(c *BotConfig) { c.ReplyBurst = 0 }, wantErr: "reply burst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	clearBotEnv(t)
	metrics := NewBotMetrics(prometheus.NewRegistry())

	cfg := LoadConfigFromEnv(slog.Default(), metrics)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
}

func TestLoadConfigFromEnv_CustomValues(t *testing.T) {
	clearBotEnv(t)
	t.Setenv("BOT_MAX_CONCURRENT", "25")
	t.Setenv("TELEGRAM_POLL_TIMEOUT", "30s")
	t.Setenv("BOT_HEALTH_PORT", "8081")
	t.Setenv("BOT_REPLY_RATE", "1.5")
	t.Setenv("BOT_REPLY_BURST", "3")
	t.Setenv("TELEGRAM_DEBUG", "true")

	cfg := LoadConfigFromEnv(slog.Default(), NewBotMetrics(prometheus.NewRegistry()))

	assert.Equal(t, BotConfig{
		MaxConcurrent: 25,
		PollTimeout:   30 * time.Second,
		HealthPort:    8081,
		ReplyRate:     1.5,
		ReplyBurst:    3,
		Debug:         true,
	}, *cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	clearBotEnv(t)
	t.Setenv("BOT_MAX_CONCURRENT", "500")
	t.Setenv("TELEGRAM_POLL_TIMEOUT", "forever")
	t.Setenv("BOT_HEALTH_PORT", "80")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	metrics := NewBotMetrics(prometheus.NewRegistry())

	cfg := LoadConfigFromEnv(logger, metrics)

	assert.Equal(t, 10, cfg.MaxConcurrent)
	assert.Equal(t, 60*time.Second, cfg.PollTimeout)
	assert.Equal(t, 9091, cfg.HealthPort)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))
	for _, field := range []string{"max_concurrent", "poll_timeout", "health_port"} {
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues(field)), field)
		assert.Contains(t, buf.String(), `"field":"`+field+`"`)
	}
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("reply_rate")))
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("Configuration fallback applied")))
}
