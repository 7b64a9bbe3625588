package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"notion-inbox/internal/config"
	"notion-inbox/internal/infra/notion"
	"notion-inbox/internal/infra/telegram"
	"notion-inbox/internal/infra/worker"
	"notion-inbox/internal/observability/logging"
	"notion-inbox/internal/observability/tracing"
	"notion-inbox/internal/usecase/capture"
)

const serviceName = "notion-inbox"

func main() {
	logger := initLogger()

	creds, err := config.LoadCredentials()
	if err != nil {
		logMissingCredentials(logger, err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, creds); err != nil {
		logger.Error("bot stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("bot stopped")
}

// initLogger initializes the process logger and installs it as the slog default.
func initLogger() *slog.Logger {
	logger := logging.New()
	slog.SetDefault(logger)
	telegram.UseLogger(logger)
	return logger
}

// logMissingCredentials logs one error line per missing variable.
func logMissingCredentials(logger *slog.Logger, err error) {
	var missing *config.MissingCredentialsError
	if !errors.As(err, &missing) {
		logger.Error("failed to load credentials", slog.Any("error", err))
		return
	}
	for _, key := range missing.Keys {
		logger.Error("required environment variable is not set", slog.String("key", key))
	}
}

// run wires the bot and blocks until ctx is cancelled.
func run(ctx context.Context, logger *slog.Logger, creds *config.Credentials) error {
	shutdownTracer := tracing.InitTracer(serviceName)
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
	}()

	botMetrics := worker.NewBotMetrics(prometheus.DefaultRegisterer)
	botConfig := worker.LoadConfigFromEnv(logger, botMetrics)
	logger.Info("bot configuration loaded",
		slog.Int("max_concurrent", botConfig.MaxConcurrent),
		slog.Duration("poll_timeout", botConfig.PollTimeout),
		slog.Int("health_port", botConfig.HealthPort),
		slog.Float64("reply_rate", botConfig.ReplyRate),
		slog.Int("reply_burst", botConfig.ReplyBurst))

	notionConfig := notion.ConfigFromEnv(logger, creds.NotionToken, creds.NotionDatabaseID)
	notionConfig.HTTPClient = createNotionHTTPClient()
	repo, err := notion.NewEntryRepo(notionConfig)
	if err != nil {
		return fmt.Errorf("create notion repository: %w", err)
	}

	bot, err := telegram.NewBot(creds.TelegramBotToken, botConfig.Debug, createTelegramHTTPClient(botConfig.PollTimeout))
	if err != nil {
		return err
	}
	logger.Info("authorized on telegram", slog.String("username", bot.Self.UserName))

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", botConfig.HealthPort)
	healthServer := worker.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	listener := telegram.NewListener(bot, capture.NewService(repo), telegram.Config{
		MaxConcurrent: botConfig.MaxConcurrent,
		PollTimeout:   botConfig.PollTimeout,
		ReplyRate:     botConfig.ReplyRate,
		ReplyBurst:    botConfig.ReplyBurst,
	},
		telegram.WithLogger(logger),
		telegram.WithMetrics(botMetrics),
		telegram.WithReadiness(healthServer),
	)

	return listener.Run(ctx)
}

// createNotionHTTPClient creates the client for Notion API calls.
// It sets no overall timeout: an issued write runs until it completes or fails.
func createNotionHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// createTelegramHTTPClient creates the client for Bot API calls. The timeout
// leaves headroom above the long-poll timeout.
func createTelegramHTTPClient(pollTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: pollTimeout + 10*time.Second,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}
