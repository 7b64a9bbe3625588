// Package telegram receives chat messages over Bot API long polling and sends
// the capture replies back to the originating chat.
package telegram

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"notion-inbox/internal/observability/logging"
	"notion-inbox/internal/observability/tracing"
	"notion-inbox/internal/usecase/capture"
)

// Skip reasons reported to Metrics.
const (
	SkipNoMessage = "no_message"
	SkipNonText   = "non_text"
	SkipCommand   = "command"
)

// MessageHandler turns message text into a reply.
type MessageHandler interface {
	Handle(ctx context.Context, text string) capture.Result
}

// Metrics receives listener events.
type Metrics interface {
	RecordUpdateReceived()
	RecordUpdateSkipped(reason string)
	HandlerStarted()
	HandlerFinished()
}

// Readiness is told when polling starts and stops.
type Readiness interface {
	SetReady(ready bool)
}

// Config controls polling and dispatch.
type Config struct {
	// MaxConcurrent bounds the number of messages handled at once.
	MaxConcurrent int

	// PollTimeout is the long-poll timeout sent to getUpdates.
	PollTimeout time.Duration

	// ReplyRate and ReplyBurst configure the outgoing reply limiter.
	ReplyRate  float64
	ReplyBurst int
}

// Listener dispatches each incoming text message to a MessageHandler.
type Listener struct {
	bot       BotAPI
	handler   MessageHandler
	config    Config
	limiter   *ReplyLimiter
	logger    *slog.Logger
	metrics   Metrics
	readiness Readiness
}

// Option customises a Listener.
type Option func(*Listener)

// WithLogger sets the base logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) { l.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(l *Listener) { l.metrics = m }
}

// WithReadiness sets the readiness target, typically the health server.
func WithReadiness(r Readiness) Option {
	return func(l *Listener) { l.readiness = r }
}

// NewListener creates a Listener. Non-positive config values fall back to
// a concurrency of 1 and the Telegram reply limits.
func NewListener(bot BotAPI, handler MessageHandler, config Config, opts ...Option) *Listener {
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 1
	}
	if config.ReplyRate <= 0 {
		config.ReplyRate = DefaultReplyRate
	}
	if config.ReplyBurst <= 0 {
		config.ReplyBurst = DefaultReplyBurst
	}

	l := &Listener{
		bot:       bot,
		handler:   handler,
		config:    config,
		limiter:   NewReplyLimiter(config.ReplyRate, config.ReplyBurst),
		logger:    slog.Default(),
		metrics:   nopMetrics{},
		readiness: nopReadiness{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run polls for updates until ctx is cancelled.
//
// Each accepted message is handled in its own goroutine, at most
// MaxConcurrent at a time. Messages are independent: there is no ordering
// between them. On cancellation Run stops polling and waits for in-flight
// handlers, which finish their write and reply.
//
// Returns:
//   - nil after a clean shutdown
func (l *Listener) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(l.config.PollTimeout / time.Second)
	u.AllowedUpdates = []string{"message"}

	updates := l.bot.GetUpdatesChan(u)
	l.readiness.SetReady(true)
	defer l.readiness.SetReady(false)

	l.logger.Info("telegram listener started",
		slog.Int("max_concurrent", l.config.MaxConcurrent),
		slog.Duration("poll_timeout", l.config.PollTimeout))

	g := new(errgroup.Group)
	g.SetLimit(l.config.MaxConcurrent)

	// In-flight handlers outlive ctx so a started write always gets its reply.
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("telegram listener stopping, waiting for in-flight messages")
			l.bot.StopReceivingUpdates()
			_ = g.Wait()
			l.logger.Info("telegram listener stopped")
			return nil

		case update, ok := <-updates:
			if !ok {
				_ = g.Wait()
				l.logger.Info("telegram update channel closed")
				return nil
			}
			l.dispatch(handlerCtx, g, update)
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, g *errgroup.Group, update tgbotapi.Update) {
	l.metrics.RecordUpdateReceived()

	msg, reason := acceptMessage(update)
	if msg == nil {
		l.metrics.RecordUpdateSkipped(reason)
		l.logger.Debug("update skipped",
			slog.Int("update_id", update.UpdateID),
			slog.String("reason", reason))
		return
	}

	g.Go(func() error {
		l.handleMessage(ctx, msg)
		return nil
	})
}

// acceptMessage returns the message to handle, or nil and the skip reason.
// Only new text messages that are not bot commands are handled.
func acceptMessage(update tgbotapi.Update) (*tgbotapi.Message, string) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil, SkipNoMessage
	}
	if msg.Text == "" {
		return nil, SkipNonText
	}
	if msg.IsCommand() {
		return nil, SkipCommand
	}
	return msg, ""
}

func (l *Listener) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	l.metrics.HandlerStarted()
	defer l.metrics.HandlerFinished()

	ctx, span := tracing.StartSpan(ctx, "telegram.HandleMessage",
		attribute.Int64("telegram.chat_id", msg.Chat.ID),
		attribute.Int("telegram.message_id", msg.MessageID))
	defer span.End()

	logger := logging.WithFields(logging.WithCorrelationID(ctx, l.logger, uuid.NewString()), map[string]interface{}{
		"chat_id":    msg.Chat.ID,
		"message_id": msg.MessageID,
	})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in message handler",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			l.reply(ctx, logger, msg, capture.ReplyFailed)
		}
	}()

	ctx = logging.WithLogger(ctx, logger)
	result := l.handler.Handle(ctx, msg.Text)

	logger.Info("message handled", slog.String("outcome", string(result.Outcome)))
	l.reply(ctx, logger, msg, result.Reply)
}

// reply answers msg in its chat, quoting the original message.
// Send failures are logged and otherwise ignored.
func (l *Listener) reply(ctx context.Context, logger *slog.Logger, msg *tgbotapi.Message, text string) {
	if err := l.limiter.Wait(ctx); err != nil {
		logger.Error("reply rate limiter failed", slog.Any("error", err))
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID

	if _, err := l.bot.Send(out); err != nil {
		logger.Error("failed to send reply", slog.Any("error", err))
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordUpdateReceived()      {}
func (nopMetrics) RecordUpdateSkipped(string) {}
func (nopMetrics) HandlerStarted()            {}
func (nopMetrics) HandlerFinished()           {}

type nopReadiness struct{}

func (nopReadiness) SetReady(bool) {}
