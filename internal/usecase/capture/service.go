// Package capture turns an incoming chat message into a stored entry and the
// reply the sender should see.
package capture

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"notion-inbox/internal/domain/entity"
	"notion-inbox/internal/observability/logging"
	"notion-inbox/internal/observability/tracing"
	"notion-inbox/internal/repository"
)

// Outcome is the result class of one handled message.
type Outcome string

const (
	OutcomeInvalidFormat Outcome = "invalid_format"
	OutcomeSaved         Outcome = "saved"
	OutcomeFailed        Outcome = "failed"
)

// Result is what the messaging side needs to answer the sender.
type Result struct {
	Outcome Outcome

	// Reply is one of the fixed reply texts.
	Reply string

	// Entry is the parsed entry, nil when parsing failed.
	Entry *entity.Entry
}

// Service parses messages and stores the resulting entries.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	Repo repository.EntryRepository
}

// NewService creates a capture service writing through repo.
func NewService(repo repository.EntryRepository) *Service {
	return &Service{Repo: repo}
}

// Handle processes one message text.
//
// Flow:
//  1. Parse the text; a format error yields the usage reply
//  2. Save the entry with a single write
//  3. Reply with a confirmation or the generic failure text
//
// Handle never returns an error: every failure is already mapped to a reply.
// Persistence failures are logged with their cause, which never reaches the
// reply text.
func (s *Service) Handle(ctx context.Context, text string) Result {
	ctx, span := tracing.StartSpan(ctx, "capture.Handle")
	defer span.End()

	logger := logging.FromContext(ctx)

	result := s.handle(ctx, logger, text)

	span.SetAttributes(attribute.String("capture.outcome", string(result.Outcome)))
	if result.Outcome == OutcomeFailed {
		span.SetStatus(codes.Error, "persist entry failed")
	}
	RecordOutcome(result.Outcome)

	return result
}

func (s *Service) handle(ctx context.Context, logger *slog.Logger, text string) Result {
	entry, err := entity.ParseEntry(text)
	if err != nil {
		logger.Debug("message rejected", slog.Any("error", err))
		return Result{Outcome: OutcomeInvalidFormat, Reply: ReplyInvalidFormat}
	}

	start := time.Now()
	err = s.Repo.Save(ctx, entry)
	RecordPersistDuration(time.Since(start))

	if err != nil {
		kind := repository.FailureUnknown
		var pErr *repository.PersistenceError
		if errors.As(err, &pErr) {
			kind = pErr.Kind
		}
		RecordPersistFailure(string(kind))

		logger.Error("failed to save entry",
			slog.String("kind", string(kind)),
			slog.String("title", entry.Title),
			slog.String("category", entry.Category),
			slog.Any("error", err))
		return Result{Outcome: OutcomeFailed, Reply: ReplyFailed, Entry: entry}
	}

	logger.Info("entry saved",
		slog.String("title", entry.Title),
		slog.String("category", entry.Category))
	return Result{Outcome: OutcomeSaved, Reply: savedReply(entry.Title, entry.Category), Entry: entry}
}
