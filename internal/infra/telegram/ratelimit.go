package telegram

import (
	"context"

	"golang.org/x/time/rate"
)

// Telegram allows a bot roughly 30 messages per second across all chats.
const (
	DefaultReplyRate  = 30.0
	DefaultReplyBurst = 30
)

// ReplyLimiter is a token bucket shared by every outgoing reply.
type ReplyLimiter struct {
	limiter *rate.Limiter
}

// NewReplyLimiter creates a limiter allowing perSecond replies with the given burst.
//
// Example:
//
//	limiter := NewReplyLimiter(30, 30)
func NewReplyLimiter(perSecond float64, burst int) *ReplyLimiter {
	return &ReplyLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a reply may be sent or ctx is done.
func (r *ReplyLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
