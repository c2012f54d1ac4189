package ports

import (
	"context"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

// HistoryProvider returns the automated author's recent messages on one
// stream, newest first, bounded by age and count.
type HistoryProvider interface {
	RecentMessages(ctx context.Context, kind domain.ChannelKind, since time.Duration, maxCount int) ([]domain.HistoryMessage, error)
}

// HistoryRecorder stores messages posted by the automated author. Append
// assigns a Ref when the message has none.
type HistoryRecorder interface {
	Append(ctx context.Context, kind domain.ChannelKind, msg domain.HistoryMessage) (domain.HistoryMessage, error)
	Get(ctx context.Context, ref domain.MessageRef) (domain.ChannelKind, domain.HistoryMessage, error)
	Move(ctx context.Context, ref domain.MessageRef, kind domain.ChannelKind, msg domain.HistoryMessage) error
}
