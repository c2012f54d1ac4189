package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"golang.org/x/time/rate"
)

const (
	DefaultRatePerSecond = 5
	DefaultBurst         = 5
)

// HistoryProvider throttles lookups against the wrapped provider with a
// token bucket shared by every caller.
type HistoryProvider struct {
	next    ports.HistoryProvider
	limiter *rate.Limiter
}

var _ ports.HistoryProvider = (*HistoryProvider)(nil)

func New(next ports.HistoryProvider, perSecond float64, burst int) *HistoryProvider {
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	if burst <= 0 {
		burst = DefaultBurst
	}

	return &HistoryProvider{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (p *HistoryProvider) RecentMessages(ctx context.Context, kind domain.ChannelKind, since time.Duration, maxCount int) ([]domain.HistoryMessage, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for history rate limit: %w", err)
	}

	return p.next.RecentMessages(ctx, kind, since, maxCount)
}
