package application

import (
	"context"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRecencyWindow      = 72 * time.Hour
	DefaultRecencyMaxMessages = 200
)

// RecencyService classifies whether a player was recently asked about or
// already answered by scanning the bot's pending and answered streams.
type RecencyService struct {
	history     ports.HistoryProvider
	scorer      *matching.MentionScorer
	window      time.Duration
	maxMessages int
	logger      *zap.Logger
}

func NewRecencyService(history ports.HistoryProvider, scorer *matching.MentionScorer, window time.Duration, maxMessages int, logger *zap.Logger) *RecencyService {
	if window <= 0 {
		window = DefaultRecencyWindow
	}
	if maxMessages <= 0 {
		maxMessages = DefaultRecencyMaxMessages
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RecencyService{
		history:     history,
		scorer:      scorer,
		window:      window,
		maxMessages: maxMessages,
		logger:      logger,
	}
}

// Classify returns Answered when an expert reply mentions the entry, Pending
// when a pending question does, and None otherwise. Lookup failures count as
// empty streams.
func (s *RecencyService) Classify(ctx context.Context, entry domain.RosterEntry) domain.RecencyRecord {
	var pending, answered []domain.HistoryMessage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pending = s.fetch(gctx, domain.ChannelPending)
		return nil
	})
	g.Go(func() error {
		answered = s.fetch(gctx, domain.ChannelAnswered)
		return nil
	})
	_ = g.Wait()

	return s.classify(entry, pending, answered)
}

// ClassifyAll classifies every entry concurrently, preserving order.
func (s *RecencyService) ClassifyAll(ctx context.Context, entries []domain.RosterEntry) []domain.RecencyRecord {
	records := make([]domain.RecencyRecord, len(entries))

	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			records[i] = s.Classify(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

func (s *RecencyService) classify(entry domain.RosterEntry, pending, answered []domain.HistoryMessage) domain.RecencyRecord {
	record := domain.RecencyRecord{Entry: entry, Status: domain.RecencyNone}

	for _, msg := range answered {
		sections := matching.SplitMessage(msg.Content)
		if !sections.HasReply {
			continue
		}
		confidence := s.scorer.Score(sections.Reply, entry, msg.AuthorName, msg.AskerName)
		if confidence >= matching.ConfidenceLastName {
			record.Status = domain.RecencyAnswered
			record.Ref = msg.Ref
			record.Confidence = confidence
			return record
		}
	}

	for _, msg := range pending {
		sections := matching.SplitMessage(msg.Content)
		confidence := s.scorer.Score(sections.Body(), entry, msg.AuthorName, msg.AskerName)
		if confidence > 0 {
			record.Status = domain.RecencyPending
			record.Ref = msg.Ref
			record.Confidence = confidence
			return record
		}
	}

	return record
}

func (s *RecencyService) fetch(ctx context.Context, kind domain.ChannelKind) []domain.HistoryMessage {
	if s.history == nil {
		return nil
	}

	messages, err := s.history.RecentMessages(ctx, kind, s.window, s.maxMessages)
	if err != nil {
		s.logger.Warn("history lookup failed, treating stream as empty", zap.String("stream", string(kind)), zap.Error(err))
		return nil
	}
	return messages
}
