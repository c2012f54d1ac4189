package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"go.uber.org/zap"
)

const DefaultMaxChoices = 5

// QuestionService is the gate every question passes through: identify the
// player, disambiguate when needed, then block recent or answered players.
type QuestionService struct {
	identify   *IdentificationService
	recency    *RecencyService
	sessions   *SessionManager
	maxChoices int
	logger     *zap.Logger
}

func NewQuestionService(identify *IdentificationService, recency *RecencyService, sessions *SessionManager, maxChoices int, logger *zap.Logger) *QuestionService {
	if maxChoices <= 0 || maxChoices > domain.MaxSessionChoices {
		maxChoices = DefaultMaxChoices
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuestionService{
		identify:   identify,
		recency:    recency,
		sessions:   sessions,
		maxChoices: maxChoices,
		logger:     logger,
	}
}

// Ask blocks while a disambiguation session is open. A requester who already
// has a session open gets an Ignored decision.
func (s *QuestionService) Ask(ctx context.Context, cmd AskCommand) (Decision, error) {
	identification, err := s.identify.Identify(cmd.Question)
	if err != nil {
		return Decision{}, fmt.Errorf("identify question: %w", err)
	}
	return s.AskIdentified(ctx, cmd, identification)
}

// AskIdentified is Ask for a question the caller has already identified.
func (s *QuestionService) AskIdentified(ctx context.Context, cmd AskCommand, identification Identification) (Decision, error) {
	resolution := identification.Resolution
	decision := Decision{Resolution: resolution}

	if resolution.Kind.RequiresEntity() {
		if resolution.Entry == nil {
			return Decision{}, fmt.Errorf("%s resolution has no entry", resolution.Kind)
		}
		return s.checkRecency(ctx, cmd, decision, *resolution.Entry), nil
	}

	switch resolution.Kind {
	case domain.ResolutionNoEntity:
		decision.Verdict = VerdictProceed
		return decision, nil
	case domain.ResolutionBlocked:
		decision.Verdict = VerdictBlocked
		decision.Reason = BlockMultipleEntities
		s.logBlocked(cmd, decision)
		return decision, nil
	case domain.ResolutionHomonymSession:
		return s.disambiguate(ctx, cmd, decision)
	default:
		return Decision{}, fmt.Errorf("unknown resolution %q", resolution.Kind)
	}
}

func (s *QuestionService) disambiguate(ctx context.Context, cmd AskCommand, decision Decision) (Decision, error) {
	matches := decision.Resolution.Matches.Limit(s.maxChoices)
	records := s.recency.ClassifyAll(ctx, matches.Entries())

	kind := domain.SessionKindBlocking
	choices := make([]domain.Choice, 0, len(records))
	for _, record := range records {
		if !record.Status.Recent() {
			kind = domain.SessionKindHomonym
		}
		choices = append(choices, domain.Choice{Entry: record.Entry, Status: record.Status})
	}
	decision.SessionKind = kind

	session, err := s.sessions.Open(ctx, cmd.Requester, kind, choices, cmd.Question)
	if errors.Is(err, domain.ErrSessionAlreadyOpen) {
		decision.Verdict = VerdictIgnored
		return decision, nil
	}
	if err != nil {
		return decision, fmt.Errorf("open disambiguation session: %w", err)
	}

	outcome, err := s.sessions.Await(ctx, session)
	decision.Outcome = &outcome
	if err != nil {
		decision.Verdict = VerdictBlocked
		decision.Reason = BlockSelectionCancelled
		return decision, fmt.Errorf("await selection: %w", err)
	}

	switch outcome.State {
	case domain.SessionTimedOut:
		decision.Verdict = VerdictBlocked
		decision.Reason = BlockSelectionTimeout
		s.logBlocked(cmd, decision)
		return decision, nil
	case domain.SessionResolved:
	default:
		decision.Verdict = VerdictBlocked
		decision.Reason = BlockSelectionCancelled
		s.logBlocked(cmd, decision)
		return decision, nil
	}

	entry := outcome.Entry
	if kind == domain.SessionKindBlocking {
		record := records[outcome.Choice-1]
		decision.Entry = &entry
		decision.Recency = &record
		decision.Verdict = VerdictBlocked
		decision.Reason = blockReasonFor(record.Status)
		s.logBlocked(cmd, decision)
		return decision, nil
	}

	return s.checkRecency(ctx, cmd, decision, entry), nil
}

func (s *QuestionService) checkRecency(ctx context.Context, cmd AskCommand, decision Decision, entry domain.RosterEntry) Decision {
	record := s.recency.Classify(ctx, entry)
	decision.Entry = &entry
	decision.Recency = &record

	if record.Status.Recent() {
		decision.Verdict = VerdictBlocked
		decision.Reason = blockReasonFor(record.Status)
		s.logBlocked(cmd, decision)
		return decision
	}

	decision.Verdict = VerdictProceed
	return decision
}

func (s *QuestionService) logBlocked(cmd AskCommand, decision Decision) {
	fields := []zap.Field{
		zap.String("requester", string(cmd.Requester)),
		zap.String("reason", string(decision.Reason)),
		zap.String("resolution", string(decision.Resolution.Kind)),
	}
	if decision.Entry != nil {
		fields = append(fields, zap.String("entry", decision.Entry.Label()))
	}
	s.logger.Info("question blocked", fields...)
}
