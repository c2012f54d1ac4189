package application

import (
	"fmt"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"go.uber.org/zap"
)

const DefaultMaxResults = 8

// IdentificationService runs extraction, matching, validation and resolution
// for one question against the current roster.
type IdentificationService struct {
	roster     *RosterStore
	extractor  *matching.Extractor
	matcher    *matching.Matcher
	validator  *matching.Validator
	resolver   *matching.Resolver
	maxResults int
	logger     *zap.Logger
}

func NewIdentificationService(roster *RosterStore, tables matching.Tables, thresholds domain.Thresholds, nicknames ports.NicknameProvider, maxResults int, logger *zap.Logger) *IdentificationService {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &IdentificationService{
		roster:     roster,
		extractor:  matching.NewExtractor(tables, nicknames),
		matcher:    matching.NewMatcher(thresholds),
		validator:  matching.NewValidator(tables, thresholds),
		resolver:   matching.NewResolver(),
		maxResults: maxResults,
		logger:     logger,
	}
}

func (s *IdentificationService) Identify(question string) (Identification, error) {
	roster, err := s.roster.Snapshot()
	if err != nil {
		return Identification{}, err
	}

	candidates := s.extractor.Extract(question, roster)
	matched, err := s.matcher.MatchAll(candidates, roster, s.maxResults)
	if err != nil {
		return Identification{}, fmt.Errorf("match candidates: %w", err)
	}
	validated := s.validator.Filter(matched)
	resolution := s.resolver.Resolve(validated, question)

	s.logger.Debug("question identified",
		zap.String("resolution", string(resolution.Kind)),
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(matched)),
		zap.Int("validated", len(validated)),
	)

	return Identification{
		Question:   question,
		Candidates: candidates,
		Matched:    matched,
		Validated:  validated,
		Resolution: resolution,
	}, nil
}

// Validator exposes the validator so recency scans share its tables.
func (s *IdentificationService) Validator() *matching.Validator {
	return s.validator
}
