package application

import (
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
)

type Identification struct {
	Question   string
	Candidates []domain.Candidate
	// Matched is the aggregated set before validation.
	Matched    domain.ResolvedSet
	Validated  domain.ResolvedSet
	Resolution matching.Resolution
}

type Verdict string

const (
	VerdictProceed Verdict = "proceed"
	VerdictBlocked Verdict = "blocked"
	// VerdictIgnored means the requester already has a prompt open.
	VerdictIgnored Verdict = "ignored"
)

type BlockReason string

const (
	BlockMultipleEntities   BlockReason = "multiple_entities"
	BlockPending            BlockReason = "pending"
	BlockAnswered           BlockReason = "answered"
	BlockSelectionTimeout   BlockReason = "selection_timeout"
	BlockSelectionCancelled BlockReason = "selection_cancelled"
)

// Decision is the question gate's answer for one question.
type Decision struct {
	Verdict     Verdict
	Reason      BlockReason
	Entry       *domain.RosterEntry
	Recency     *domain.RecencyRecord
	Resolution  matching.Resolution
	SessionKind domain.SessionKind
	Outcome     *domain.SessionOutcome
}

func (d Decision) Proceeds() bool {
	return d.Verdict == VerdictProceed
}

func blockReasonFor(status domain.RecencyStatus) BlockReason {
	if status == domain.RecencyAnswered {
		return BlockAnswered
	}
	return BlockPending
}
