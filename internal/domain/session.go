package domain

import (
	"sync"
	"sync/atomic"
	"time"
)

type RequesterID string

// SelectionHandle identifies a rendered choice list on the presentation side.
type SelectionHandle string

type SessionState string

const (
	SessionCreated           SessionState = "created"
	SessionAwaitingSelection SessionState = "awaiting_selection"
	SessionResolved          SessionState = "resolved"
	SessionTimedOut          SessionState = "timed_out"
	SessionCancelled         SessionState = "cancelled"
)

func (s SessionState) Terminal() bool {
	switch s {
	case SessionResolved, SessionTimedOut, SessionCancelled:
		return true
	default:
		return false
	}
}

type SessionKind string

const (
	SessionKindHomonym  SessionKind = "homonym_selection"
	SessionKindBlocking SessionKind = "blocking_selection"
)

// MaxSessionChoices bounds how many selectable affordances a session may expose.
const MaxSessionChoices = 8

// Choice is one selectable option. Index is 1-based.
type Choice struct {
	Index  int
	Entry  RosterEntry
	Status RecencyStatus
}

type SessionOutcome struct {
	SessionID RequesterID
	Kind      SessionKind
	State     SessionState
	Choice    int
	Entry     RosterEntry
	Status    RecencyStatus
}

func (o SessionOutcome) Resolved() bool {
	return o.State == SessionResolved
}

// DisambiguationSession is the open selection for one requester. Terminal
// transitions go through Finish, which admits exactly one caller.
type DisambiguationSession struct {
	ID               RequesterID
	Kind             SessionKind
	Choices          []Choice
	OriginalQuestion string
	CreatedAt        time.Time

	locked atomic.Bool
	done   chan SessionOutcome

	mu          sync.Mutex
	state       SessionState
	handle      SelectionHandle
	stopTimeout func() bool
}

func NewDisambiguationSession(id RequesterID, kind SessionKind, choices []Choice, question string, createdAt time.Time) *DisambiguationSession {
	numbered := make([]Choice, 0, len(choices))
	for i, choice := range choices {
		if i == MaxSessionChoices {
			break
		}
		choice.Index = i + 1
		numbered = append(numbered, choice)
	}

	return &DisambiguationSession{
		ID:               id,
		Kind:             kind,
		Choices:          numbered,
		OriginalQuestion: question,
		CreatedAt:        createdAt,
		state:            SessionCreated,
		done:             make(chan SessionOutcome, 1),
	}
}

func (s *DisambiguationSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DisambiguationSession) Handle() SelectionHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle
}

// MarkAwaiting records the presentation handle and moves Created to AwaitingSelection.
func (s *DisambiguationSession) MarkAwaiting(handle SelectionHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionCreated {
		return false
	}
	s.handle = handle
	s.state = SessionAwaitingSelection
	return true
}

// AttachTimeout registers the stop function of the pending timeout task.
// If the session already finished, stop runs immediately.
func (s *DisambiguationSession) AttachTimeout(stop func() bool) {
	s.mu.Lock()
	finished := s.state.Terminal()
	if !finished {
		s.stopTimeout = stop
	}
	s.mu.Unlock()

	if finished && stop != nil {
		stop()
	}
}

// Choice returns the 1-based option k.
func (s *DisambiguationSession) Choice(k int) (Choice, bool) {
	if k < 1 || k > len(s.Choices) {
		return Choice{}, false
	}
	return s.Choices[k-1], true
}

// Finish moves the session into a terminal state. Only the first caller wins;
// later calls are no-ops and return false.
func (s *DisambiguationSession) Finish(outcome SessionOutcome) bool {
	if !outcome.State.Terminal() {
		return false
	}
	if !s.locked.CompareAndSwap(false, true) {
		return false
	}

	s.mu.Lock()
	s.state = outcome.State
	stop := s.stopTimeout
	s.stopTimeout = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}

	outcome.SessionID = s.ID
	outcome.Kind = s.Kind
	s.done <- outcome
	close(s.done)
	return true
}

// Done delivers the single terminal outcome.
func (s *DisambiguationSession) Done() <-chan SessionOutcome {
	return s.done
}

func (s *DisambiguationSession) Locked() bool {
	return s.locked.Load()
}
