package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"go.uber.org/zap"
)

const DefaultSessionTimeout = 30 * time.Second

// SessionManager runs disambiguation sessions: one open session per
// requester, a single selection or timeout, and removal on every terminal
// transition.
type SessionManager struct {
	store   ports.SessionStore
	sink    ports.PresentationSink
	timeout time.Duration
	clock   ports.Clock
	logger  *zap.Logger
}

func NewSessionManager(store ports.SessionStore, sink ports.PresentationSink, timeout time.Duration, clock ports.Clock, logger *zap.Logger) *SessionManager {
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{store: store, sink: sink, timeout: timeout, clock: clock, logger: logger}
}

// Open creates, stores and presents a session, then arms its timeout.
func (m *SessionManager) Open(ctx context.Context, requester domain.RequesterID, kind domain.SessionKind, choices []domain.Choice, question string) (*domain.DisambiguationSession, error) {
	session := domain.NewDisambiguationSession(requester, kind, choices, question, m.clock.Now())
	if !m.store.InsertIfAbsent(session) {
		return nil, fmt.Errorf("open session for %s: %w", requester, domain.ErrSessionAlreadyOpen)
	}

	handle, err := m.sink.Present(ctx, requester, kind, session.Choices)
	if err != nil {
		outcome := domain.SessionOutcome{State: domain.SessionCancelled}
		m.store.Remove(session)
		session.Finish(outcome)

		failure := fmt.Errorf("%w: %w", domain.ErrPresentationFailed, err)
		if handle != "" {
			if dismissErr := m.sink.Dismiss(context.Background(), handle, outcome); dismissErr != nil {
				failure = errors.Join(failure, dismissErr)
			}
		}
		m.logger.Warn("presentation failed", zap.String("requester", string(requester)), zap.Error(failure))
		return nil, fmt.Errorf("present choices: %w", failure)
	}

	if !session.MarkAwaiting(handle) {
		// Cancelled while presenting.
		if err := m.sink.Dismiss(context.Background(), handle, domain.SessionOutcome{State: session.State()}); err != nil {
			m.logger.Warn("dismiss choices failed", zap.String("requester", string(requester)), zap.Error(err))
		}
		return session, nil
	}
	timer := time.AfterFunc(m.timeout, func() {
		m.finish(session, domain.SessionOutcome{State: domain.SessionTimedOut})
	})
	session.AttachTimeout(timer.Stop)

	m.logger.Debug("session opened",
		zap.String("requester", string(requester)),
		zap.String("kind", string(kind)),
		zap.Int("choices", len(session.Choices)),
	)

	return session, nil
}

// Select applies actor's choice k to requester's session. Input from another
// actor, or for a session that is not awaiting a selection, is ignored and
// reported with ok=false. An out-of-range k cancels the session.
func (m *SessionManager) Select(requester, actor domain.RequesterID, k int) (domain.SessionOutcome, bool) {
	if actor != requester {
		return domain.SessionOutcome{}, false
	}
	session, ok := m.store.Get(requester)
	if !ok || session.State() != domain.SessionAwaitingSelection {
		return domain.SessionOutcome{}, false
	}

	choice, valid := session.Choice(k)
	outcome := domain.SessionOutcome{State: domain.SessionCancelled, Choice: k}
	if valid {
		outcome = domain.SessionOutcome{State: domain.SessionResolved, Choice: k, Entry: choice.Entry, Status: choice.Status}
	}
	if !m.finish(session, outcome) {
		return domain.SessionOutcome{}, false
	}

	outcome.SessionID = session.ID
	outcome.Kind = session.Kind
	return outcome, true
}

// SelectInput parses raw selection text first. Unparseable input cancels the
// session the same way an out-of-range index does.
func (m *SessionManager) SelectInput(requester, actor domain.RequesterID, raw string) (domain.SessionOutcome, bool) {
	k, err := ParseSelection(raw)
	if err != nil {
		m.logger.Debug("unparseable selection", zap.String("requester", string(requester)), zap.Error(err))
		k = 0
	}
	return m.Select(requester, actor, k)
}

func (m *SessionManager) Cancel(requester domain.RequesterID) error {
	session, ok := m.store.Get(requester)
	if !ok {
		return fmt.Errorf("cancel session for %s: %w", requester, domain.ErrSessionNotFound)
	}
	if !m.finish(session, domain.SessionOutcome{State: domain.SessionCancelled}) {
		return fmt.Errorf("cancel session for %s: %w", requester, domain.ErrSessionNotFound)
	}
	return nil
}

// Await blocks until the session reaches a terminal state. If ctx ends first
// the session is cancelled and ctx's error is returned with the outcome.
func (m *SessionManager) Await(ctx context.Context, session *domain.DisambiguationSession) (domain.SessionOutcome, error) {
	select {
	case outcome := <-session.Done():
		return outcome, nil
	case <-ctx.Done():
	}

	m.finish(session, domain.SessionOutcome{State: domain.SessionCancelled})
	outcome := <-session.Done()
	return outcome, ctx.Err()
}

// OpenSessions reports the number of sessions still held in the store.
func (m *SessionManager) OpenSessions() int {
	return m.store.Len()
}

// finish removes the session from the store before delivering its outcome,
// so whoever awaits the outcome can open the next session right away.
func (m *SessionManager) finish(session *domain.DisambiguationSession, outcome domain.SessionOutcome) bool {
	if session.Locked() {
		return false
	}
	m.store.Remove(session)
	if !session.Finish(outcome) {
		return false
	}

	outcome.SessionID = session.ID
	outcome.Kind = session.Kind
	if handle := session.Handle(); handle != "" {
		if err := m.sink.Dismiss(context.Background(), handle, outcome); err != nil {
			m.logger.Warn("dismiss choices failed", zap.String("requester", string(session.ID)), zap.Error(err))
		}
	}

	m.logger.Debug("session finished",
		zap.String("requester", string(session.ID)),
		zap.String("state", string(outcome.State)),
		zap.Int("choice", outcome.Choice),
	)
	return true
}

var keycapDigits = strings.NewReplacer("\ufe0f", "", "\u20e3", "")

// ParseSelection reads a 1-based choice from text such as "2", " 3 " or "2️⃣".
func ParseSelection(raw string) (int, error) {
	text := strings.TrimSpace(keycapDigits.Replace(raw))
	if text == "" {
		return 0, fmt.Errorf("parse selection %q: %w", raw, domain.ErrInvalidSelection)
	}
	k, err := strconv.Atoi(text)
	if err != nil || k < 1 {
		return 0, fmt.Errorf("parse selection %q: %w", raw, domain.ErrInvalidSelection)
	}
	return k, nil
}
