package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/adapters/render/choices"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/google/uuid"
)

// Sink writes choice lists to a terminal and hands out a fresh handle per
// list. Open handles are tracked so a late Dismiss is harmless.
type Sink struct {
	out io.Writer

	mu   sync.Mutex
	open map[domain.SelectionHandle]domain.RequesterID
}

var _ ports.PresentationSink = (*Sink)(nil)

func NewSink(out io.Writer) *Sink {
	return &Sink{out: out, open: map[domain.SelectionHandle]domain.RequesterID{}}
}

func (s *Sink) Present(ctx context.Context, requester domain.RequesterID, kind domain.SessionKind, options []domain.Choice) (domain.SelectionHandle, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rendered, err := choices.Choices(kind, options, "")
	if err != nil {
		return "", fmt.Errorf("render choices: %w", err)
	}

	handle := domain.SelectionHandle(uuid.NewString())
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.out, rendered); err != nil {
		return "", fmt.Errorf("write choices: %w", err)
	}
	s.open[handle] = requester

	return handle, nil
}

func (s *Sink) Dismiss(_ context.Context, handle domain.SelectionHandle, outcome domain.SessionOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[handle]; !ok {
		return nil
	}
	delete(s.open, handle)

	if outcome.State == domain.SessionTimedOut {
		if _, err := fmt.Fprintln(s.out, "selection timed out"); err != nil {
			return fmt.Errorf("write dismissal: %w", err)
		}
	}

	return nil
}

// Open reports how many presented lists have not been dismissed.
func (s *Sink) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.open)
}
