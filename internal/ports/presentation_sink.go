package ports

import (
	"context"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

// PresentationSink renders a choice list for a requester. Selections and
// timeouts come back through the session manager; Dismiss is called once on
// every terminal transition so the transport can clear its affordances.
type PresentationSink interface {
	Present(ctx context.Context, requester domain.RequesterID, kind domain.SessionKind, choices []domain.Choice) (domain.SelectionHandle, error)
	Dismiss(ctx context.Context, handle domain.SelectionHandle, outcome domain.SessionOutcome) error
}
