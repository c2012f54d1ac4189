package ports

import (
	"context"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

type RosterProvider interface {
	GetAllEntries(ctx context.Context) ([]domain.RosterEntry, error)
}

// NicknameProvider expands an alias (a token or a phrase) to a full display name.
type NicknameProvider interface {
	Expand(phrase string) (string, bool)
}
