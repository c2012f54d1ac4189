package ports

import "github.com/evananthony17/discord-ask-bot-sub000/internal/domain"

type SessionStore interface {
	// InsertIfAbsent stores the session unless its requester already has one open.
	InsertIfAbsent(session *domain.DisambiguationSession) bool
	Get(id domain.RequesterID) (*domain.DisambiguationSession, bool)
	// Remove deletes the entry only if it still points at session.
	Remove(session *domain.DisambiguationSession) bool
	Len() int
}
