package memory

import (
	"sync"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
)

// Store keeps open disambiguation sessions keyed by requester.
type Store struct {
	mu       sync.Mutex
	sessions map[domain.RequesterID]*domain.DisambiguationSession
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{sessions: map[domain.RequesterID]*domain.DisambiguationSession{}}
}

func (s *Store) InsertIfAbsent(session *domain.DisambiguationSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return false
	}
	s.sessions[session.ID] = session
	return true
}

func (s *Store) Get(id domain.RequesterID) (*domain.DisambiguationSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Remove(session *domain.DisambiguationSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.sessions[session.ID]; !ok || current != session {
		return false
	}
	delete(s.sessions, session.ID)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}
