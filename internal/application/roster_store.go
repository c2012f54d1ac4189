package application

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"go.uber.org/zap"
)

// RosterStore owns the one roster every component reads. Loads replace the
// snapshot atomically.
type RosterStore struct {
	current atomic.Pointer[matching.Roster]
	logger  *zap.Logger
}

func NewRosterStore(logger *zap.Logger) *RosterStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RosterStore{logger: logger}
}

func (s *RosterStore) Load(ctx context.Context, provider ports.RosterProvider) error {
	entries, err := provider.GetAllEntries(ctx)
	if err != nil {
		return fmt.Errorf("get roster entries: %w", err)
	}

	valid := make([]domain.RosterEntry, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			s.logger.Warn("skipping roster entry", zap.String("id", string(entry.ID)), zap.Error(err))
			continue
		}
		valid = append(valid, entry)
	}

	roster := matching.NewRoster(valid)
	s.current.Store(roster)
	s.logger.Info("roster loaded", zap.Int("entries", roster.Len()), zap.Int("skipped", len(entries)-len(valid)))

	return nil
}

// Snapshot returns the current roster or ErrNoRosterLoaded when nothing
// usable has been loaded.
func (s *RosterStore) Snapshot() (*matching.Roster, error) {
	roster := s.current.Load()
	if roster.Len() == 0 {
		return nil, domain.ErrNoRosterLoaded
	}
	return roster, nil
}

func (s *RosterStore) Lookup(id domain.EntryID) (domain.RosterEntry, error) {
	roster, err := s.Snapshot()
	if err != nil {
		return domain.RosterEntry{}, err
	}
	entry, ok := roster.Lookup(id)
	if !ok {
		return domain.RosterEntry{}, fmt.Errorf("lookup %s: %w", id, domain.ErrEntryNotFound)
	}
	return entry, nil
}
