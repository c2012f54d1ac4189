package toml

import (
	"context"
	"fmt"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/spf13/viper"
)

const (
	RosterPathKey  = "roster.path"
	rosterFileName = "roster.toml"
)

// RosterRepository reads and writes the player roster file.
type RosterRepository struct {
	file dataFile
}

var _ ports.RosterProvider = (*RosterRepository)(nil)

func NewRosterRepository(cfg *viper.Viper) (*RosterRepository, error) {
	file, err := openDataFile(cfg, RosterPathKey, rosterFileName, "roster")
	if err != nil {
		return nil, err
	}

	return &RosterRepository{file: file}, nil
}

func (r *RosterRepository) Path() string {
	return r.file.path
}

func (r *RosterRepository) GetAllEntries(ctx context.Context) ([]domain.RosterEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RosterEntry, 0, len(file.Players))
	for _, player := range file.Players {
		entries = append(entries, domain.RosterEntry{
			ID:          domain.EntryID(player.ID),
			DisplayName: player.Name,
			Team:        player.Team,
		})
	}

	return entries, nil
}

// Save upserts entries by id, keeping the file order of existing players.
func (r *RosterRepository) Save(ctx context.Context, entries ...domain.RosterEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("validate roster entry: %w", err)
		}
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	index := make(map[string]int, len(file.Players))
	for i, player := range file.Players {
		index[player.ID] = i
	}
	for _, entry := range entries {
		encoded := playerSchema{ID: string(entry.ID), Name: entry.DisplayName, Team: entry.Team}
		if i, ok := index[encoded.ID]; ok {
			file.Players[i] = encoded
			continue
		}
		index[encoded.ID] = len(file.Players)
		file.Players = append(file.Players, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	file.applyDefaults()
	return r.file.write(file)
}

func (r *RosterRepository) readSchema() (rosterFileSchema, error) {
	var file rosterFileSchema
	if _, err := r.file.read(&file); err != nil {
		return rosterFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return rosterFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
