package toml

import "fmt"

const currentSchemaVersion = 1

type rosterFileSchema struct {
	Version int            `toml:"version"`
	Players []playerSchema `toml:"players"`
}

func (s *rosterFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s rosterFileSchema) validateVersion() error {
	return checkVersion("roster", s.Version)
}

type playerSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Team string `toml:"team,omitempty"`
}

type historyFileSchema struct {
	Version  int             `toml:"version"`
	Messages []messageSchema `toml:"messages"`
}

func (s *historyFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s historyFileSchema) validateVersion() error {
	return checkVersion("history", s.Version)
}

type messageSchema struct {
	Ref        string `toml:"ref"`
	Stream     string `toml:"stream"`
	AuthorID   string `toml:"author_id"`
	AuthorName string `toml:"author_name"`
	Automated  bool   `toml:"automated"`
	Asker      string `toml:"asker,omitempty"`
	Content    string `toml:"content"`
	PostedAt   string `toml:"posted_at"`
}

func checkVersion(kind string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, version, currentSchemaVersion)
	}

	return nil
}
