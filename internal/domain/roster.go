package domain

import (
	"fmt"
	"strings"
)

type EntryID string

type RosterEntry struct {
	ID          EntryID
	DisplayName string
	Team        string
}

func (e RosterEntry) Validate() error {
	if strings.TrimSpace(string(e.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(e.DisplayName) == "" {
		return fmt.Errorf("display name is required")
	}

	return nil
}

// Label renders the entry as "Name (Team)", or just the name when the team is unknown.
func (e RosterEntry) Label() string {
	team := strings.TrimSpace(e.Team)
	if team == "" {
		return e.DisplayName
	}

	return fmt.Sprintf("%s (%s)", e.DisplayName, team)
}
