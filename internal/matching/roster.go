package matching

import (
	"strings"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

var nameSuffixes = map[string]struct{}{
	"jr": {}, "sr": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
}

type indexedEntry struct {
	entry domain.RosterEntry
	name  string
	parts []string
	first string
	last  string
	team  string
}

// Roster is an immutable, indexed snapshot of roster entries.
type Roster struct {
	entries []indexedEntry
	byName  map[string][]int
	byID    map[domain.EntryID]int
}

func NewRoster(entries []domain.RosterEntry) *Roster {
	r := &Roster{
		entries: make([]indexedEntry, 0, len(entries)),
		byName:  make(map[string][]int, len(entries)),
		byID:    make(map[domain.EntryID]int, len(entries)),
	}

	for _, entry := range entries {
		if _, dup := r.byID[entry.ID]; dup {
			continue
		}
		name := Plain(entry.DisplayName)
		if name == "" {
			continue
		}
		parts := strings.Fields(name)
		idx := len(r.entries)
		r.entries = append(r.entries, indexedEntry{
			entry: entry,
			name:  name,
			parts: parts,
			first: parts[0],
			last:  lastNamePart(parts),
			team:  Plain(entry.Team),
		})
		r.byName[name] = append(r.byName[name], idx)
		r.byID[entry.ID] = idx
	}

	return r
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

func (r *Roster) Entries() []domain.RosterEntry {
	if r == nil {
		return nil
	}
	out := make([]domain.RosterEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.entry)
	}
	return out
}

func (r *Roster) Lookup(id domain.EntryID) (domain.RosterEntry, bool) {
	if r == nil {
		return domain.RosterEntry{}, false
	}
	idx, ok := r.byID[id]
	if !ok {
		return domain.RosterEntry{}, false
	}
	return r.entries[idx].entry, true
}

// ExactName returns the entries whose normalized display name equals name.
func (r *Roster) ExactName(name string) []domain.RosterEntry {
	if r == nil {
		return nil
	}
	indexes := r.byName[name]
	out := make([]domain.RosterEntry, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, r.entries[idx].entry)
	}
	return out
}

// LastName returns the normalized surname of a display name, skipping
// generational suffixes such as "Jr.".
func LastName(displayName string) string {
	return lastNamePart(strings.Fields(Plain(displayName)))
}

// FirstName returns the normalized first token of a display name.
func FirstName(displayName string) string {
	parts := strings.Fields(Plain(displayName))
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// IdentityKey is the normalized (name, team) pair two entries must share to
// count as the same entity.
func IdentityKey(entry domain.RosterEntry) string {
	return Plain(entry.DisplayName) + "|" + Plain(entry.Team)
}

func lastNamePart(parts []string) string {
	for i := len(parts) - 1; i >= 0; i-- {
		if _, suffix := nameSuffixes[parts[i]]; suffix && i > 0 {
			continue
		}
		return parts[i]
	}
	return ""
}
