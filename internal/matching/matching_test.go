package matching

import (
	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

func testEntries() []domain.RosterEntry {
	return []domain.RosterEntry{
		{ID: "1", DisplayName: "Juan Soto", Team: "Padres"},
		{ID: "2", DisplayName: "Aaron Judge", Team: "Yankees"},
		{ID: "3", DisplayName: "Shohei Ohtani", Team: "Dodgers"},
		{ID: "4", DisplayName: "Luis Suarez", Team: "Marlins"},
		{ID: "5", DisplayName: "Luis Suarez", Team: "Mariners"},
		{ID: "6", DisplayName: "Mike Trout", Team: "Angels"},
		{ID: "7", DisplayName: "Ronald Acuña Jr.", Team: "Braves"},
		{ID: "8", DisplayName: "Vladimir Guerrero Jr.", Team: "Blue Jays"},
	}
}

func testRoster() *Roster {
	return NewRoster(testEntries())
}

type mapNicknames map[string]string

func (m mapNicknames) Expand(phrase string) (string, bool) {
	v, ok := m[phrase]
	return v, ok
}

func candidateTexts(candidates []domain.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Text)
	}
	return out
}

func entryIDs(set domain.ResolvedSet) []domain.EntryID {
	out := make([]domain.EntryID, 0, len(set))
	for _, r := range set {
		out = append(out, r.Entry.ID)
	}
	return out
}
