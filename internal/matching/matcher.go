package matching

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

const minStructuralLen = 3

// Matcher scores candidates against roster entries using, in order, exact
// name, exact last name, structural substring and similarity ratio.
type Matcher struct {
	thresholds domain.Thresholds
}

func NewMatcher(thresholds domain.Thresholds) *Matcher {
	return &Matcher{thresholds: thresholds}
}

// Match returns every entry the candidate reaches at its applicable threshold.
// Results are not deduplicated.
func (m *Matcher) Match(candidate domain.Candidate, roster *Roster) []domain.MatchResult {
	text := Plain(candidate.Text)
	if text == "" || roster.Len() == 0 {
		return nil
	}
	single := !strings.Contains(text, " ")

	var results []domain.MatchResult
	for _, entry := range roster.entries {
		result, ok := m.matchEntry(text, single, entry)
		if !ok {
			continue
		}
		result.Candidate = candidate
		results = append(results, result)
	}

	return results
}

// MatchAll matches every candidate and aggregates the results into a
// ResolvedSet of at most maxResults entries.
func (m *Matcher) MatchAll(candidates []domain.Candidate, roster *Roster, maxResults int) (domain.ResolvedSet, error) {
	if roster.Len() == 0 {
		return nil, domain.ErrNoRosterLoaded
	}

	var all []domain.MatchResult
	for _, candidate := range candidates {
		all = append(all, m.Match(candidate, roster)...)
	}

	return Aggregate(all, maxResults), nil
}

func (m *Matcher) matchEntry(text string, single bool, e indexedEntry) (domain.MatchResult, bool) {
	if text == e.name {
		return domain.MatchResult{Entry: e.entry, Score: 1, Type: domain.MatchTypeExact, Threshold: 1}, true
	}
	if single && text == e.last {
		return domain.MatchResult{Entry: e.entry, Score: 1, Type: domain.MatchTypeLastNameExact, Threshold: 1}, true
	}

	problematic := false
	if single {
		for _, part := range e.parts {
			threshold, substantial, related := m.structural(text, part)
			if !related {
				continue
			}
			if !substantial {
				problematic = true
				continue
			}
			if score := Ratio(text, part); score >= threshold {
				return domain.MatchResult{Entry: e.entry, Score: score, Type: domain.MatchTypeSubstring, Threshold: threshold}, true
			}
		}
	}

	score, threshold := m.similarity(text, single, e)
	if problematic && threshold < m.thresholds.Problematic {
		threshold = m.thresholds.Problematic
	}
	if score < threshold {
		return domain.MatchResult{}, false
	}

	return domain.MatchResult{Entry: e.entry, Score: score, Type: domain.MatchTypeSimilarity, Threshold: threshold}, true
}

// structural reports whether candidate and part contain one another and, if
// so, whether the shorter covers enough of the longer to count as a real
// substring match rather than an accidental one.
func (m *Matcher) structural(candidate, part string) (threshold float64, substantial bool, related bool) {
	cl := utf8.RuneCountInString(candidate)
	pl := utf8.RuneCountInString(part)
	if cl < minStructuralLen || pl < minStructuralLen {
		return 0, false, false
	}

	switch {
	case strings.Contains(part, candidate):
		return m.thresholds.SubstringInside, float64(cl) >= m.thresholds.SubstantialFraction*float64(pl), true
	case strings.Contains(candidate, part):
		return m.thresholds.SubstringContaining, float64(pl) >= m.thresholds.SubstantialFraction*float64(cl), true
	default:
		return 0, false, false
	}
}

// similarity returns the best ratio for the candidate and the threshold the
// query shape requires.
func (m *Matcher) similarity(text string, single bool, e indexedEntry) (float64, float64) {
	full := Ratio(text, e.name)
	if !single {
		return full, m.thresholds.MultiToken
	}

	best := full
	for _, part := range e.parts {
		if r := Ratio(text, part); r > best {
			best = r
		}
	}

	if len(e.parts) < 2 {
		return best, m.thresholds.Default
	}

	threshold := m.thresholds.SingleVsMulti
	if Ratio(text, e.last) >= m.thresholds.LastNameRelaxTrigger {
		threshold = m.thresholds.SingleVsMultiRelax
	}
	return best, threshold
}

// Aggregate keeps the best result per entry and per (name, team) identity,
// drops weaker namesakes of an exactly named entry, orders by score and caps
// the set at maxResults.
func Aggregate(results []domain.MatchResult, maxResults int) domain.ResolvedSet {
	bestByID := make(map[domain.EntryID]int)
	deduped := make([]domain.MatchResult, 0, len(results))
	for _, result := range results {
		if idx, ok := bestByID[result.Entry.ID]; ok {
			if result.Score > deduped[idx].Score {
				deduped[idx] = result
			}
			continue
		}
		bestByID[result.Entry.ID] = len(deduped)
		deduped = append(deduped, result)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})

	exactLastNames := make(map[string]struct{})
	if domain.ResolvedSet(deduped).HasExact() {
		for _, result := range deduped {
			if result.Type == domain.MatchTypeExact {
				exactLastNames[LastName(result.Entry.DisplayName)] = struct{}{}
			}
		}
	}

	seenIdentity := make(map[string]struct{}, len(deduped))
	set := make(domain.ResolvedSet, 0, len(deduped))
	for _, result := range deduped {
		if result.Type != domain.MatchTypeExact {
			if _, namesake := exactLastNames[LastName(result.Entry.DisplayName)]; namesake {
				continue
			}
		}
		key := IdentityKey(result.Entry)
		if _, dup := seenIdentity[key]; dup {
			continue
		}
		seenIdentity[key] = struct{}{}
		set = append(set, result)
	}

	return set.Limit(maxResults)
}
