package matching

import (
	"regexp"
	"strings"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

const minIntentSegments = 4

var (
	conjunctionSignal   = regexp.MustCompile(`(?i)\b(?:and|or|vs|versus)\b`)
	parentheticalSignal = regexp.MustCompile(`\([^)]*\)`)
)

// Resolution is the resolver's verdict for one question.
type Resolution struct {
	Kind    domain.ResolutionKind
	Matches domain.ResolvedSet
	// Entry is set for single and fallback resolutions.
	Entry   *domain.RosterEntry
	Signals []string
}

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(results domain.ResolvedSet, question string) Resolution {
	switch len(results) {
	case 0:
		return Resolution{Kind: domain.ResolutionNoEntity}
	case 1:
		entry := results[0].Entry
		return Resolution{Kind: domain.ResolutionSingleEntity, Matches: results, Entry: &entry}
	}

	if len(DistinctLastNames(results)) == 1 {
		return Resolution{Kind: domain.ResolutionHomonymSession, Matches: results}
	}

	if signals := IntentSignals(question); len(signals) > 0 {
		return Resolution{Kind: domain.ResolutionBlocked, Matches: results, Signals: signals}
	}

	top := results[0]
	for _, result := range results[1:] {
		if result.Score > top.Score {
			top = result
		}
	}
	entry := top.Entry
	return Resolution{Kind: domain.ResolutionFallbackSingle, Matches: domain.ResolvedSet{top}, Entry: &entry}
}

// DistinctLastNames returns the normalized surnames present in results, in order.
func DistinctLastNames(results domain.ResolvedSet) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, result := range results {
		last := LastName(result.Entry.DisplayName)
		if _, ok := seen[last]; ok {
			continue
		}
		seen[last] = struct{}{}
		names = append(names, last)
	}
	return names
}

// IntentSignals lists the cues in question that show the asker meant more
// than one player.
func IntentSignals(question string) []string {
	var signals []string
	for _, m := range conjunctionSignal.FindAllString(question, -1) {
		signals = append(signals, strings.ToLower(m))
	}
	if strings.Contains(question, "&") {
		signals = append(signals, "&")
	}
	if strings.Contains(question, ",") {
		signals = append(signals, "comma list")
	}
	if parentheticalSignal.MatchString(question) {
		signals = append(signals, "team annotation")
	}
	if countSegments(question) >= minIntentSegments {
		signals = append(signals, "segments")
	}
	return signals
}

func countSegments(question string) int {
	n := 0
	for _, segment := range segmentSeparator.Split(question, -1) {
		if strings.TrimSpace(segment) != "" {
			n++
		}
	}
	return n
}
