package domain

type CandidateKind string

const (
	CandidateKindSegment   CandidateKind = "segment"
	CandidateKindBigram    CandidateKind = "bigram"
	CandidateKindTrigram   CandidateKind = "trigram"
	CandidateKindToken     CandidateKind = "token"
	CandidateKindWholeText CandidateKind = "whole_text"
)

// Candidate is a normalized phrase hypothesized to name a roster entry.
// Span keeps the original text it was derived from.
type Candidate struct {
	Text string
	Span string
	Kind CandidateKind
}

type MatchType string

const (
	MatchTypeExact         MatchType = "exact"
	MatchTypeLastNameExact MatchType = "last_name_exact"
	MatchTypeSubstring     MatchType = "substring"
	MatchTypeSimilarity    MatchType = "similarity"
)

type MatchResult struct {
	Entry     RosterEntry
	Score     float64
	Type      MatchType
	Threshold float64
	Candidate Candidate
}

// ResolvedSet is ordered by descending score and holds each entry at most once.
type ResolvedSet []MatchResult

func (s ResolvedSet) Entries() []RosterEntry {
	entries := make([]RosterEntry, 0, len(s))
	for _, result := range s {
		entries = append(entries, result.Entry)
	}
	return entries
}

func (s ResolvedSet) Limit(n int) ResolvedSet {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func (s ResolvedSet) HasExact() bool {
	for _, result := range s {
		if result.Type == MatchTypeExact {
			return true
		}
	}
	return false
}

type ResolutionKind string

const (
	ResolutionNoEntity       ResolutionKind = "no_entity"
	ResolutionSingleEntity   ResolutionKind = "single_entity"
	ResolutionHomonymSession ResolutionKind = "homonym_session"
	ResolutionBlocked        ResolutionKind = "blocked"
	ResolutionFallbackSingle ResolutionKind = "fallback_single_entity"
)

// RequiresEntity reports whether the resolution yields exactly one entity to check.
func (k ResolutionKind) RequiresEntity() bool {
	return k == ResolutionSingleEntity || k == ResolutionFallbackSingle
}
