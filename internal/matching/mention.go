package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

// Mention confidences, highest first.
const (
	ConfidenceFullName   = 1.0
	ConfidenceStructured = 0.9
	ConfidenceLastName   = 0.7
	ConfidenceFirstName  = 0.6
)

const (
	minFirstNameMention = 5
	minContextTerms     = 2
)

// MentionScorer decides how confidently a history message mentions a player.
type MentionScorer struct {
	tables    Tables
	validator *Validator
}

func NewMentionScorer(tables Tables, validator *Validator) *MentionScorer {
	return &MentionScorer{tables: tables, validator: validator}
}

// Score returns the confidence of the strongest mention of entry in text, or
// 0 when there is none. Occurrences of the exclude names (the author or asker)
// are removed first.
func (s *MentionScorer) Score(text string, entry domain.RosterEntry, exclude ...string) float64 {
	tokens := Tokenize(Normalize(text))
	for _, name := range exclude {
		tokens = removeRuns(tokens, Tokenize(Normalize(name)))
	}
	name := coreName(entry.DisplayName)
	if len(tokens) == 0 || len(name) == 0 {
		return 0
	}

	if i := indexRun(tokens, name); i >= 0 && s.accepts(tokens, i, len(name), strings.Join(name, " "), entry) {
		return ConfidenceFullName
	}

	plainName := strings.Join(name, " ")
	full := Plain(entry.DisplayName)
	for _, listed := range StructuredNames(text) {
		if listed == plainName || listed == full {
			return ConfidenceStructured
		}
	}

	if s.tables.DomainContextCount(tokens) < minContextTerms || len(name) < 2 {
		return 0
	}

	last := LastName(entry.DisplayName)
	if i := indexRun(tokens, []string{last}); i >= 0 && s.accepts(tokens, i, 1, last, entry) {
		return ConfidenceLastName
	}

	first := FirstName(entry.DisplayName)
	if utf8.RuneCountInString(first) >= minFirstNameMention {
		if i := indexRun(tokens, []string{first}); i >= 0 && s.accepts(tokens, i, 1, first, entry) {
			return ConfidenceFirstName
		}
	}

	return 0
}

func (s *MentionScorer) accepts(tokens []string, at, n int, phrase string, entry domain.RosterEntry) bool {
	lo, hi := at-2, at+n+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(tokens) {
		hi = len(tokens)
	}
	if s.validator.RejectsContext(tokens[lo:hi]) {
		return false
	}
	return s.validator.Validate(phrase, entry.DisplayName)
}

// coreName is the normalized name without generational suffixes.
func coreName(displayName string) []string {
	parts := Tokenize(Normalize(displayName))
	out := make([]string, 0, len(parts))
	for i, part := range parts {
		if _, suffix := nameSuffixes[part]; suffix && i > 0 {
			continue
		}
		out = append(out, part)
	}
	return out
}

func indexRun(tokens, run []string) int {
	if len(run) == 0 {
		return -1
	}
	for i := 0; i+len(run) <= len(tokens); i++ {
		matched := true
		for j := range run {
			if tokens[i+j] != run[j] {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

func removeRuns(tokens, run []string) []string {
	if len(run) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+len(run) <= len(tokens) && indexRun(tokens[i:i+len(run)], run) == 0 {
			i += len(run)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}
