package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
)

const minNameTokenLen = 3

// Validator rejects matches whose originating phrase does not read like a
// name, whatever its score.
type Validator struct {
	tables Tables
	floor  float64
}

func NewValidator(tables Tables, thresholds domain.Thresholds) *Validator {
	return &Validator{tables: tables, floor: thresholds.ValidatorFloor}
}

// Validate reports whether phrase plausibly refers to the player called name.
func (v *Validator) Validate(phrase, name string) bool {
	phraseTokens := Tokenize(Normalize(phrase))
	nameTokens := Tokenize(Normalize(name))
	if len(phraseTokens) == 0 || len(nameTokens) == 0 {
		return false
	}

	if v.tables.MatchesNonNamePattern(phraseTokens) {
		return false
	}
	if len(phraseTokens) < 2 {
		return true
	}

	plainPhrase := strings.Join(phraseTokens, " ")
	plainName := strings.Join(nameTokens, " ")
	exact := plainPhrase == plainName || plainPhrase == strings.Join(coreName(name), " ")

	if len(phraseTokens) == 2 && !exact {
		a, b := phraseTokens[0], phraseTokens[1]
		if utf8.RuneCountInString(a) < minNameTokenLen && utf8.RuneCountInString(b) < minNameTokenLen {
			return false
		}
		if v.tables.IsCommonBigram(a, b) {
			return false
		}
	}

	if Ratio(plainPhrase, plainName) < v.floor {
		return false
	}

	if !sharesToken(phraseTokens, nameTokens) {
		return false
	}

	if !exact && v.mostlyCommon(phraseTokens) {
		return false
	}

	return true
}

// Filter drops results whose candidate phrase fails Validate.
func (v *Validator) Filter(results domain.ResolvedSet) domain.ResolvedSet {
	out := make(domain.ResolvedSet, 0, len(results))
	for _, result := range results {
		phrase := result.Candidate.Text
		if phrase == "" {
			phrase = result.Candidate.Span
		}
		if !v.Validate(phrase, result.Entry.DisplayName) {
			continue
		}
		out = append(out, result)
	}
	return out
}

// RejectsContext reports whether the words around a mention form a known
// non-name construction.
func (v *Validator) RejectsContext(window []string) bool {
	return v.tables.MatchesNonNamePattern(window)
}

// mostlyCommon is true when all but at most one token are everyday English
// words. Callers pass at least two tokens.
func (v *Validator) mostlyCommon(tokens []string) bool {
	common := 0
	for _, token := range tokens {
		if v.tables.IsCommonWord(token) {
			common++
		}
	}
	return common >= len(tokens)-1
}

func sharesToken(phrase, name []string) bool {
	names := make(map[string]struct{}, len(name))
	for _, token := range name {
		names[token] = struct{}{}
	}
	for _, token := range phrase {
		if _, ok := names[token]; ok {
			return true
		}
	}
	return false
}
