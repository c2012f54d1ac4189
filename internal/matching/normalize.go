// Package matching identifies roster entries named in free text. Everything in
// it is pure and safe for concurrent use.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var punctuationToSpace = strings.NewReplacer(
	".", " ",
	",", " ",
	"-", " ",
	"‐", " ",
	"–", " ",
	"—", " ",
)

var apostropheStripper = strings.NewReplacer(
	"'", "",
	"‘", "",
	"’", "",
	"ʼ", "",
	"`", "",
)

// Normalize folds text for comparison: lowercase, accents stripped,
// apostrophes removed, periods/commas/hyphens turned into spaces and
// whitespace collapsed. It is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded := strings.ToLower(text)
	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripper, folded); err == nil {
		folded = strings.ToLower(stripped)
	}

	folded = apostropheStripper.Replace(folded)
	folded = punctuationToSpace.Replace(folded)

	return strings.Join(strings.Fields(folded), " ")
}

// Tokenize splits normalized text into word tokens, dropping any remaining punctuation.
func Tokenize(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Plain normalizes text and rejoins its word tokens with single spaces.
func Plain(text string) string {
	return strings.Join(Tokenize(Normalize(text)), " ")
}
