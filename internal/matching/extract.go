package matching

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
)

const minTokenCandidateLen = 5

var segmentSeparator = regexp.MustCompile(`(?i)\s*(?:,|&|/|\+|\bvs\b\.?|\bversus\b|\band\b|\bor\b)\s*`)

// Extractor turns raw question text into ordered, unique name candidates.
type Extractor struct {
	tables    Tables
	nicknames ports.NicknameProvider
}

func NewExtractor(tables Tables, nicknames ports.NicknameProvider) *Extractor {
	return &Extractor{tables: tables, nicknames: nicknames}
}

// Extract never fails: empty or unusable text yields no candidates. When roster
// is non-nil and the whole text is exactly a roster name, that name is the
// only candidate.
func (x *Extractor) Extract(text string, roster *Roster) []domain.Candidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	text = x.expandNicknames(text)
	whole := Plain(text)
	if whole == "" {
		return nil
	}

	if len(roster.ExactName(whole)) > 0 {
		return []domain.Candidate{{Text: whole, Span: text, Kind: domain.CandidateKindWholeText}}
	}

	capitalized, hasUpper := capitalizedTokens(text)
	set := newCandidateSet()

	for _, segment := range segmentSeparator.Split(text, -1) {
		tokens := x.filterTokens(Tokenize(Normalize(segment)))
		if len(tokens) == 0 {
			continue
		}

		// A lone token is only a candidate through the token gates below.
		if len(tokens) > 1 {
			set.add(strings.Join(tokens, " "), strings.TrimSpace(segment), domain.CandidateKindSegment)
		}

		for _, n := range []int{2, 3} {
			kind := domain.CandidateKindBigram
			if n == 3 {
				kind = domain.CandidateKindTrigram
			}
			for i := 0; i+n <= len(tokens); i++ {
				gram := strings.Join(tokens[i:i+n], " ")
				set.add(gram, gram, kind)
			}
		}

		for _, token := range tokens {
			if utf8.RuneCountInString(token) < minTokenCandidateLen {
				continue
			}
			if _, ok := capitalized[token]; hasUpper && !ok {
				continue
			}
			set.add(token, token, domain.CandidateKindToken)
		}
	}

	set.add(whole, text, domain.CandidateKindWholeText)

	return set.list()
}

func (x *Extractor) filterTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if x.tables.IsStopWord(token) || x.tables.IsContextWord(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}

// expandNicknames substitutes a whole-text alias first, then two-word and
// single-word aliases left to right.
func (x *Extractor) expandNicknames(text string) string {
	if x.nicknames == nil {
		return text
	}
	if expanded, ok := x.nicknames.Expand(Plain(text)); ok {
		return expanded
	}

	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	changed := false
	for i := 0; i < len(words); i++ {
		if i+1 < len(words) {
			if expanded, ok := x.nicknames.Expand(Plain(words[i] + " " + words[i+1])); ok {
				out = append(out, expanded+trailingPunct(words[i+1]))
				i++
				changed = true
				continue
			}
		}
		key := Plain(words[i])
		if key == "" {
			out = append(out, words[i])
			continue
		}
		if expanded, ok := x.nicknames.Expand(key); ok {
			out = append(out, expanded+trailingPunct(words[i]))
			changed = true
			continue
		}
		out = append(out, words[i])
	}

	if !changed {
		return text
	}
	return strings.Join(out, " ")
}

// trailingPunct keeps separators such as "," attached to a replaced word.
func trailingPunct(word string) string {
	end := len(word)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(word[:end])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		end -= size
	}
	return word[end:]
}

// capitalizedTokens returns the normalized words written with a leading
// capital, and whether the text has any uppercase letter at all.
func capitalizedTokens(text string) (map[string]struct{}, bool) {
	out := make(map[string]struct{})
	hasUpper := false
	for _, word := range strings.Fields(text) {
		first, _ := utf8.DecodeRuneInString(strings.TrimLeftFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		if !unicode.IsUpper(first) {
			if strings.IndexFunc(word, unicode.IsUpper) >= 0 {
				hasUpper = true
			}
			continue
		}
		hasUpper = true
		for _, token := range Tokenize(Normalize(word)) {
			out[token] = struct{}{}
		}
	}
	return out, hasUpper
}

type candidateSet struct {
	seen  map[string]struct{}
	items []domain.Candidate
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{})}
}

func (s *candidateSet) add(text, span string, kind domain.CandidateKind) {
	if text == "" {
		return
	}
	if _, ok := s.seen[text]; ok {
		return
	}
	s.seen[text] = struct{}{}
	s.items = append(s.items, domain.Candidate{Text: text, Span: span, Kind: kind})
}

func (s *candidateSet) list() []domain.Candidate {
	return s.items
}
