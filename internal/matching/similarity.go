package matching

import "github.com/pmezard/go-difflib/difflib"

// Ratio returns the matched-character ratio of a and b: twice the size of the
// matching blocks over the combined length. Identical strings score 1.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}

	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
