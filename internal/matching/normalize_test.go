package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Ronald Acuña Jr.", want: "ronald acuna jr"},
		{in: "O'Neil Cruz", want: "oneil cruz"},
		{in: "Shohei’s  splits", want: "shoheis splits"},
		{in: "  José   RAMÍREZ ", want: "jose ramirez"},
		{in: "Jean-Carlos, Díaz", want: "jean carlos diaz"},
		{in: "who?", want: "who?"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Ronald Acuña Jr.",
		"İstanbul ﬁve Ｆｕｌｌ",
		"Ñandú — ‘quoted’ – dash",
		"Crème brûlée...  ,,, --",
		"Łukasz Øbro ß",
		"\tMixed\nWhitespace here ",
		"emoji 1️⃣ and ⚾",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTokenizeDropsPunctuation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"how", "is", "juan", "soto", "doing", "today"}, Tokenize(Normalize("How is Juan Soto doing today?")))
	assert.Empty(t, Tokenize(Normalize("?!")))
}

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Ratio("soto", "soto"))
	assert.Equal(t, 1.0, Ratio("", ""))
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	assert.InDelta(t, 8.0/9.0, Ratio("soto", "sotto"), 1e-9)
	assert.InDelta(t, 14.0/15.0, Ratio("guerero", "guerrero"), 1e-9)
}

func TestRosterIndex(t *testing.T) {
	t.Parallel()

	roster := NewRoster(append(testEntries(), testEntries()[0]))

	assert.Equal(t, 8, roster.Len(), "duplicate ids are indexed once")
	assert.Len(t, roster.ExactName("luis suarez"), 2)
	assert.Empty(t, roster.ExactName("suarez"))

	entry, ok := roster.Lookup("7")
	assert.True(t, ok)
	assert.Equal(t, "Ronald Acuña Jr.", entry.DisplayName)

	assert.Equal(t, "acuna", LastName("Ronald Acuña Jr."))
	assert.Equal(t, "guerrero", LastName("Vladimir Guerrero Jr."))
	assert.Equal(t, "ichiro", LastName("Ichiro"))
	assert.Equal(t, "ronald", FirstName("Ronald Acuña Jr."))
	assert.Equal(t, "juan soto|padres", IdentityKey(testEntries()[0]))

	var empty *Roster
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.ExactName("juan soto"))
}
