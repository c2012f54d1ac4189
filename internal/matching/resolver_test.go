package matching

import (
	"testing"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(id domain.EntryID, name string, score float64) domain.MatchResult {
	return domain.MatchResult{
		Entry: domain.RosterEntry{ID: id, DisplayName: name, Team: "T" + string(id)},
		Score: score,
		Type:  domain.MatchTypeSimilarity,
	}
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	t.Run("no matches", func(t *testing.T) {
		res := r.Resolve(nil, "who is hot right now")
		assert.Equal(t, domain.ResolutionNoEntity, res.Kind)
		assert.Nil(t, res.Entry)
	})

	t.Run("single match", func(t *testing.T) {
		res := r.Resolve(domain.ResolvedSet{result("1", "Juan Soto", 1)}, "juan soto")
		assert.Equal(t, domain.ResolutionSingleEntity, res.Kind)
		require.NotNil(t, res.Entry)
		assert.Equal(t, domain.EntryID("1"), res.Entry.ID)
	})

	t.Run("namesakes", func(t *testing.T) {
		set := domain.ResolvedSet{result("4", "Luis Suarez", 1), result("5", "Eugenio Suárez", 1)}
		res := r.Resolve(set, "is suarez hurt")
		assert.Equal(t, domain.ResolutionHomonymSession, res.Kind)
		assert.Len(t, res.Matches, 2)
	})

	t.Run("several players asked together", func(t *testing.T) {
		set := domain.ResolvedSet{result("2", "Aaron Judge", 1), result("3", "Shohei Ohtani", 1)}
		res := r.Resolve(set, "Judge vs Ohtani")
		assert.Equal(t, domain.ResolutionBlocked, res.Kind)
		assert.Equal(t, []string{"vs"}, res.Signals)
		assert.Nil(t, res.Entry)
	})

	t.Run("fallback to best score", func(t *testing.T) {
		set := domain.ResolvedSet{result("2", "Aaron Judge", 0.8), result("3", "Shohei Ohtani", 0.9)}
		res := r.Resolve(set, "thoughts on judge ohtani")
		assert.Equal(t, domain.ResolutionFallbackSingle, res.Kind)
		require.NotNil(t, res.Entry)
		assert.Equal(t, domain.EntryID("3"), res.Entry.ID)
		assert.Len(t, res.Matches, 1)
	})
}

func TestIntentSignals(t *testing.T) {
	t.Parallel()

	assert.Empty(t, IntentSignals("Sandy Alcantara"))
	assert.Empty(t, IntentSignals("Is Anderson doing well"))
	assert.Equal(t, []string{"and"}, IntentSignals("Soto and Judge"))
	assert.Equal(t, []string{"&", "comma list", "team annotation"}, IntentSignals("Soto, Judge & Trout (LAA)"))
	assert.Equal(t, []string{"comma list", "segments"}, IntentSignals("soto, judge, trout, ohtani"))
}

func TestDistinctLastNames(t *testing.T) {
	t.Parallel()

	set := domain.ResolvedSet{
		result("4", "Luis Suarez", 1),
		result("5", "Eugenio Suárez", 1),
		result("8", "Vladimir Guerrero Jr.", 1),
	}

	assert.Equal(t, []string{"suarez", "guerrero"}, DistinctLastNames(set))
}

func TestIdentificationPipeline(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	thresholds := domain.DefaultThresholds()
	x := NewExtractor(tables, nil)
	m := NewMatcher(thresholds)
	v := NewValidator(tables, thresholds)
	r := NewResolver()
	roster := testRoster()

	identify := func(question string) Resolution {
		set, err := m.MatchAll(x.Extract(question, roster), roster, 8)
		require.NoError(t, err)
		return r.Resolve(v.Filter(set), question)
	}

	single := identify("How is Juan Soto doing today?")
	assert.Equal(t, domain.ResolutionSingleEntity, single.Kind)
	require.NotNil(t, single.Entry)
	assert.Equal(t, domain.EntryID("1"), single.Entry.ID)

	blocked := identify("Judge vs Ohtani")
	assert.Equal(t, domain.ResolutionBlocked, blocked.Kind)
	assert.ElementsMatch(t, []domain.EntryID{"2", "3"}, entryIDs(blocked.Matches))

	homonym := identify("Is Suarez healthy")
	assert.Equal(t, domain.ResolutionHomonymSession, homonym.Kind)
	assert.ElementsMatch(t, []domain.EntryID{"4", "5"}, entryIDs(homonym.Matches))

	none := identify("who should I pick up this week")
	assert.Equal(t, domain.ResolutionNoEntity, none.Kind)
}

func TestIdentificationPipelineIgnoresOrdinaryWords(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	thresholds := domain.DefaultThresholds()
	x := NewExtractor(tables, nil)
	m := NewMatcher(thresholds)
	v := NewValidator(tables, thresholds)
	r := NewResolver()
	roster := NewRoster([]domain.RosterEntry{
		{ID: "1", DisplayName: "Alex Young", Team: "Giants"},
		{ID: "2", DisplayName: "Gerrit Cole", Team: "Yankees"},
	})

	for _, question := range []string{"Is he too young?", "Who is Cole?"} {
		set, err := m.MatchAll(x.Extract(question, roster), roster, 8)
		require.NoError(t, err)
		got := r.Resolve(v.Filter(set), question)
		assert.Equal(t, domain.ResolutionNoEntity, got.Kind, question)
		assert.Nil(t, got.Entry, question)
	}
}
