package matching

import "strings"

// TablesVersion identifies the revision of the built-in heuristic tables.
const TablesVersion = "2026.10"

// Tables holds the word lists the extractor and validator consult. Every
// entry is stored normalized.
type Tables struct {
	Version string
	// StopWords are function words, interrogatives and generic adjectives.
	StopWords map[string]struct{}
	// ContextWords are verbs and jargon that surround names in questions.
	ContextWords map[string]struct{}
	// NonNamePatterns are token sequences that never name a player.
	NonNamePatterns [][]string
	CommonBigrams   map[string]struct{}
	CommonWords     map[string]struct{}
	// DomainContext is the vocabulary that must co-occur with a bare last or
	// first name before a history message counts as mentioning the player.
	DomainContext map[string]struct{}
}

func DefaultTables() Tables {
	return Tables{
		Version:         TablesVersion,
		StopWords:       wordSet(stopWords),
		ContextWords:    wordSet(contextWords),
		NonNamePatterns: phraseList(nonNamePatterns),
		CommonBigrams:   wordSet(commonBigrams),
		CommonWords:     wordSet(commonWords),
		DomainContext:   wordSet(domainContext),
	}
}

func (t Tables) IsStopWord(token string) bool {
	_, ok := t.StopWords[token]
	return ok
}

func (t Tables) IsContextWord(token string) bool {
	_, ok := t.ContextWords[token]
	return ok
}

func (t Tables) IsCommonWord(token string) bool {
	_, ok := t.CommonWords[token]
	return ok
}

func (t Tables) IsCommonBigram(a, b string) bool {
	_, ok := t.CommonBigrams[a+" "+b]
	return ok
}

// MatchesNonNamePattern reports whether tokens contain any non-name pattern
// as a contiguous run.
func (t Tables) MatchesNonNamePattern(tokens []string) bool {
	for _, pattern := range t.NonNamePatterns {
		if containsRun(tokens, pattern) {
			return true
		}
	}
	return false
}

// DomainContextCount counts distinct domain vocabulary tokens.
func (t Tables) DomainContextCount(tokens []string) int {
	seen := make(map[string]struct{})
	for _, token := range tokens {
		if _, ok := t.DomainContext[token]; ok {
			seen[token] = struct{}{}
		}
	}
	return len(seen)
}

func containsRun(tokens, run []string) bool {
	return indexRun(tokens, run) >= 0
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := Plain(w); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func phraseList(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		if tokens := Tokenize(Normalize(p)); len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out
}

var stopWords = strings.Fields(`
	a an the and or but nor so yet if then than that this these those there here
	i me my mine we us our you your he him his she her it its they them their
	is am are was were be been being do does did doing done have has had having
	will would shall should can could may might must ought
	what whats which who whom whose why how when where whenever however
	about above after again against all any at before below between both by
	down during each few for from further in into more most no not of off on
	once only other out over own same some such to too under until up very with
	just also still even really pretty quite much many lot lots
	good bad great better best worse worst big small new old hot cold top
	please thanks thank hey hi hello yes yeah ok okay
	im ive id youre hes shes its thats whats dont doesnt didnt isnt arent wasnt
	anyone someone anybody somebody everyone guys guy
`)

var contextWords = strings.Fields(`
	think thoughts feel feeling expect expecting see seeing look looking looks
	start starting sit sitting bench benching play playing plays played
	trade trading traded drop dropping add adding pick pickup grab hold keep
	buy sell selling stash cut release
	stats stat projection projections projected outlook value worth rank ranking
	fantasy dynasty keeper redraft waiver waivers wire lineup roster league
	season week weeks today tonight tomorrow yesterday year years ros
	points ppr era whip ops avg saves steals homers hr rbi
	injury injured hurt healthy il dtd return returning update news status
	prospect prospects callup promotion demotion minors
	doing going do happen happening think
	matchup matchups schedule
`)

var nonNamePatterns = []string{
	"more like", "less like", "sounds like", "looks like", "feel like", "feels like",
	"last week", "next week", "this week", "last year", "next year", "this year",
	"last season", "next season", "this season", "last night", "last game",
	"max projection", "min projection", "rest of season", "rest of the season",
	"how about", "what about", "should i", "would you", "do you", "can you",
	"going to", "want to", "need to", "have to", "kind of", "sort of",
	"at least", "at most", "right now", "so far", "as well", "in general",
	"long term", "short term", "all star", "home run", "home runs", "strike out",
	"no hitter", "box score", "game log", "trade deadline", "waiver wire",
	"over under", "buy low", "sell high", "break out", "bounce back",
}

var commonBigrams = []string{
	"going to", "kind of", "sort of", "want to", "need to", "have to", "a lot",
	"lot of", "out of", "as well", "right now", "so far", "each other", "at least",
	"more than", "less than", "next to", "used to", "able to", "based on",
	"high end", "low end", "top ten", "top five", "top end",
}

var commonWords = strings.Fields(`
	the be to of and a in that have i it for not on with he as you do at this
	but his by from they we say her she or an will my one all would there their
	what so up out if about who get which go me when make can like time no just
	him know take people into year your good some could them see other than then
	now look only come its over think also back after use two how our work first
	well way even new want because any these give day most us is was are were
	more less much many very really still last next week month today tonight
	game games team teams player players season start sit trade drop add
	hit hits run runs ball strike out home field power speed contact
	man guy guys thing things lot kind sort long short high low best better
	worse bad great big small old young right left long sure max min
	going doing getting playing looking feeling making taking having
	anyone someone everyone something anything nothing
	should would could might must may shall
	how why where when whats hows
	value worth points stats projection projections outlook
`)

var domainContext = strings.Fields(`
	stats stat fantasy dynasty keeper redraft start sit bench trade traded
	drop add waiver waivers lineup roster league rank ranking
	injury injured il healthy hurt return
	hitting pitching batting fielding velocity command
	projection projections outlook value worth rest ros
	season week prospect callup promotion
	homers hr rbi avg ops era whip saves steals strikeouts
	player team playing struggling slump hot
`)
