package chat

import (
	"strings"

	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/models"
)

// IntentKind tags the outcome of classification. Exactly one kind is
// produced per query.
type IntentKind int

const (
	IntentAbuse IntentKind = iota
	IntentMetaQuestion
	IntentGreeting
	IntentThanks
	IntentBye
	IntentOkay
	IntentFestInfo
	IntentOutOfContext
	IntentEventMatch
	IntentEventList
	IntentRegistration
	IntentFallback
)

// String returns the stable tag used for metrics and logs.
func (k IntentKind) String() string {
	switch k {
	case IntentAbuse:
		return "abuse"
	case IntentMetaQuestion:
		return "meta_question"
	case IntentGreeting:
		return "greeting"
	case IntentThanks:
		return "thanks"
	case IntentBye:
		return "bye"
	case IntentOkay:
		return "okay"
	case IntentFestInfo:
		return "fest_info"
	case IntentOutOfContext:
		return "out_of_context"
	case IntentEventMatch:
		return "event_match"
	case IntentEventList:
		return "event_list"
	case IntentRegistration:
		return "registration"
	case IntentFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Intent is the classified outcome for one query.
type Intent struct {
	Kind       IntentKind
	Event      *models.Event // set for IntentEventMatch
	Fest       string        // set when a fest was detected
	Categories []string      // set for IntentEventList
}

// maxFuzzyPrefix caps the portion of a query the fuzzy passes look at.
// Callers already bound the raw message; this is a second, tighter guard.
const maxFuzzyPrefix = 200

// Classifier runs the ordered intent decision chain over a catalog snapshot.
// It is pure computation: no I/O, no shared mutable state.
type Classifier struct {
	tables *Tables
}

// NewClassifier creates a classifier over the given tables.
func NewClassifier(tables *Tables) *Classifier {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Classifier{tables: tables}
}

// Tables exposes the classifier's keyword tables.
func (c *Classifier) Tables() *Tables {
	return c.tables
}

// Classify walks the rule chain in strict priority order; the first matching
// rule wins. Given the same query and snapshot the result is identical on
// every call.
func (c *Classifier) Classify(rawQuery string, snap *catalog.Snapshot) Intent {
	query := Normalize(truncateRunes(rawQuery, maxFuzzyPrefix))
	tokens := Tokens(query)
	tokenSet := TokenSet(query)

	if c.isAbuse(query, tokenSet) {
		return Intent{Kind: IntentAbuse}
	}
	if c.isMetaQuestion(query) {
		return Intent{Kind: IntentMetaQuestion}
	}
	if c.isGreeting(tokens) {
		return Intent{Kind: IntentGreeting}
	}
	if c.isThanks(query, tokenSet) {
		return Intent{Kind: IntentThanks}
	}
	if c.isBye(query, tokenSet) {
		return Intent{Kind: IntentBye}
	}
	if c.isOkay(query, tokens) {
		return Intent{Kind: IntentOkay}
	}

	fest, festFound := c.DetectFest(query)
	if festFound && c.isSimpleFestInfo(query, tokens) {
		return Intent{Kind: IntentFestInfo, Fest: fest}
	}

	if !c.isRelevant(query, tokens, snap) {
		return Intent{Kind: IntentOutOfContext}
	}

	if ev := c.ResolveEvent(query, snap); ev != nil {
		return Intent{Kind: IntentEventMatch, Event: ev, Fest: fest}
	}

	if c.isEventList(query) {
		return Intent{
			Kind:       IntentEventList,
			Fest:       fest,
			Categories: c.DetectCategories(query),
		}
	}

	if c.isRegistration(query) {
		return Intent{Kind: IntentRegistration, Fest: fest}
	}

	return Intent{Kind: IntentFallback, Fest: fest}
}

// isAbuse: standalone abusive words must match whole words; longer abusive
// phrases match as substrings.
func (c *Classifier) isAbuse(query string, tokenSet map[string]struct{}) bool {
	for _, w := range c.tables.AbuseWords {
		if _, ok := tokenSet[w]; ok {
			return true
		}
	}
	return containsAny(query, c.tables.AbusePhrases)
}

func (c *Classifier) isMetaQuestion(query string) bool {
	return containsAny(query, c.tables.MetaPhrases)
}

// isGreeting strips filler words first. A single remaining token must match
// the greeting set exactly or fuzzily at >= 0.75; the exactness requirement
// keeps longer words that merely contain a greeting from matching. With
// several meaningful tokens, any one matching is enough.
func (c *Classifier) isGreeting(tokens []string) bool {
	var meaningful []string
	for _, t := range tokens {
		if !contains(c.tables.FillerWords, t) {
			meaningful = append(meaningful, t)
		}
	}
	if len(meaningful) == 0 {
		return false
	}

	match := func(tok string) bool {
		if contains(c.tables.GreetingWords, tok) {
			return true
		}
		if len(tok) < 3 {
			return false
		}
		for _, g := range c.tables.GreetingWords {
			if len(g) >= 3 && Similarity(tok, g) >= greetingFuzzyThreshold {
				return true
			}
		}
		return false
	}

	if len(meaningful) == 1 {
		return match(meaningful[0])
	}
	for _, tok := range meaningful {
		if match(tok) {
			return true
		}
	}
	return false
}

// isThanks: short tokens only count as whole words ("ty" sits inside too
// many other words); phrases match as substrings; words of 5+ characters get
// a fuzzy backstop against "thanks"/"thank".
func (c *Classifier) isThanks(query string, tokenSet map[string]struct{}) bool {
	for _, short := range c.tables.ThanksShort {
		if _, ok := tokenSet[short]; ok {
			return true
		}
	}
	if containsAny(query, c.tables.ThanksPhrases) {
		return true
	}
	for tok := range tokenSet {
		if len(tok) < 5 {
			continue
		}
		if Similarity(tok, "thanks") >= thanksFuzzyThreshold ||
			Similarity(tok, "thank") >= thanksFuzzyThreshold {
			return true
		}
	}
	return false
}

// isBye: short farewell words need whole-word matches, longer phrases match
// as substrings.
func (c *Classifier) isBye(query string, tokenSet map[string]struct{}) bool {
	for _, short := range c.tables.ByeShort {
		if _, ok := tokenSet[short]; ok {
			return true
		}
	}
	return containsAny(query, c.tables.ByePhrases)
}

// isOkay accepts the tiny acknowledgement vocabulary, an "ok" prefix trailed
// only by vowel-like characters ("okay", "okee", "okieee" after collapsing),
// and doubled variants ("ok ok", "okeoke").
func (c *Classifier) isOkay(query string, tokens []string) bool {
	okayish := func(tok string) bool {
		if contains(c.tables.OkayWords, tok) {
			return true
		}
		if !strings.HasPrefix(tok, "ok") || len(tok) > 8 {
			return false
		}
		for _, r := range tok[2:] {
			if !strings.ContainsRune("aeiouy", r) {
				return false
			}
		}
		return true
	}

	switch len(tokens) {
	case 1:
		tok := tokens[0]
		if okayish(tok) {
			return true
		}
		// okeoke-style doubling
		if len(tok)%2 == 0 {
			half := tok[:len(tok)/2]
			if tok == half+half && okayish(half) {
				return true
			}
		}
		return false
	case 2:
		return okayish(tokens[0]) && okayish(tokens[1])
	default:
		return false
	}
}

// isSimpleFestInfo gates the canned fest blurb: no deep-question keyword may
// be present, and the query must look like a short "what is X" / "about X" /
// bare-name ask, or be at most three words.
func (c *Classifier) isSimpleFestInfo(query string, tokens []string) bool {
	if containsAny(query, c.tables.DeepQuestionWords) {
		return false
	}
	if len(tokens) <= 3 {
		return true
	}
	for _, prefix := range []string{"what is ", "whats ", "what's ", "about ", "tell me about "} {
		if strings.HasPrefix(query, prefix) {
			return true
		}
	}
	return false
}

// isRelevant is the gate in front of the catalog: a query passes if it hits
// the relevance vocabulary, shares a token of 3+ characters with any entry
// name, or has a token fuzzily close to the core vocabulary.
func (c *Classifier) isRelevant(query string, tokens []string, snap *catalog.Snapshot) bool {
	if containsAny(query, c.tables.RelevanceWords) {
		return true
	}

	nameTokens := make(map[string]struct{})
	for _, ev := range snap.Events() {
		for _, t := range Tokens(strings.ToLower(ev.Name)) {
			if len(t) >= 3 {
				nameTokens[t] = struct{}{}
			}
		}
	}
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if _, ok := nameTokens[tok]; ok {
			return true
		}
	}

	vocab := c.tables.CoreVocabulary
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for _, core := range vocab {
			if Similarity(tok, core) >= relevanceFuzzyThreshold {
				return true
			}
		}
	}
	return false
}

// isEventList needs both a list-ish keyword and an event/fest indicator.
func (c *Classifier) isEventList(query string) bool {
	return containsAny(query, c.tables.ListWords) &&
		containsAny(query, c.tables.EventIndicators)
}

func (c *Classifier) isRegistration(query string) bool {
	return containsAny(query, c.tables.RegistrationPhrases)
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
