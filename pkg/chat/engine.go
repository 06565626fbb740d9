package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/models"
)

// maxMessageLen bounds the raw utterance before any processing.
const maxMessageLen = 500

// fallbackSearchLimit is how many retrieval hits feed the generated answer.
const fallbackSearchLimit = 3

// SearchResult is one ordered hit from the retrieval collaborator. Tags may
// carry an "event_id" or "event" entry that maps the hit back to a catalog
// entry for richer context assembly.
type SearchResult struct {
	Text string
	Tags map[string]string
}

// Searcher is the semantic retrieval collaborator, used only on fallback.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// Generator is the text generation collaborator, used only on fallback.
type Generator interface {
	GenerateAnswer(ctx context.Context, contextText, question string) (string, error)
}

// Observer receives best-effort counters: one Branch call per classified
// intent and one ExternalCall per collaborator invocation. Failures in an
// observer must never affect the reply, so implementations must not panic.
type Observer interface {
	Branch(tag string)
	ExternalCall(name string)
}

// ReplyCache caches fallback answers keyed by normalized query. May be nil.
type ReplyCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, reply string)
}

type noopObserver struct{}

func (noopObserver) Branch(string)       {}
func (noopObserver) ExternalCall(string) {}

// MultiObserver fans callbacks out to several observers.
type MultiObserver []Observer

func (m MultiObserver) Branch(tag string) {
	for _, o := range m {
		o.Branch(tag)
	}
}

func (m MultiObserver) ExternalCall(name string) {
	for _, o := range m {
		o.ExternalCall(name)
	}
}

// Engine sequences classification, aspect extraction, and response synthesis
// for each utterance, deferring to the retrieval+generation collaborators
// when no rule matches. Respond is total: it always returns a non-empty
// user-facing string and absorbs every failure.
type Engine struct {
	classifier  *Classifier
	synthesizer *Synthesizer
	store       *catalog.Store
	searcher    Searcher
	generator   Generator
	observer    Observer
	cache       ReplyCache
	picker      Picker
	logger      *zap.Logger
}

// EngineOption configures optional engine collaborators.
type EngineOption func(*Engine)

// WithSearcher sets the retrieval collaborator.
func WithSearcher(s Searcher) EngineOption {
	return func(e *Engine) { e.searcher = s }
}

// WithGenerator sets the generation collaborator.
func WithGenerator(g Generator) EngineOption {
	return func(e *Engine) { e.generator = g }
}

// WithObserver sets the metrics hook.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithReplyCache sets the fallback-answer cache.
func WithReplyCache(c ReplyCache) EngineOption {
	return func(e *Engine) { e.cache = c }
}

// WithPicker overrides the template selection strategy. Tests use this to
// force deterministic phrasing.
func WithPicker(p Picker) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.picker = p
		}
	}
}

// NewEngine creates an engine over the given tables and catalog store.
func NewEngine(tables *Tables, store *catalog.Store, logger *zap.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		classifier: NewClassifier(tables),
		store:      store,
		observer:   noopObserver{},
		picker:     RandPicker{},
		logger:     logger.Named("chat"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.synthesizer = NewSynthesizer(e.picker)
	return e
}

// Respond classifies the utterance and produces the reply. Nothing
// propagates past this boundary: panics become a generic apology.
func (e *Engine) Respond(ctx context.Context, utterance string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("recovered from panic in respond", zap.Any("panic", r))
			reply = ReplyApology
		}
	}()

	trimmed := strings.TrimSpace(truncateRunes(utterance, maxMessageLen))
	if trimmed == "" {
		e.observe("empty")
		return ReplyEmptyInput
	}

	snap := e.store.Current()
	intent := e.classifier.Classify(trimmed, snap)
	e.observe(intent.Kind.String())

	norm := Normalize(truncateRunes(trimmed, maxFuzzyPrefix))

	switch intent.Kind {
	case IntentAbuse:
		return e.pick(abuseReplies)
	case IntentMetaQuestion:
		return ReplyMetaQuestion
	case IntentGreeting:
		return e.pick(greetingReplies)
	case IntentThanks:
		return e.pick(thanksReplies)
	case IntentBye:
		return e.pick(byeReplies)
	case IntentOkay:
		return e.pick(okayReplies)
	case IntentFestInfo:
		if blurbs, ok := festBlurbs[intent.Fest]; ok {
			return e.pick(blurbs)
		}
		return ReplyMetaQuestion
	case IntentOutOfContext:
		return e.pick(outOfContextReplies)
	case IntentEventMatch:
		aspects := e.classifier.ExtractAspects(norm)
		return e.synthesizer.Respond(intent.Event, aspects)
	case IntentEventList:
		return e.listEvents(snap, intent)
	case IntentRegistration:
		if intent.Fest == "" {
			return ReplyRegistrationDisambiguation
		}
		return fmt.Sprintf(e.pick(registrationReplies), FestDisplayName(intent.Fest))
	default:
		return e.fallback(ctx, trimmed, norm, snap)
	}
}

func (e *Engine) pick(cluster []string) string {
	return cluster[e.picker.Pick(len(cluster))]
}

// observe reports a classified branch, swallowing any observer panic.
func (e *Engine) observe(tag string) {
	defer func() { _ = recover() }()
	e.observer.Branch(tag)
}

func (e *Engine) observeCall(name string) {
	defer func() { _ = recover() }()
	e.observer.ExternalCall(name)
}

// listEvents answers an event-list request, narrowing by detected fest and
// category flags when present.
func (e *Engine) listEvents(snap *catalog.Snapshot, intent Intent) string {
	var names []string
	for _, ev := range snap.Events() {
		if intent.Fest != "" && !strings.Contains(strings.ToLower(ev.Fest), intent.Fest) {
			continue
		}
		if len(intent.Categories) > 0 && !matchesCategory(ev, intent.Categories) {
			continue
		}
		names = append(names, ev.Name)
	}

	if len(names) == 0 {
		if intent.Fest != "" {
			return fmt.Sprintf("I couldn't find events for %s right now. Try asking again after the schedule is published!", FestDisplayName(intent.Fest))
		}
		return "I couldn't find any events matching that. Ask me about Brahma '26 or Ashwamedha '26!"
	}

	scope := "our fests"
	if intent.Fest != "" {
		scope = FestDisplayName(intent.Fest)
	}
	return fmt.Sprintf("Here are the events for %s: %s. Ask me about any of them!", scope, strings.Join(names, ", "))
}

func matchesCategory(ev *models.Event, categories []string) bool {
	for _, cat := range categories {
		if strings.EqualFold(ev.Category, cat) {
			return true
		}
	}
	return false
}

// fallback hands off to the retrieval and generation collaborators. Any
// failure along the way produces a fixed reply, never an error.
func (e *Engine) fallback(ctx context.Context, query, norm string, snap *catalog.Snapshot) string {
	if e.cache != nil {
		if cached, ok := e.cache.Get(ctx, norm); ok {
			e.observeCall("cache_hit")
			return cached
		}
	}

	if e.searcher == nil || e.generator == nil {
		return ReplyNoInformation
	}

	e.observeCall("search")
	results, err := e.searcher.Search(ctx, query, fallbackSearchLimit)
	if err != nil {
		e.logger.Warn("fallback search failed", zap.Error(err))
		return ReplyNoInformation
	}
	if len(results) == 0 {
		return ReplyNoInformation
	}

	contextText := e.assembleContext(results, snap)

	e.observeCall("generate")
	answer, err := e.generator.GenerateAnswer(ctx, contextText, query)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			e.logger.Warn("fallback generation failed", zap.Error(err))
		}
		return ReplyNoInformation
	}

	if e.cache != nil {
		e.cache.Set(ctx, norm, answer)
	}
	return answer
}

// assembleContext turns retrieval hits into the grounding text for the
// generator. A hit tagged with a catalog entry gets the full entry rendered;
// otherwise the raw hit text is used.
func (e *Engine) assembleContext(results []SearchResult, snap *catalog.Snapshot) string {
	parts := make([]string, 0, len(results))
	for _, res := range results {
		if ev := e.resolveTag(res.Tags, snap); ev != nil {
			parts = append(parts, formatEventContext(ev))
			continue
		}
		parts = append(parts, res.Text)
	}
	return strings.Join(parts, "\n\n")
}

// resolveTag maps a hit's tags back to a catalog entry: by id first, then by
// exact name, then by closest fuzzy name match.
func (e *Engine) resolveTag(tags map[string]string, snap *catalog.Snapshot) *models.Event {
	if id := tags["event_id"]; id != "" {
		if ev, ok := snap.ByID(id); ok {
			return ev
		}
	}
	name := tags["event"]
	if name == "" {
		return nil
	}
	if ev, ok := snap.ByName(name); ok {
		return ev
	}

	names := make([]string, 0, snap.Len())
	for _, ev := range snap.Events() {
		names = append(names, ev.Name)
	}
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return nil
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	ev, _ := snap.ByName(best.Target)
	return ev
}

func formatEventContext(ev *models.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", ev.Name)
	if ev.Fest != "" {
		fmt.Fprintf(&b, "Fest: %s\n", ev.Fest)
	}
	if ev.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", ev.Category)
	}
	if ev.Date != "" {
		fmt.Fprintf(&b, "Date: %s\n", ev.Date)
	}
	if ev.Time != "" {
		fmt.Fprintf(&b, "Time: %s\n", ev.Time)
	}
	if ev.Venue != "" {
		fmt.Fprintf(&b, "Venue: %s\n", ev.Venue)
	}
	if ev.Amount != "" {
		fmt.Fprintf(&b, "Fee: %s\n", ev.Amount)
	}
	if len(ev.Coordinators) > 0 {
		fmt.Fprintf(&b, "Coordinator: %s\n", ev.CoordinatorLine())
	}
	if ev.Details != "" {
		fmt.Fprintf(&b, "Details: %s", ev.Details)
	}
	return strings.TrimRight(b.String(), "\n")
}
