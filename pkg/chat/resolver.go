package chat

import (
	"strings"

	"github.com/asiet-labs/festbot/pkg/catalog"
	"github.com/asiet-labs/festbot/pkg/models"
)

// minFuzzyTokenLen guards the fuzzy coverage rule against matching short or
// noise words in event names.
const minFuzzyTokenLen = 4

// ResolveEvent matches the normalized query against the catalog. Each entry
// is tried with three escalating rules, stopping at the first that holds:
//
//  1. the entry name is a literal substring of the query
//  2. every token of the entry name appears in the query token set
//  3. for multi-token names, each name token of length >= 4 is fuzzily
//     covered (similarity > 0.85) by some query token of length >= 4
//
// With multiple candidates, an exact-substring candidate wins; otherwise the
// first candidate in snapshot order does. Tie-breaking is deliberate: the
// snapshot preserves insertion order.
func (c *Classifier) ResolveEvent(query string, snap *catalog.Snapshot) *models.Event {
	queryTokens := TokenSet(query)

	var longTokens []string
	for tok := range queryTokens {
		if len(tok) >= minFuzzyTokenLen {
			longTokens = append(longTokens, tok)
		}
	}

	var candidates []*models.Event
	var exact []*models.Event

	for _, ev := range snap.Events() {
		name := strings.ToLower(ev.Name)
		if name == "" {
			continue
		}

		if strings.Contains(query, name) {
			candidates = append(candidates, ev)
			exact = append(exact, ev)
			continue
		}

		nameTokens := Tokens(name)
		if allTokensPresent(nameTokens, queryTokens) {
			candidates = append(candidates, ev)
			continue
		}

		if len(nameTokens) >= 2 && fuzzyCovered(nameTokens, longTokens) {
			candidates = append(candidates, ev)
		}
	}

	switch {
	case len(candidates) == 0:
		return nil
	case len(exact) > 0:
		return exact[0]
	default:
		return candidates[0]
	}
}

func allTokensPresent(nameTokens []string, queryTokens map[string]struct{}) bool {
	if len(nameTokens) == 0 {
		return false
	}
	for _, tok := range nameTokens {
		if _, ok := queryTokens[tok]; !ok {
			return false
		}
	}
	return true
}

// fuzzyCovered reports whether every long name token has a fuzzily similar
// long query token. Short name tokens don't count toward the requirement.
func fuzzyCovered(nameTokens, longQueryTokens []string) bool {
	required := 0
	covered := 0
	for _, nt := range nameTokens {
		if len(nt) < minFuzzyTokenLen {
			continue
		}
		required++
		for _, qt := range longQueryTokens {
			if Similarity(nt, qt) > entityTokenThreshold {
				covered++
				break
			}
		}
	}
	return required > 0 && covered >= required
}
