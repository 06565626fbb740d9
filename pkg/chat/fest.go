package chat

import (
	"sort"
	"strings"
)

// Fuzzy thresholds. Fest aliases get more typo room on long words; entity
// name tokens are held to a stricter bar because false positives there are
// expensive.
const (
	greetingFuzzyThreshold  = 0.75
	thanksFuzzyThreshold    = 0.70
	relevanceFuzzyThreshold = 0.70
	festAliasShortThreshold = 0.70
	festAliasLongThreshold  = 0.65
	festAliasLongLen        = 8
	entityTokenThreshold    = 0.85
)

// festAliasThreshold picks the tiered fest-alias threshold for a word.
func festAliasThreshold(word string) float64 {
	if len(word) < festAliasLongLen {
		return festAliasShortThreshold
	}
	return festAliasLongThreshold
}

// DetectFest resolves a fest identifier from the query: any alias variant as
// a literal substring, or any query token fuzzily close to a variant under
// the tiered threshold. Canonical ids are checked in sorted order so the
// outcome does not depend on map iteration.
func (c *Classifier) DetectFest(query string) (string, bool) {
	tokens := Tokens(query)

	ids := make([]string, 0, len(c.tables.FestAliases))
	for id := range c.tables.FestAliases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, variant := range c.tables.FestAliases[id] {
			if strings.Contains(query, variant) {
				return id, true
			}
			for _, tok := range tokens {
				if Similarity(tok, variant) >= festAliasThreshold(tok) {
					return id, true
				}
			}
		}
	}
	return "", false
}

// DetectCategories returns the independent category flags the query raises.
// A query may hit zero, one, or several categories.
func (c *Classifier) DetectCategories(query string) []string {
	names := make([]string, 0, len(c.tables.CategoryKeywords))
	for name := range c.tables.CategoryKeywords {
		names = append(names, name)
	}
	sort.Strings(names)

	var hits []string
	for _, name := range names {
		for _, kw := range c.tables.CategoryKeywords[name] {
			if strings.Contains(query, kw) {
				hits = append(hits, name)
				break
			}
		}
	}
	return hits
}
