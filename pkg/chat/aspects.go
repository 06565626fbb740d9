package chat

import (
	"sort"
	"strings"
)

// Aspect names, in the order they appear in canonical keys.
const (
	AspectVenue       = "venue"
	AspectTime        = "time"
	AspectDate        = "date"
	AspectCoordinator = "coordinator"
	AspectWhat        = "what"
	AspectFest        = "fest"
	AspectSlots       = "slots"
	AspectPoster      = "poster"
	AspectAmount      = "amount"
	AspectCategory    = "category"
)

// AspectSet records which attribute-intents a query expressed. Flags are
// detected independently and may overlap: "when" raises both time and date.
type AspectSet struct {
	flags map[string]bool
}

// Has reports whether the named aspect was detected.
func (a AspectSet) Has(name string) bool {
	return a.flags[name]
}

// Count returns the number of raised flags.
func (a AspectSet) Count() int {
	n := 0
	for _, on := range a.flags {
		if on {
			n++
		}
	}
	return n
}

// Key returns the canonical sorted join of active flags, e.g. "time+venue".
// The response synthesizer dispatches on this key. An empty set keys to "".
func (a AspectSet) Key() string {
	var active []string
	for name, on := range a.flags {
		if on {
			active = append(active, name)
		}
	}
	sort.Strings(active)
	return strings.Join(active, "+")
}

// ExtractAspects runs the ten independent keyword detectors over the
// normalized query. Each detector is a substring scan of its keyword list,
// typos included.
func (c *Classifier) ExtractAspects(query string) AspectSet {
	flags := make(map[string]bool, len(c.tables.AspectKeywords))
	for name, keywords := range c.tables.AspectKeywords {
		for _, kw := range keywords {
			if strings.Contains(query, kw) {
				flags[name] = true
				break
			}
		}
	}
	return AspectSet{flags: flags}
}

// NewAspectSet builds a set from explicit flag names. Used by tests and by
// the synthesizer's default path.
func NewAspectSet(names ...string) AspectSet {
	flags := make(map[string]bool, len(names))
	for _, n := range names {
		flags[n] = true
	}
	return AspectSet{flags: flags}
}
