package chat

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/asiet-labs/festbot/pkg/models"
)

// Picker selects one index in [0, n). Production uses the rand-backed
// picker for phrasing variety; tests inject a fixed picker so replies are
// reproducible.
type Picker interface {
	Pick(n int) int
}

// RandPicker picks uniformly at random.
type RandPicker struct{}

// Pick implements Picker.
func (RandPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return rand.IntN(n)
}

// FixedPicker always picks the same index (clamped to range).
type FixedPicker struct {
	Index int
}

// Pick implements Picker.
func (p FixedPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	if p.Index >= n {
		return n - 1
	}
	return p.Index
}

type templateFn func(e *models.Event) string

// Synthesizer maps the exact combination of requested aspects to a phrasing
// cluster. The table keyed by canonical flag-set keeps the combination space
// auditable: adding an aspect pair is a data change. Anything without its own
// entry, including the empty set, falls through to the full-detail cluster.
type Synthesizer struct {
	clusters   map[string][]templateFn
	fullDetail []templateFn
	picker     Picker
}

// NewSynthesizer builds the dispatch table. Pass nil to use the random
// picker.
func NewSynthesizer(picker Picker) *Synthesizer {
	if picker == nil {
		picker = RandPicker{}
	}
	return &Synthesizer{
		clusters:   buildClusters(),
		fullDetail: fullDetailCluster(),
		picker:     picker,
	}
}

// Respond assembles the reply for a matched event and its aspect set.
func (s *Synthesizer) Respond(e *models.Event, aspects AspectSet) string {
	if cluster, ok := s.clusters[aspects.Key()]; ok && len(cluster) > 0 {
		return cluster[s.picker.Pick(len(cluster))](e)
	}
	return s.fullDetail[s.picker.Pick(len(s.fullDetail))](e)
}

func val(v string) string {
	return models.ValueOrPlaceholder(v)
}

func buildClusters() map[string][]templateFn {
	clusters := map[string][]templateFn{
		AspectVenue: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s is happening at %s.", e.Name, val(e.Venue))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("You can find %s at %s.", e.Name, val(e.Venue))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Venue for %s: %s.", e.Name, val(e.Venue))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("The venue of %s is %s.", e.Name, val(e.Venue))
			},
		},
		AspectTime: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s starts at %s.", e.Name, val(e.Time))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("The timing for %s is %s.", e.Name, val(e.Time))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("%s is scheduled for %s.", e.Name, val(e.Time))
			},
		},
		AspectDate: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s is on %s.", e.Name, val(e.Date))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("The date for %s is %s.", e.Name, val(e.Date))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Mark your calendar: %s happens on %s.", e.Name, val(e.Date))
			},
		},
		AspectCoordinator: {
			func(e *models.Event) string {
				return fmt.Sprintf("The coordinator for %s is %s.", e.Name, e.CoordinatorLine())
			},
			func(e *models.Event) string {
				return fmt.Sprintf("For %s, reach out to %s.", e.Name, e.CoordinatorLine())
			},
			func(e *models.Event) string {
				return fmt.Sprintf("%s is coordinated by %s.", e.Name, e.CoordinatorLine())
			},
		},
		AspectWhat: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s: %s", e.Name, val(e.Details))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Here's what %s is about: %s", e.Name, val(e.Details))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("About %s — %s", e.Name, val(e.Details))
			},
		},
		AspectFest: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s is part of %s.", e.Name, val(e.Fest))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("%s belongs to %s.", e.Name, val(e.Fest))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("You'll find %s under %s.", e.Name, val(e.Fest))
			},
		},
		AspectSlots: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s has %s slots.", e.Name, val(e.Slots))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Available slots for %s: %s.", e.Name, val(e.Slots))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("There are %s slots open for %s.", val(e.Slots), e.Name)
			},
		},
		AspectPoster: {
			func(e *models.Event) string {
				return fmt.Sprintf("Here's the poster for %s: %s", e.Name, val(e.Poster))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Poster for %s: %s", e.Name, val(e.Poster))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("You can check out the %s poster here: %s", e.Name, val(e.Poster))
			},
		},
		AspectAmount: {
			func(e *models.Event) string {
				return fmt.Sprintf("The registration fee for %s is %s.", e.Name, val(e.Amount))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("%s costs %s to enter.", e.Name, val(e.Amount))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("Entry fee for %s: %s.", e.Name, val(e.Amount))
			},
		},
		AspectCategory: {
			func(e *models.Event) string {
				return fmt.Sprintf("%s falls under the %s category.", e.Name, val(e.Category))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("The category of %s is %s.", e.Name, val(e.Category))
			},
			func(e *models.Event) string {
				return fmt.Sprintf("%s is a %s event.", e.Name, val(e.Category))
			},
		},
	}

	// Two-flag combinations with their own phrasing. Undefined pairs fall
	// through to full detail.
	clusters[pairKey(AspectDate, AspectTime)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is on %s at %s.", e.Name, val(e.Date), val(e.Time))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s happens on %s, starting at %s.", e.Name, val(e.Date), val(e.Time))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Schedule for %s: %s at %s.", e.Name, val(e.Date), val(e.Time))
		},
	}
	clusters[pairKey(AspectTime, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s starts at %s at %s.", e.Name, val(e.Time), val(e.Venue))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Head to %s for %s at %s.", val(e.Venue), e.Name, val(e.Time))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s: %s, %s.", e.Name, val(e.Time), val(e.Venue))
		},
	}
	clusters[pairKey(AspectDate, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is on %s at %s.", e.Name, val(e.Date), val(e.Venue))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s takes place at %s on %s.", e.Name, val(e.Venue), val(e.Date))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Catch %s at %s on %s.", e.Name, val(e.Venue), val(e.Date))
		},
	}
	clusters[pairKey(AspectCoordinator, AspectDate)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is on %s; the coordinator is %s.", e.Name, val(e.Date), e.CoordinatorLine())
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s happens on %s. For queries, contact %s.", e.Name, val(e.Date), e.CoordinatorLine())
		},
	}
	clusters[pairKey(AspectCoordinator, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is at %s; the coordinator is %s.", e.Name, val(e.Venue), e.CoordinatorLine())
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Find %s at %s, or ask %s.", e.Name, val(e.Venue), e.CoordinatorLine())
		},
	}
	clusters[pairKey(AspectAmount, AspectSlots)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s has %s slots and the fee is %s.", e.Name, val(e.Slots), val(e.Amount))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Fee for %s is %s, with %s slots available.", e.Name, val(e.Amount), val(e.Slots))
		},
	}
	clusters[pairKey(AspectAmount, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is at %s and the fee is %s.", e.Name, val(e.Venue), val(e.Amount))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Entry to %s at %s costs %s.", e.Name, val(e.Venue), val(e.Amount))
		},
	}
	clusters[pairKey(AspectDate, AspectWhat)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s (%s): %s", e.Name, val(e.Date), val(e.Details))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s happens on %s. %s", e.Name, val(e.Date), val(e.Details))
		},
	}

	// Explicitly enumerated triples.
	clusters[tripleKey(AspectDate, AspectTime, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is on %s at %s, venue: %s.", e.Name, val(e.Date), val(e.Time), val(e.Venue))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("%s takes place at %s on %s, starting %s.", e.Name, val(e.Venue), val(e.Date), val(e.Time))
		},
	}
	clusters[tripleKey(AspectAmount, AspectDate, AspectVenue)] = []templateFn{
		func(e *models.Event) string {
			return fmt.Sprintf("%s is at %s on %s; the fee is %s.", e.Name, val(e.Venue), val(e.Date), val(e.Amount))
		},
		func(e *models.Event) string {
			return fmt.Sprintf("Entry to %s (%s, %s) costs %s.", e.Name, val(e.Venue), val(e.Date), val(e.Amount))
		},
	}

	return clusters
}

// pairKey and tripleKey produce the same canonical keys AspectSet.Key does.
func pairKey(a, b string) string {
	return NewAspectSet(a, b).Key()
}

func tripleKey(a, b, c string) string {
	return NewAspectSet(a, b, c).Key()
}

// fullDetailCluster is the default: chosen when the query named the event
// without asking for anything specific, or asked a combination without its
// own entry.
func fullDetailCluster() []templateFn {
	detail := func(e *models.Event) string {
		var b strings.Builder
		fmt.Fprintf(&b, "Here's everything about %s:\n", e.Name)
		fmt.Fprintf(&b, "Fest: %s\n", val(e.Fest))
		fmt.Fprintf(&b, "Date: %s\n", val(e.Date))
		fmt.Fprintf(&b, "Time: %s\n", val(e.Time))
		fmt.Fprintf(&b, "Venue: %s\n", val(e.Venue))
		fmt.Fprintf(&b, "Fee: %s\n", val(e.Amount))
		fmt.Fprintf(&b, "Slots: %s\n", val(e.Slots))
		fmt.Fprintf(&b, "Coordinator: %s\n", e.CoordinatorLine())
		fmt.Fprintf(&b, "Details: %s", val(e.Details))
		return b.String()
	}
	return []templateFn{
		detail,
		func(e *models.Event) string {
			return fmt.Sprintf(
				"%s is part of %s, happening on %s at %s (%s). Fee: %s, slots: %s. Coordinator: %s. %s",
				e.Name, val(e.Fest), val(e.Date), val(e.Venue), val(e.Time),
				val(e.Amount), val(e.Slots), e.CoordinatorLine(), val(e.Details),
			)
		},
		func(e *models.Event) string {
			return fmt.Sprintf(
				"%s — %s\nWhen: %s, %s\nWhere: %s\nFee: %s | Slots: %s\nCoordinator: %s",
				e.Name, val(e.Details), val(e.Date), val(e.Time), val(e.Venue),
				val(e.Amount), val(e.Slots), e.CoordinatorLine(),
			)
		},
	}
}
