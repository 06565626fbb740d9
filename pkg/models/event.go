// Package models contains the domain types shared across festbot packages.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NotSpecified is rendered in place of any attribute the catalog does not
// carry for an event. Missing data is never an error at response time.
const NotSpecified = "not specified"

// Event is one matchable catalog item: a fest event or a scheme.
// Name is the primary matching key and is immutable once loaded; all other
// fields are optional descriptive attributes.
type Event struct {
	ID           string   `json:"event_id"`
	Name         string   `json:"event_name"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Venue        string   `json:"venue"`
	Details      string   `json:"details"`
	Phone        string   `json:"phone"`
	Fest         string   `json:"fest"`
	Slots        string   `json:"slots"`
	Poster       string   `json:"poster"`
	Amount       string   `json:"amount"`
	Category     string   `json:"category"`
	Coordinators []string `json:"-"`
}

// eventAlias avoids recursion in UnmarshalJSON.
type eventAlias Event

// UnmarshalJSON accepts the coordinator field either as a single string or as
// a list of names, matching both shapes the upstream sync produces.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw struct {
		eventAlias
		Coordinator json.RawMessage `json:"coordinator"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Event(raw.eventAlias)

	if len(raw.Coordinator) == 0 || string(raw.Coordinator) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw.Coordinator, &single); err == nil {
		if single != "" {
			e.Coordinators = []string{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw.Coordinator, &many); err != nil {
		return fmt.Errorf("coordinator must be a string or list of strings: %w", err)
	}
	e.Coordinators = many
	return nil
}

// ValueOrPlaceholder returns v, or the NotSpecified placeholder when v is
// empty or whitespace.
func ValueOrPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotSpecified
	}
	return v
}

// FormatCoordinators joins the coordinator names the way a person would say
// them: one name as-is, two joined with "and", three or more comma-separated
// with a trailing "and".
func (e *Event) FormatCoordinators() string {
	names := make([]string, 0, len(e.Coordinators))
	for _, n := range e.Coordinators {
		if strings.TrimSpace(n) != "" {
			names = append(names, n)
		}
	}
	switch len(names) {
	case 0:
		return NotSpecified
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// CoordinatorLine renders the coordinators together with the contact phone.
// The phone is appended only when present.
func (e *Event) CoordinatorLine() string {
	line := e.FormatCoordinators()
	if strings.TrimSpace(e.Phone) != "" {
		line += " (contact: " + e.Phone + ")"
	}
	return line
}
