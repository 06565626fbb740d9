package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asiet-labs/festbot/pkg/models"
)

// LoadEventsFromFile reads events from a JSON file. The file may be a bare
// array or an object wrapping the array under one of the keys the sync
// scripts have produced over time ("events", "schemes", "data").
func LoadEventsFromFile(path string) ([]*models.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}
	events, err := ParseEvents(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return events, nil
}

// ParseEvents decodes event JSON in either supported shape.
func ParseEvents(raw []byte) ([]*models.Event, error) {
	var list []*models.Event
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("events JSON must be an array or an object: %w", err)
	}
	for _, key := range []string{"events", "schemes", "data"} {
		inner, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, fmt.Errorf("decode %q array: %w", key, err)
		}
		return list, nil
	}
	return nil, fmt.Errorf("no recognized event array key in object")
}
