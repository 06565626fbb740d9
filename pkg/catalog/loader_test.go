package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventsBareArray(t *testing.T) {
	events, err := ParseEvents([]byte(`[{"event_name":"Quiz"},{"event_name":"Robo Wars"}]`))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Quiz", events[0].Name)
}

func TestParseEventsWrappedShapes(t *testing.T) {
	for _, key := range []string{"events", "schemes", "data"} {
		raw := `{"` + key + `":[{"event_name":"Quiz"}]}`
		events, err := ParseEvents([]byte(raw))
		require.NoError(t, err, key)
		require.Len(t, events, 1, key)
		assert.Equal(t, "Quiz", events[0].Name)
	}
}

func TestParseEventsUnrecognizedObject(t *testing.T) {
	_, err := ParseEvents([]byte(`{"items":[]}`))
	assert.Error(t, err)
}

func TestParseEventsInvalidJSON(t *testing.T) {
	_, err := ParseEvents([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadEventsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"event_name":"Quiz","coordinator":"Anjali"}]`), 0o600))

	events, err := LoadEventsFromFile(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"Anjali"}, events[0].Coordinators)
}

func TestLoadEventsFromFileMissing(t *testing.T) {
	_, err := LoadEventsFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
