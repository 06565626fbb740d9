package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/models"
)

// keywordEmbedder assigns axis-aligned vectors by keyword so similarity
// ranking is predictable in tests.
type keywordEmbedder struct {
	batches [][]string
	err     error
}

func (e *keywordEmbedder) CreateEmbeddings(_ context.Context, inputs []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.batches = append(e.batches, inputs)

	vectors := make([][]float32, len(inputs))
	for i, text := range inputs {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "robo"):
			vectors[i] = []float32{1, 0, 0}
		case strings.Contains(lower, "food"):
			vectors[i] = []float32{0, 1, 0}
		default:
			vectors[i] = []float32{0, 0, 1}
		}
	}
	return vectors, nil
}

func buildTestIndex(t *testing.T) (*Index, *keywordEmbedder) {
	t.Helper()
	embedder := &keywordEmbedder{}
	idx := NewIndex(embedder, zap.NewNop())
	err := idx.Build(context.Background(),
		[]*models.Event{
			{ID: "ev1", Name: "Robo Wars", Details: "Robot combat in the mech arena."},
			{ID: "ev2", Name: "Theme Show", Details: "Fashion show."},
		},
		[]string{"FOOD: Food stalls open at 5 PM near the main gate."},
	)
	require.NoError(t, err)
	return idx, embedder
}

func TestIndexSearchRanksByCosine(t *testing.T) {
	idx, _ := buildTestIndex(t)

	results, err := idx.Search(context.Background(), "robot battle", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Text, "Robo Wars")
	assert.Equal(t, "ev1", results[0].Tags["event_id"])
	assert.Equal(t, "Robo Wars", results[0].Tags["event"])

	results, err = idx.Search(context.Background(), "food stalls", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "fest_info", results[0].Tags["type"])
}

func TestIndexSearchLimitCapped(t *testing.T) {
	idx, _ := buildTestIndex(t)

	results, err := idx.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Len(t, results, idx.Len())

	results, err = idx.Search(context.Background(), "anything", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIndexSearchTruncatesQuery(t *testing.T) {
	embedder := &keywordEmbedder{}
	idx := NewIndex(embedder, zap.NewNop())
	require.NoError(t, idx.Build(context.Background(),
		[]*models.Event{{ID: "e", Name: "Quiz"}}, nil))

	long := strings.Repeat("q", maxQueryLen+100)
	_, err := idx.Search(context.Background(), long, 1)
	require.NoError(t, err)

	// Last batch is the query embedding.
	queryBatch := embedder.batches[len(embedder.batches)-1]
	require.Len(t, queryBatch, 1)
	assert.Len(t, queryBatch[0], maxQueryLen)
}

func TestIndexBuildBatchesEmbeddings(t *testing.T) {
	events := make([]*models.Event, 60)
	for i := range events {
		events[i] = &models.Event{ID: string(rune('a' + i%26)), Name: "Event"}
	}
	embedder := &keywordEmbedder{}
	idx := NewIndex(embedder, zap.NewNop())
	require.NoError(t, idx.Build(context.Background(), events, nil))

	// 60 documents in batches of 25: 25 + 25 + 10.
	require.Len(t, embedder.batches, 3)
	assert.Len(t, embedder.batches[0], embedBatchSize)
	assert.Len(t, embedder.batches[2], 10)
	assert.Equal(t, 60, idx.Len())
}

func TestIndexBuildCapsDocuments(t *testing.T) {
	events := make([]*models.Event, maxDocuments+30)
	for i := range events {
		events[i] = &models.Event{Name: "Event"}
	}
	idx := NewIndex(&keywordEmbedder{}, zap.NewNop())
	require.NoError(t, idx.Build(context.Background(), events, nil))
	assert.Equal(t, maxDocuments, idx.Len())
}

func TestIndexBuildSkipsUnnamedEvents(t *testing.T) {
	idx := NewIndex(&keywordEmbedder{}, zap.NewNop())
	require.NoError(t, idx.Build(context.Background(),
		[]*models.Event{{Name: "Real"}, {Name: ""}, nil}, nil))
	assert.Equal(t, 1, idx.Len())
}

func TestIndexBuildEmbedFailure(t *testing.T) {
	idx := NewIndex(&keywordEmbedder{err: errors.New("embedding endpoint down")}, zap.NewNop())
	err := idx.Build(context.Background(), []*models.Event{{Name: "Quiz"}}, nil)
	assert.Error(t, err)
}

func TestIndexSearchEmbedFailure(t *testing.T) {
	idx, embedder := buildTestIndex(t)
	embedder.err = errors.New("embedding endpoint down")
	_, err := idx.Search(context.Background(), "query", 1)
	assert.Error(t, err)
}

func TestParseSections(t *testing.T) {
	content := `### SECTION: HISTORY ###
Brahma began as a department-level arts festival and grew into the
college-wide cultural fest it is today.

### SECTION: FOOD ###
Food stalls open at 5 PM near the main gate and run until the proshow ends.

### SECTION: X ###
tiny
`
	sections := ParseSections(content)
	require.Len(t, sections, 2)
	assert.True(t, strings.HasPrefix(sections[0], "HISTORY: "))
	assert.Contains(t, sections[1], "Food stalls open at 5 PM")
}

func TestParseSectionsCapsLengthAndCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxSections+5; i++ {
		b.WriteString("### SECTION: PART ###\n")
		b.WriteString(strings.Repeat("long section body text ", 40))
		b.WriteString("\n")
	}
	sections := ParseSections(b.String())
	assert.Len(t, sections, maxSections)
	for _, s := range sections {
		assert.LessOrEqual(t, len(s), maxSectionLen)
	}
}

func TestParseSectionsNoMarkers(t *testing.T) {
	sections := ParseSections("Just one plain paragraph about the fests, no markers at all.")
	require.Len(t, sections, 1)
}
