package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/chat"
	"github.com/asiet-labs/festbot/pkg/models"
)

const (
	// maxDocuments bounds the index size.
	maxDocuments = 100

	// embedBatchSize is how many documents are embedded per provider call.
	embedBatchSize = 25

	// maxQueryLen truncates queries before embedding.
	maxQueryLen = 200

	// eventDetailLen is how much of an event's details makes it into the
	// indexed summary.
	eventDetailLen = 200
)

// Embedder produces embedding vectors. *llm.Client satisfies this.
type Embedder interface {
	CreateEmbeddings(ctx context.Context, inputs []string) ([][]float32, error)
}

// document is one indexed chunk with its embedding.
type document struct {
	id     string
	text   string
	tags   map[string]string
	vector []float32
}

// Index is the in-memory vector index. Build replaces the whole index;
// Search is safe for concurrent use with Build.
type Index struct {
	embedder Embedder
	logger   *zap.Logger

	mu   sync.RWMutex
	docs []document
}

var _ chat.Searcher = (*Index)(nil)

// NewIndex creates an empty index over the given embedder.
func NewIndex(embedder Embedder, logger *zap.Logger) *Index {
	return &Index{
		embedder: embedder,
		logger:   logger.Named("retrieval"),
	}
}

// Build embeds event summaries plus festival info sections and swaps them in
// as the new index. Events beyond the document cap are dropped.
func (idx *Index) Build(ctx context.Context, events []*models.Event, sections []string) error {
	docs := make([]document, 0, len(events)+len(sections))

	for i, ev := range events {
		if ev == nil || strings.TrimSpace(ev.Name) == "" {
			continue
		}
		if len(docs) >= maxDocuments {
			break
		}

		id := ev.ID
		if id == "" {
			id = fmt.Sprintf("%s_%d", sanitizeID(ev.Name), i)
		}

		docs = append(docs, document{
			id:   id,
			text: eventSummary(ev),
			tags: map[string]string{
				"type":     "event",
				"event_id": ev.ID,
				"event":    ev.Name,
			},
		})
	}

	for i, section := range sections {
		docs = append(docs, document{
			id:   fmt.Sprintf("fest_%d", i),
			text: section,
			tags: map[string]string{"type": "fest_info"},
		})
	}

	if len(docs) == 0 {
		idx.logger.Warn("no documents to index")
		idx.swap(nil)
		return nil
	}

	for start := 0; start < len(docs); start += embedBatchSize {
		end := min(start+embedBatchSize, len(docs))

		texts := make([]string, 0, end-start)
		for _, d := range docs[start:end] {
			texts = append(texts, d.text)
		}

		vectors, err := idx.embedder.CreateEmbeddings(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch starting at %d: %w", start, err)
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("embed batch starting at %d: got %d vectors for %d texts", start, len(vectors), len(texts))
		}
		for i := range vectors {
			docs[start+i].vector = vectors[i]
		}
	}

	idx.swap(docs)
	idx.logger.Info("index built", zap.Int("documents", len(docs)))
	return nil
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// Search embeds the query and returns the top hits by cosine similarity.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]chat.SearchResult, error) {
	if limit <= 0 {
		return nil, nil
	}
	if len(query) > maxQueryLen {
		query = query[:maxQueryLen]
	}

	vectors, err := idx.embedder.CreateEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding for query")
	}
	queryVec := vectors[0]

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	type scored struct {
		doc   document
		score float64
	}
	ranked := make([]scored, 0, len(idx.docs))
	for _, d := range idx.docs {
		ranked = append(ranked, scored{doc: d, score: cosine(queryVec, d.vector)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	results := make([]chat.SearchResult, 0, limit)
	for _, r := range ranked[:limit] {
		results = append(results, chat.SearchResult{Text: r.doc.text, Tags: r.doc.tags})
	}
	return results, nil
}

func (idx *Index) swap(docs []document) {
	idx.mu.Lock()
	idx.docs = docs
	idx.mu.Unlock()
}

// eventSummary is the indexed text for one event: its name plus a clipped
// details snippet.
func eventSummary(ev *models.Event) string {
	details := ev.Details
	if len(details) > eventDetailLen {
		details = details[:eventDetailLen]
	}
	if details == "" {
		return ev.Name + "."
	}
	return ev.Name + ". " + details
}

func sanitizeID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")
	if len(id) > 50 {
		id = id[:50]
	}
	return id
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
