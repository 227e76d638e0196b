package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// RetrievedChunk is one retrieval hit: the chunk text plus its page
// provenance, used for prompt assembly and citations.
type RetrievedChunk struct {
	Text string
	Page int
}

// ChunkIndex is the in-memory vector store. Each document owns an isolated
// collection keyed strictly by document id, so chunks never leak across
// documents. Collections live for the process lifetime.
type ChunkIndex struct {
	mu          sync.RWMutex
	collections map[string]*chunkCollection
}

type chunkCollection struct {
	mu     sync.RWMutex
	chunks []*domain.Chunk // insertion order
	byID   map[string]int  // chunk id -> position in chunks
}

// NewChunkIndex creates an empty ChunkIndex.
func NewChunkIndex() *ChunkIndex {
	return &ChunkIndex{collections: make(map[string]*chunkCollection)}
}

func (x *ChunkIndex) collection(documentID string) *chunkCollection {
	x.mu.Lock()
	defer x.mu.Unlock()
	c, ok := x.collections[documentID]
	if !ok {
		c = &chunkCollection{byID: make(map[string]int)}
		x.collections[documentID] = c
	}
	return c
}

// Upsert embeds the given texts with the supplied provider and inserts or
// overwrites entries by id in the document's collection. An empty batch is
// a no-op, avoiding a wasted embedding call.
func (x *ChunkIndex) Upsert(ctx context.Context, documentID string, texts []string, pages []int, ids []string, embedder Embedder) error {
	if len(texts) == 0 {
		return nil
	}
	if len(texts) != len(pages) || len(texts) != len(ids) {
		return fmt.Errorf("texts, pages and ids must have equal length")
	}

	embeddings, err := embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(texts) {
		return fmt.Errorf("expected %d embeddings, got %d", len(texts), len(embeddings))
	}

	c := x.collection(documentID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, text := range texts {
		chunk := &domain.Chunk{
			ID:         ids[i],
			DocumentID: documentID,
			Page:       pages[i],
			Text:       text,
			Embedding:  embeddings[i],
		}
		if pos, exists := c.byID[chunk.ID]; exists {
			c.chunks[pos] = chunk
			continue
		}
		c.byID[chunk.ID] = len(c.chunks)
		c.chunks = append(c.chunks, chunk)
	}
	return nil
}

// TopK retrieves up to k chunks from a document's collection.
//
// With an empty query it returns the first k chunks in insertion order and
// computes no embedding: the initial analysis pass wants broad document
// context, not similarity to a query, and this keeps the result
// deterministic. With a non-empty query it embeds the query and returns
// the k nearest chunks by cosine similarity, closest first.
func (x *ChunkIndex) TopK(ctx context.Context, documentID, query string, k int, embedder Embedder) ([]RetrievedChunk, error) {
	if k < 1 {
		return nil, domain.ErrInvalidTopK
	}

	x.mu.RLock()
	c, ok := x.collections[documentID]
	x.mu.RUnlock()
	if !ok {
		return []RetrievedChunk{}, nil
	}

	if query == "" {
		c.mu.RLock()
		defer c.mu.RUnlock()
		n := k
		if n > len(c.chunks) {
			n = len(c.chunks)
		}
		out := make([]RetrievedChunk, 0, n)
		for _, chunk := range c.chunks[:n] {
			out = append(out, RetrievedChunk{Text: chunk.Text, Page: chunk.Page})
		}
		return out, nil
	}

	queryEmbeddings, err := embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(queryEmbeddings) != 1 {
		return nil, fmt.Errorf("expected 1 query embedding, got %d", len(queryEmbeddings))
	}
	queryVec := queryEmbeddings[0]

	c.mu.RLock()
	defer c.mu.RUnlock()

	type scored struct {
		chunk *domain.Chunk
		score float64
	}
	candidates := make([]scored, 0, len(c.chunks))
	for _, chunk := range c.chunks {
		candidates = append(candidates, scored{chunk: chunk, score: cosineSimilarity(queryVec, chunk.Embedding)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := k
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]RetrievedChunk, 0, n)
	for _, cand := range candidates[:n] {
		out = append(out, RetrievedChunk{Text: cand.chunk.Text, Page: cand.chunk.Page})
	}
	return out, nil
}

// Count returns the number of chunks indexed for a document.
func (x *ChunkIndex) Count(documentID string) int {
	x.mu.RLock()
	c, ok := x.collections[documentID]
	x.mu.RUnlock()
	if !ok {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.chunks)
}

// Drop removes a document's collection and all of its chunks.
func (x *ChunkIndex) Drop(documentID string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.collections, documentID)
}

func cosineSimilarity(a, b []float32) float64 {
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
