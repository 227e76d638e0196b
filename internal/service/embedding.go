package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
)

// Embedder turns a batch of texts into fixed-dimension vectors, one per
// input text, order-preserving. An empty batch returns an empty result
// without any external call.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// HashEmbedderDimensions is the fixed dimension of hash-derived vectors.
const HashEmbedderDimensions = 768

// HashEmbedder derives vectors from a cryptographic hash of the input
// text. Identical text always yields the identical vector, byte-for-byte
// across runs and processes, which makes offline operation and tests
// reproducible. It never issues a network call.
type HashEmbedder struct {
	dimensions int
}

// NewHashEmbedder creates a HashEmbedder with the default dimensions.
func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{dimensions: HashEmbedderDimensions}
}

// Embed implements Embedder.
func (e *HashEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = e.embedOne(text)
	}
	return embeddings, nil
}

func (e *HashEmbedder) embedOne(text string) []float32 {
	sum := sha256.Sum256([]byte(text))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	vec := make([]float64, e.dimensions)
	var norm float64
	for i := range vec {
		vec[i] = rng.Float64() - 0.5
		norm += vec[i] * vec[i]
	}
	norm = math.Sqrt(norm)

	out := make([]float32, e.dimensions)
	for i, v := range vec {
		if norm > 0 {
			// Unit-normalize; the zero vector passes through untouched
			// to avoid division by zero.
			v /= norm
		}
		out[i] = float32(v)
	}
	return out
}
