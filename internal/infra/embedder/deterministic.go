package embedder

import (
	"context"
	"hash/fnv"
	"math"
)

// DeterministicEmbedder hashes text into a unit-length pseudo-random
// vector. It backs local development and tests, where network calls are
// unwanted and only the relative geometry of the vectors matters.
type DeterministicEmbedder struct {
	dim int
}

// NewDeterministicEmbedder constructs the embedder.
func NewDeterministicEmbedder(dim int) *DeterministicEmbedder {
	if dim <= 0 {
		dim = 32
	}
	return &DeterministicEmbedder{dim: dim}
}

// Embed converts each text into a deterministic vector.
func (e *DeterministicEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.vectorFor(text)
	}
	return vectors, nil
}

func (e *DeterministicEmbedder) vectorFor(text string) []float32 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(text))
	seed := hash.Sum64()

	vector := make([]float32, e.dim)
	var sumSquares float64
	for j := range vector {
		seed = seed*6364136223846793005 + 1442695040888963407
		// Center on zero so unrelated texts are roughly orthogonal.
		component := float64(int64(seed%2003)-1001) / 1001.0
		vector[j] = float32(component)
		sumSquares += component * component
	}
	if norm := math.Sqrt(sumSquares); norm > 0 {
		for j := range vector {
			vector[j] = float32(float64(vector[j]) / norm)
		}
	}
	return vector
}

var _ Embedder = (*DeterministicEmbedder)(nil)
