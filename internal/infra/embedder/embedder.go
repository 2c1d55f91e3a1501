package embedder

import "context"

// Embedder produces embedding vectors for skill descriptions. The matching
// engine never calls this directly; it only consumes the stored vectors.
// Ingestion code uses it when a new skill arrives without a pre-computed
// embedding.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
