package faqbank

import "context"

// Embedder converts text into fixed-length dense vectors. Implementations are
// deterministic for a fixed model version; dimensionality is constant across
// the process lifetime.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
