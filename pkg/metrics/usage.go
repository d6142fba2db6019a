package metrics

// EmbeddingUsage captures token counts reported by the embeddings API.
type EmbeddingUsage struct {
	PromptTokens int `json:"promptTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u EmbeddingUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.TotalTokens == 0
}

// Add accumulates usage across batched requests.
func (u EmbeddingUsage) Add(other EmbeddingUsage) EmbeddingUsage {
	return EmbeddingUsage{
		PromptTokens: u.PromptTokens + other.PromptTokens,
		TotalTokens:  u.TotalTokens + other.TotalTokens,
	}
}
