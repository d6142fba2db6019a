package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/askbase/faq-service/internal/domain/faqbank"
	"github.com/askbase/faq-service/internal/infra/llm/openai"
	"github.com/askbase/faq-service/pkg/metrics"
)

// maxBatchTokens stays well below the provider's per-request cap.
const maxBatchTokens = 200_000

// OpenAIEmbedder calls an OpenAI-compatible embeddings API, batching inputs
// by token count.
type OpenAIEmbedder struct {
	client  *openai.Client
	model   string
	dim     int
	encoder *tiktoken.Tiktoken
	logger  *slog.Logger
}

// NewOpenAIEmbedder constructs the embedder. dim, when positive, is validated
// against every response so a misconfigured model fails loudly instead of
// silently storing mismatched vectors.
func NewOpenAIEmbedder(client *openai.Client, model string, dim int, logger *slog.Logger) *OpenAIEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder, _ = tiktoken.GetEncoding("cl100k_base")
	}
	return &OpenAIEmbedder{
		client:  client,
		model:   strings.TrimSpace(model),
		dim:     dim,
		encoder: encoder,
		logger:  logger.With("component", "embedding.openai"),
	}
}

// Embed requests embeddings for the given texts, preserving input order.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var (
		out         [][]float32
		batch       []string
		batchTokens int
		usage       metrics.EmbeddingUsage
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		resp, err := e.client.CreateEmbedding(ctx, openai.EmbeddingRequest{
			Model: e.model,
			Input: batch,
		})
		if err != nil {
			return fmt.Errorf("create embedding: %w", err)
		}
		if len(resp.Data) != len(batch) {
			return fmt.Errorf("embedding result count mismatch: expected %d got %d", len(batch), len(resp.Data))
		}
		for _, item := range resp.Data {
			if e.dim > 0 && len(item.Embedding) != e.dim {
				return fmt.Errorf("embedding dimensionality mismatch: expected %d got %d", e.dim, len(item.Embedding))
			}
			vec := make([]float32, len(item.Embedding))
			copy(vec, item.Embedding)
			out = append(out, vec)
		}
		usage = usage.Add(metrics.EmbeddingUsage{
			PromptTokens: resp.Usage.PromptTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		})
		batch = batch[:0]
		batchTokens = 0
		return nil
	}

	for _, text := range texts {
		tokens := e.countTokens(text)
		if tokens > maxBatchTokens {
			return nil, fmt.Errorf("text too large for embedding request: tokens=%d", tokens)
		}
		if batchTokens+tokens > maxBatchTokens && len(batch) > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, text)
		batchTokens += tokens
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !usage.IsZero() {
		e.logger.Debug("embedding usage", "promptTokens", usage.PromptTokens, "totalTokens", usage.TotalTokens)
	}
	return out, nil
}

func (e *OpenAIEmbedder) countTokens(text string) int {
	if text == "" {
		return 0
	}
	if e.encoder != nil {
		return len(e.encoder.Encode(text, nil, nil))
	}
	// Rough upper bound when no encoding is available.
	return (len(text) + 1) / 2
}

var _ faqbank.Embedder = (*OpenAIEmbedder)(nil)
