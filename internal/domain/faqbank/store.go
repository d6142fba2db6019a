package faqbank

import "context"

// UsageStore tracks how often questions are asked per tenant.
type UsageStore interface {
	IncrementAsk(ctx context.Context, canonical, display string) error
	TopQuestions(ctx context.Context, limit int) ([]TrendingQuestion, error)
}
