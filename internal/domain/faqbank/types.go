package faqbank

import "time"

// FaqRecord is a single stored question/answer pair and the vector derived
// from the question at ingestion time. Records are immutable once created.
type FaqRecord struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Vector    []float32 `json:"vector"`
	CreatedAt time.Time `json:"createdAt"`
}

// TenantBank aggregates every record ingested for a tenant, in append order.
type TenantBank struct {
	TenantID string
	Records  []FaqRecord
}

// FaqInput is one submitted question/answer pair, before validation.
type FaqInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrainRequest is the ingestion payload.
type TrainRequest struct {
	TenantID string     `json:"tenantId"`
	Faqs     []FaqInput `json:"faqs"`
}

// TrainResponse reports how many submitted items were stored or filtered.
type TrainResponse struct {
	Message string `json:"message"`
	Stored  int    `json:"stored"`
	Skipped int    `json:"skipped,omitempty"`
}

// AskRequest is the query payload.
type AskRequest struct {
	TenantID string `json:"tenantId"`
	Question string `json:"question"`
}

// AskResponse carries the matched answer or one of the sentinel answers.
// Score is populated only when a match was accepted.
type AskResponse struct {
	Answer string   `json:"answer"`
	Score  *float64 `json:"score,omitempty"`
}

// TrendingQuestion represents a frequently asked question.
type TrendingQuestion struct {
	Question string `json:"question"`
	Count    int64  `json:"count"`
}
