package faqbank

import "math"

// AcceptThreshold is the fixed cosine similarity cutoff above which a match
// is considered relevant enough to return.
const AcceptThreshold = 0.7

// MatchResult is the outcome of scanning a bank against a query vector.
// Best is nil when the bank holds no scorable records; Score is then -Inf,
// below every valid cosine value.
type MatchResult struct {
	Best     *FaqRecord
	Score    float64
	Accepted bool
}

// CosineSimilarity returns the cosine of the angle between a and b.
// A zero-norm operand yields exactly 0.0 rather than NaN.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	var normA, normB float64
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Match scans records in stored order and tracks the single best candidate.
// A candidate replaces the running best only when strictly more similar, so
// the first of equally scored records wins. Records without a vector never
// participate.
func Match(records []FaqRecord, query []float32) MatchResult {
	bestScore := math.Inf(-1)
	bestIdx := -1
	for i := range records {
		if len(records[i].Vector) == 0 {
			continue
		}
		score := CosineSimilarity(query, records[i].Vector)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return MatchResult{Score: math.Inf(-1)}
	}
	return MatchResult{
		Best:     &records[bestIdx],
		Score:    bestScore,
		Accepted: bestScore >= AcceptThreshold,
	}
}
