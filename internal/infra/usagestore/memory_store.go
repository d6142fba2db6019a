package usagestore

import (
	"context"
	"sort"
	"sync"

	"github.com/askbase/faq-service/internal/domain/faqbank"
)

// MemoryStore is an in-memory implementation of the usage store for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementAsk bumps the counter for a canonical question, remembering the
// first display form seen.
func (s *MemoryStore) IncrementAsk(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// TopQuestions returns the most frequently asked questions.
func (s *MemoryStore) TopQuestions(_ context.Context, limit int) ([]faqbank.TrendingQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]faqbank.TrendingQuestion, 0, len(s.counts))
	for canonical, count := range s.counts {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, faqbank.TrendingQuestion{Question: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Question < items[j].Question
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ faqbank.UsageStore = (*MemoryStore)(nil)
