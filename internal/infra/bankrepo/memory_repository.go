package bankrepo

import (
	"context"
	"sync"

	"github.com/askbase/faq-service/internal/domain/faqbank"
)

// MemoryRepository is an in-memory BankRepository used for tests/dev. Each
// tenant maps to one logical document, mirroring the persisted layout.
type MemoryRepository struct {
	mu    sync.RWMutex
	banks map[string][]faqbank.FaqRecord
}

// NewMemoryRepository constructs a repo backed by process memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{banks: make(map[string][]faqbank.FaqRecord)}
}

// GetBank implements faqbank.BankRepository.
func (r *MemoryRepository) GetBank(_ context.Context, tenantID string) (faqbank.TenantBank, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records, ok := r.banks[tenantID]
	if !ok {
		return faqbank.TenantBank{}, false, nil
	}
	bank := faqbank.TenantBank{
		TenantID: tenantID,
		Records:  append([]faqbank.FaqRecord(nil), records...),
	}
	return bank, true, nil
}

// AppendRecords implements faqbank.BankRepository. The whole create-or-append
// happens under one lock, matching the single-document atomicity the domain
// relies on.
func (r *MemoryRepository) AppendRecords(_ context.Context, tenantID string, records []faqbank.FaqRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banks[tenantID] = append(r.banks[tenantID], records...)
	return nil
}

// CreateEmptyBank registers a tenant with zero records. Used by tooling and
// tests to exercise the empty-bank state.
func (r *MemoryRepository) CreateEmptyBank(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[tenantID]; !ok {
		r.banks[tenantID] = []faqbank.FaqRecord{}
	}
}

var _ faqbank.BankRepository = (*MemoryRepository)(nil)
