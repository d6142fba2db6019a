package faqbank

import "context"

// BankRepository persists per-tenant FAQ banks.
type BankRepository interface {
	// GetBank loads the full bank for a tenant. The boolean reports whether
	// the tenant has a bank at all; a bank with zero records is a valid state
	// distinct from an absent one.
	GetBank(ctx context.Context, tenantID string) (TenantBank, bool, error)
	// AppendRecords creates the bank when absent and appends to it otherwise.
	// Implementations must tolerate two concurrent calls racing to create the
	// same tenant.
	AppendRecords(ctx context.Context, tenantID string, records []FaqRecord) error
}
