package bankrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/askbase/faq-service/internal/domain/faqbank"
)

// PostgresRepository implements faqbank.BankRepository using pgx. A bank is a
// row in tenants plus its tenant_faqs rows ordered by insertion id.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetBank loads the tenant row and all of its records in append order.
func (r *PostgresRepository) GetBank(ctx context.Context, tenantID string) (faqbank.TenantBank, bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM tenants WHERE tenant_id = $1)
	`, tenantID).Scan(&exists)
	if err != nil {
		return faqbank.TenantBank{}, false, err
	}
	if !exists {
		return faqbank.TenantBank{}, false, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT question, answer, embedding, created_at
		FROM tenant_faqs
		WHERE tenant_id = $1
		ORDER BY id
	`, tenantID)
	if err != nil {
		return faqbank.TenantBank{}, false, err
	}
	defer rows.Close()

	bank := faqbank.TenantBank{TenantID: tenantID}
	for rows.Next() {
		var (
			record    faqbank.FaqRecord
			embedding pgvector.Vector
		)
		if err := rows.Scan(&record.Question, &record.Answer, &embedding, &record.CreatedAt); err != nil {
			return faqbank.TenantBank{}, false, err
		}
		record.Vector = embedding.Slice()
		bank.Records = append(bank.Records, record)
	}
	if err := rows.Err(); err != nil {
		return faqbank.TenantBank{}, false, err
	}
	return bank, true, nil
}

// AppendRecords upserts the tenant row and inserts the new records in one
// transaction. ON CONFLICT DO NOTHING makes concurrent first-time training for
// the same tenant safe.
func (r *PostgresRepository) AppendRecords(ctx context.Context, tenantID string, records []faqbank.FaqRecord) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO tenants (tenant_id) VALUES ($1)
		ON CONFLICT (tenant_id) DO NOTHING
	`, tenantID); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(`
			INSERT INTO tenant_faqs (tenant_id, question, answer, embedding, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, tenantID, record.Question, record.Answer, pgvector.NewVector(record.Vector), record.CreatedAt)
	}
	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return err
		}
	}
	if err := results.Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

var _ faqbank.BankRepository = (*PostgresRepository)(nil)
