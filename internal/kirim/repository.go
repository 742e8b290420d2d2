// Package kirim manages the income ledger.
package kirim

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisobchi/hisobchi/internal/ledger"
	"github.com/hisobchi/hisobchi/internal/shared"
)

// RepositoryPort defines data access methods for income entries.
type RepositoryPort interface {
	List(ctx context.Context) ([]ledger.IncomeEntry, error)
	Get(ctx context.Context, id int64) (*ledger.IncomeEntry, error)
	Create(ctx context.Context, entry ledger.IncomeEntry) (*ledger.IncomeEntry, error)
	Update(ctx context.Context, entry ledger.IncomeEntry) error
	Delete(ctx context.Context, id int64) error
}

// Repository provides PostgreSQL backed persistence for income entries.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const kirimColumns = `
	id, company_name, tax_id, phone, contact_name, service_type, branch,
	prior_months_count, prior_months_amount, monthly_billed, total_owed,
	paid_total, paid_cash, paid_bank, paid_card, remaining,
	last_updated, created_at`

// List returns all income entries, newest first.
func (r *Repository) List(ctx context.Context) ([]ledger.IncomeEntry, error) {
	query := `SELECT ` + kirimColumns + ` FROM kirim_entries ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.IncomeEntry
	for rows.Next() {
		entry, err := scanKirim(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Get fetches a single entry by ID.
func (r *Repository) Get(ctx context.Context, id int64) (*ledger.IncomeEntry, error) {
	query := `SELECT ` + kirimColumns + ` FROM kirim_entries WHERE id = $1`

	entry, err := scanKirim(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new entry and returns it with its assigned ID.
func (r *Repository) Create(ctx context.Context, entry ledger.IncomeEntry) (*ledger.IncomeEntry, error) {
	query := `
		INSERT INTO kirim_entries (
			company_name, tax_id, phone, contact_name, service_type, branch,
			prior_months_count, prior_months_amount, monthly_billed, total_owed,
			paid_total, paid_cash, paid_bank, paid_card, remaining,
			last_updated, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		entry.CompanyName, entry.TaxID, entry.Phone, entry.ContactName,
		entry.ServiceType, entry.Branch,
		entry.PriorMonthsCount, entry.PriorMonthsAmount, entry.MonthlyBilled, entry.TotalOwed,
		entry.Paid.Total, entry.Paid.Cash, entry.Paid.BankTransfer, entry.Paid.Card,
		entry.Remaining, entry.LastUpdated, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update rewrites all mutable columns of an entry.
func (r *Repository) Update(ctx context.Context, entry ledger.IncomeEntry) error {
	query := `
		UPDATE kirim_entries SET
			company_name = $1, tax_id = $2, phone = $3, contact_name = $4,
			service_type = $5, branch = $6,
			prior_months_count = $7, prior_months_amount = $8, monthly_billed = $9,
			total_owed = $10, paid_total = $11, paid_cash = $12, paid_bank = $13,
			paid_card = $14, remaining = $15, last_updated = $16
		WHERE id = $17`

	tag, err := r.pool.Exec(ctx, query,
		entry.CompanyName, entry.TaxID, entry.Phone, entry.ContactName,
		entry.ServiceType, entry.Branch,
		entry.PriorMonthsCount, entry.PriorMonthsAmount, entry.MonthlyBilled,
		entry.TotalOwed, entry.Paid.Total, entry.Paid.Cash, entry.Paid.BankTransfer,
		entry.Paid.Card, entry.Remaining, entry.LastUpdated,
		entry.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an entry.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM kirim_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanKirim(row pgx.Row) (ledger.IncomeEntry, error) {
	var e ledger.IncomeEntry
	err := row.Scan(
		&e.ID, &e.CompanyName, &e.TaxID, &e.Phone, &e.ContactName, &e.ServiceType, &e.Branch,
		&e.PriorMonthsCount, &e.PriorMonthsAmount, &e.MonthlyBilled, &e.TotalOwed,
		&e.Paid.Total, &e.Paid.Cash, &e.Paid.BankTransfer, &e.Paid.Card, &e.Remaining,
		&e.LastUpdated, &e.CreatedAt,
	)
	return e, err
}

var _ RepositoryPort = (*Repository)(nil)
