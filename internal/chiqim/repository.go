// Package chiqim manages the expense ledger. Expense rows carry derived
// columns recomputed on every write.
package chiqim

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisobchi/hisobchi/internal/ledger"
	"github.com/hisobchi/hisobchi/internal/shared"
)

// RepositoryPort defines data access methods for expense entries.
type RepositoryPort interface {
	List(ctx context.Context) ([]ledger.ExpenseEntry, error)
	Get(ctx context.Context, id int64) (*ledger.ExpenseEntry, error)
	Create(ctx context.Context, entry ledger.ExpenseEntry) (*ledger.ExpenseEntry, error)
	Update(ctx context.Context, entry ledger.ExpenseEntry) error
	Delete(ctx context.Context, id int64) error
}

// Repository provides PostgreSQL backed persistence for expense entries.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const chiqimColumns = `
	id, entry_date, payee, branch, category,
	prior_months_carry, monthly_billed, total_billed, paid,
	remaining_debt, remaining_advance, created_at`

// List returns all expense entries, newest first.
func (r *Repository) List(ctx context.Context) ([]ledger.ExpenseEntry, error) {
	query := `SELECT ` + chiqimColumns + ` FROM chiqim_entries ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.ExpenseEntry
	for rows.Next() {
		entry, err := scanChiqim(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Get fetches a single entry by ID.
func (r *Repository) Get(ctx context.Context, id int64) (*ledger.ExpenseEntry, error) {
	query := `SELECT ` + chiqimColumns + ` FROM chiqim_entries WHERE id = $1`

	entry, err := scanChiqim(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new entry and returns it with its assigned ID.
func (r *Repository) Create(ctx context.Context, entry ledger.ExpenseEntry) (*ledger.ExpenseEntry, error) {
	query := `
		INSERT INTO chiqim_entries (
			entry_date, payee, branch, category,
			prior_months_carry, monthly_billed, total_billed, paid,
			remaining_debt, remaining_advance, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		entry.Date, entry.Payee, entry.Branch, entry.Category,
		entry.PriorMonthsCarry, entry.MonthlyBilled, entry.TotalBilled, entry.Paid,
		entry.RemainingDebt, entry.RemainingAdvance, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update rewrites all mutable columns of an entry.
func (r *Repository) Update(ctx context.Context, entry ledger.ExpenseEntry) error {
	query := `
		UPDATE chiqim_entries SET
			entry_date = $1, payee = $2, branch = $3, category = $4,
			prior_months_carry = $5, monthly_billed = $6, total_billed = $7,
			paid = $8, remaining_debt = $9, remaining_advance = $10
		WHERE id = $11`

	tag, err := r.pool.Exec(ctx, query,
		entry.Date, entry.Payee, entry.Branch, entry.Category,
		entry.PriorMonthsCarry, entry.MonthlyBilled, entry.TotalBilled,
		entry.Paid, entry.RemainingDebt, entry.RemainingAdvance,
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
	tag, err := r.pool.Exec(ctx, `DELETE FROM chiqim_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanChiqim(row pgx.Row) (ledger.ExpenseEntry, error) {
	var e ledger.ExpenseEntry
	err := row.Scan(
		&e.ID, &e.Date, &e.Payee, &e.Branch, &e.Category,
		&e.PriorMonthsCarry, &e.MonthlyBilled, &e.TotalBilled, &e.Paid,
		&e.RemainingDebt, &e.RemainingAdvance, &e.CreatedAt,
	)
	return e, err
}

var _ RepositoryPort = (*Repository)(nil)
