package eslatma

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hisobchi/hisobchi/internal/shared"
)

// RepositoryPort defines data access methods for reminders.
type RepositoryPort interface {
	List(ctx context.Context) ([]Reminder, error)
	Get(ctx context.Context, id int64) (*Reminder, error)
	Create(ctx context.Context, rem Reminder) (*Reminder, error)
	Update(ctx context.Context, rem Reminder) error
	Delete(ctx context.Context, id int64) error
}

// Repository provides PostgreSQL backed persistence for reminders.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all reminders, newest first.
func (r *Repository) List(ctx context.Context) ([]Reminder, error) {
	query := `
		SELECT id, title, message, due_date, is_recurring, frequency, is_active, created_at
		FROM eslatmalar ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

// Get fetches a single reminder by ID.
func (r *Repository) Get(ctx context.Context, id int64) (*Reminder, error) {
	query := `
		SELECT id, title, message, due_date, is_recurring, frequency, is_active, created_at
		FROM eslatmalar WHERE id = $1`

	rem, err := scanReminder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rem, nil
}

// Create inserts a new reminder and returns it with its assigned ID.
func (r *Repository) Create(ctx context.Context, rem Reminder) (*Reminder, error) {
	query := `
		INSERT INTO eslatmalar (title, message, due_date, is_recurring, frequency, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		rem.Title, rem.Message,
		pgtype.Text{String: rem.Date, Valid: rem.Date != ""},
		rem.IsRecurring,
		pgtype.Text{String: string(rem.Frequency), Valid: rem.Frequency != ""},
		rem.IsActive, rem.CreatedAt,
	).Scan(&rem.ID)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

// Update rewrites all mutable columns of a reminder. created_at is immutable
// and deliberately excluded.
func (r *Repository) Update(ctx context.Context, rem Reminder) error {
	query := `
		UPDATE eslatmalar SET
			title = $1, message = $2, due_date = $3,
			is_recurring = $4, frequency = $5, is_active = $6
		WHERE id = $7`

	tag, err := r.pool.Exec(ctx, query,
		rem.Title, rem.Message,
		pgtype.Text{String: rem.Date, Valid: rem.Date != ""},
		rem.IsRecurring,
		pgtype.Text{String: string(rem.Frequency), Valid: rem.Frequency != ""},
		rem.IsActive,
		rem.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a reminder.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM eslatmalar WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanReminder(row pgx.Row) (Reminder, error) {
	var (
		rem  Reminder
		date pgtype.Text
		freq pgtype.Text
	)
	err := row.Scan(&rem.ID, &rem.Title, &rem.Message, &date, &rem.IsRecurring, &freq, &rem.IsActive, &rem.CreatedAt)
	if err != nil {
		return Reminder{}, err
	}
	rem.Date = date.String
	rem.Frequency = Frequency(freq.String)
	return rem, nil
}

var _ RepositoryPort = (*Repository)(nil)
