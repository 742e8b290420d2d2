package chiqim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("chiqim: validation failed")

// Service handles expense ledger business logic. TotalBilled and the two
// remainder columns are recomputed from the base figures on every write;
// client-supplied values for them are ignored.
type Service struct {
	repo     RepositoryPort
	branches []string
	now      func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, branches []string) *Service {
	return &Service{repo: repo, branches: branches, now: time.Now}
}

// CreateInput carries operator-entered fields for a new expense entry.
type CreateInput struct {
	Date             string
	Payee            string
	Branch           string
	Category         string
	PriorMonthsCarry float64
	MonthlyBilled    float64
	Paid             float64
}

// Patch carries a partial update. Nil fields keep their current value.
type Patch struct {
	Date             *string
	Payee            *string
	Branch           *string
	Category         *string
	PriorMonthsCarry *float64
	MonthlyBilled    *float64
	Paid             *float64
}

// List returns expense entries passing the filter, newest first.
func (s *Service) List(ctx context.Context, filter ledger.Filter) ([]ledger.ExpenseEntry, error) {
	if !ledger.ValidPayStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Expenses(entries), nil
}

// Get fetches a single entry.
func (s *Service) Get(ctx context.Context, id int64) (*ledger.ExpenseEntry, error) {
	return s.repo.Get(ctx, id)
}

// Create validates input, derives the computed columns and inserts a new entry.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ledger.ExpenseEntry, error) {
	if input.Payee == "" {
		return nil, fmt.Errorf("%w: payee required", ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category required", ErrValidation)
	}
	if input.Branch == "" {
		input.Branch = s.defaultBranch()
	}
	if !s.validBranch(input.Branch) {
		return nil, fmt.Errorf("%w: unknown branch %q", ErrValidation, input.Branch)
	}
	if input.PriorMonthsCarry < 0 || input.MonthlyBilled < 0 || input.Paid < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}

	now := s.now()
	entry := ledger.ExpenseEntry{
		Date:             input.Date,
		Payee:            input.Payee,
		Branch:           input.Branch,
		Category:         input.Category,
		PriorMonthsCarry: input.PriorMonthsCarry,
		MonthlyBilled:    input.MonthlyBilled,
		Paid:             input.Paid,
		CreatedAt:        now,
	}
	if entry.Date == "" {
		entry.Date = now.Format("2006-01-02")
	}
	ledger.DeriveExpense(entry.PriorMonthsCarry, entry.MonthlyBilled, entry.Paid).Apply(&entry)

	return s.repo.Create(ctx, entry)
}

// Update merges the patch into the stored entry, rederives the computed
// columns and persists the result.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*ledger.ExpenseEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.Payee != nil {
		entry.Payee = *patch.Payee
	}
	if patch.Branch != nil {
		if !s.validBranch(*patch.Branch) {
			return nil, fmt.Errorf("%w: unknown branch %q", ErrValidation, *patch.Branch)
		}
		entry.Branch = *patch.Branch
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.PriorMonthsCarry != nil {
		entry.PriorMonthsCarry = *patch.PriorMonthsCarry
	}
	if patch.MonthlyBilled != nil {
		entry.MonthlyBilled = *patch.MonthlyBilled
	}
	if patch.Paid != nil {
		entry.Paid = *patch.Paid
	}

	if entry.Payee == "" {
		return nil, fmt.Errorf("%w: payee required", ErrValidation)
	}
	if entry.Category == "" {
		return nil, fmt.Errorf("%w: category required", ErrValidation)
	}
	if entry.PriorMonthsCarry < 0 || entry.MonthlyBilled < 0 || entry.Paid < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}

	// Derivation runs on the merged state so a paid-only patch still refreshes
	// the remainder columns.
	ledger.DeriveExpense(entry.PriorMonthsCarry, entry.MonthlyBilled, entry.Paid).Apply(entry)

	if err := s.repo.Update(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Totals sums the entries passing the filter.
func (s *Service) Totals(ctx context.Context, filter ledger.Filter) (ledger.ExpenseTotals, error) {
	entries, err := s.List(ctx, filter)
	if err != nil {
		return ledger.ExpenseTotals{}, err
	}
	return ledger.SumExpenses(entries), nil
}

// Branches returns the configured branch list.
func (s *Service) Branches() []string {
	return s.branches
}

func (s *Service) defaultBranch() string {
	if len(s.branches) == 0 {
		return ""
	}
	return s.branches[0]
}

func (s *Service) validBranch(name string) bool {
	for _, b := range s.branches {
		if b == name {
			return true
		}
	}
	return false
}
