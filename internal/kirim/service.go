package kirim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("kirim: validation failed")

// Service handles income ledger business logic.
type Service struct {
	repo     RepositoryPort
	branches []string
	now      func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, branches []string) *Service {
	return &Service{repo: repo, branches: branches, now: time.Now}
}

// CreateInput carries operator-entered fields for a new income entry. All
// money figures are stored as entered; nothing is derived.
type CreateInput struct {
	CompanyName       string
	TaxID             string
	Phone             string
	ContactName       string
	ServiceType       string
	Branch            string
	PriorMonthsCount  int
	PriorMonthsAmount float64
	MonthlyBilled     float64
	TotalOwed         float64
	Paid              ledger.PaidBreakdown
	Remaining         float64
	LastUpdated       string
}

// Patch carries a partial update. Nil fields keep their current value.
type Patch struct {
	CompanyName       *string
	TaxID             *string
	Phone             *string
	ContactName       *string
	ServiceType       *string
	Branch            *string
	PriorMonthsCount  *int
	PriorMonthsAmount *float64
	MonthlyBilled     *float64
	TotalOwed         *float64
	Paid              *ledger.PaidBreakdown
	Remaining         *float64
	LastUpdated       *string
}

// List returns income entries passing the filter, newest first.
func (s *Service) List(ctx context.Context, filter ledger.Filter) ([]ledger.IncomeEntry, error) {
	if !ledger.ValidPayStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Incomes(entries), nil
}

// Get fetches a single entry.
func (s *Service) Get(ctx context.Context, id int64) (*ledger.IncomeEntry, error) {
	return s.repo.Get(ctx, id)
}

// Create validates input and inserts a new entry.
func (s *Service) Create(ctx context.Context, input CreateInput) (*ledger.IncomeEntry, error) {
	if input.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name required", ErrValidation)
	}
	if input.Branch == "" {
		input.Branch = s.defaultBranch()
	}
	if !s.validBranch(input.Branch) {
		return nil, fmt.Errorf("%w: unknown branch %q", ErrValidation, input.Branch)
	}
	if err := validateAmounts(input.PriorMonthsAmount, input.MonthlyBilled, input.TotalOwed, input.Paid.Total, input.Remaining); err != nil {
		return nil, err
	}

	now := s.now()
	entry := ledger.IncomeEntry{
		CompanyName:       input.CompanyName,
		TaxID:             input.TaxID,
		Phone:             input.Phone,
		ContactName:       input.ContactName,
		ServiceType:       input.ServiceType,
		Branch:            input.Branch,
		PriorMonthsCount:  input.PriorMonthsCount,
		PriorMonthsAmount: input.PriorMonthsAmount,
		MonthlyBilled:     input.MonthlyBilled,
		TotalOwed:         input.TotalOwed,
		Paid:              input.Paid,
		Remaining:         input.Remaining,
		LastUpdated:       input.LastUpdated,
		CreatedAt:         now,
	}
	if entry.LastUpdated == "" {
		entry.LastUpdated = now.Format("2006-01-02")
	}
	return s.repo.Create(ctx, entry)
}

// Update merges the patch into the stored entry and persists the result.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*ledger.IncomeEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&entry.CompanyName, patch.CompanyName)
	applyString(&entry.TaxID, patch.TaxID)
	applyString(&entry.Phone, patch.Phone)
	applyString(&entry.ContactName, patch.ContactName)
	applyString(&entry.ServiceType, patch.ServiceType)
	if patch.Branch != nil {
		if !s.validBranch(*patch.Branch) {
			return nil, fmt.Errorf("%w: unknown branch %q", ErrValidation, *patch.Branch)
		}
		entry.Branch = *patch.Branch
	}
	if patch.PriorMonthsCount != nil {
		entry.PriorMonthsCount = *patch.PriorMonthsCount
	}
	applyFloat(&entry.PriorMonthsAmount, patch.PriorMonthsAmount)
	applyFloat(&entry.MonthlyBilled, patch.MonthlyBilled)
	applyFloat(&entry.TotalOwed, patch.TotalOwed)
	if patch.Paid != nil {
		entry.Paid = *patch.Paid
	}
	applyFloat(&entry.Remaining, patch.Remaining)

	if entry.CompanyName == "" {
		return nil, fmt.Errorf("%w: company name required", ErrValidation)
	}
	if err := validateAmounts(entry.PriorMonthsAmount, entry.MonthlyBilled, entry.TotalOwed, entry.Paid.Total, entry.Remaining); err != nil {
		return nil, err
	}

	// Every successful edit stamps the entry, unless the caller supplied an
	// explicit date.
	if patch.LastUpdated != nil {
		entry.LastUpdated = *patch.LastUpdated
	} else {
		entry.LastUpdated = s.now().Format("2006-01-02")
	}

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
func (s *Service) Totals(ctx context.Context, filter ledger.Filter) (ledger.IncomeTotals, error) {
	entries, err := s.List(ctx, filter)
	if err != nil {
		return ledger.IncomeTotals{}, err
	}
	return ledger.SumIncome(entries), nil
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

func validateAmounts(amounts ...float64) error {
	for _, a := range amounts {
		if a < 0 {
			return fmt.Errorf("%w: amounts must not be negative", ErrValidation)
		}
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
