// Package balans composes the cross-ledger balance report.
package balans

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

// IncomeSource yields income entries for the report.
type IncomeSource interface {
	List(ctx context.Context) ([]ledger.IncomeEntry, error)
}

// ExpenseSource yields expense entries for the report.
type ExpenseSource interface {
	List(ctx context.Context) ([]ledger.ExpenseEntry, error)
}

// Service builds the balance report from both ledgers.
type Service struct {
	incomes  IncomeSource
	expenses ExpenseSource
}

// NewService builds a Service instance.
func NewService(incomes IncomeSource, expenses ExpenseSource) *Service {
	return &Service{incomes: incomes, expenses: expenses}
}

// Summary fetches both ledgers in parallel and composes the balance report
// from fresh data. It never reads a cached snapshot.
func (s *Service) Summary(ctx context.Context) (ledger.BalanceSummary, error) {
	var (
		incomeTotals  ledger.IncomeTotals
		expenseTotals ledger.ExpenseTotals
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entries, err := s.incomes.List(ctx)
		if err != nil {
			return err
		}
		incomeTotals = ledger.SumIncome(entries)
		return nil
	})

	g.Go(func() error {
		entries, err := s.expenses.List(ctx)
		if err != nil {
			return err
		}
		expenseTotals = ledger.SumExpenses(entries)
		return nil
	})

	if err := g.Wait(); err != nil {
		return ledger.BalanceSummary{}, err
	}
	return ledger.Compose(incomeTotals, expenseTotals), nil
}
