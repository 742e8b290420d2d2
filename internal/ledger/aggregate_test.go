package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumIncomeEmpty(t *testing.T) {
	require.Equal(t, IncomeTotals{}, SumIncome(nil))
	require.Equal(t, IncomeTotals{}, SumIncome([]IncomeEntry{}))
}

func TestSumExpensesEmpty(t *testing.T) {
	require.Equal(t, ExpenseTotals{}, SumExpenses(nil))
}

func TestSumIncomeSingleRecord(t *testing.T) {
	entry := IncomeEntry{
		TotalOwed: 900000,
		Paid:      PaidBreakdown{Total: 500000, Cash: 200000, BankTransfer: 200000, Card: 100000},
		Remaining: 400000,
	}
	totals := SumIncome([]IncomeEntry{entry})
	require.Equal(t, 900000.0, totals.TotalOwed)
	require.Equal(t, 500000.0, totals.PaidTotal)
	require.Equal(t, 400000.0, totals.Remaining)
}

func TestSumExpensesSingleRecord(t *testing.T) {
	entry := ExpenseEntry{
		PriorMonthsCarry: 100000,
		MonthlyBilled:    50000,
		TotalBilled:      150000,
		Paid:             120000,
		RemainingDebt:    30000,
	}
	totals := SumExpenses([]ExpenseEntry{entry})
	require.Equal(t, 100000.0, totals.PriorCarry)
	require.Equal(t, 50000.0, totals.MonthlyBilled)
	require.Equal(t, 150000.0, totals.TotalBilled)
	require.Equal(t, 120000.0, totals.Paid)
	require.Equal(t, 30000.0, totals.RemainingDebt)
	require.Equal(t, 0.0, totals.RemainingAdvance)
}

func TestSumIncomeOrderIndependent(t *testing.T) {
	entries := []IncomeEntry{
		{TotalOwed: 100, Paid: PaidBreakdown{Total: 40}, Remaining: 60},
		{TotalOwed: 250, Paid: PaidBreakdown{Total: 250}, Remaining: 0},
		{TotalOwed: 75, Paid: PaidBreakdown{Total: 10}, Remaining: 65},
	}
	forward := SumIncome(entries)

	reversed := []IncomeEntry{entries[2], entries[1], entries[0]}
	require.Equal(t, forward, SumIncome(reversed))

	shuffled := []IncomeEntry{entries[1], entries[0], entries[2]}
	require.Equal(t, forward, SumIncome(shuffled))
}

func TestSumExpensesOrderIndependent(t *testing.T) {
	entries := []ExpenseEntry{
		{TotalBilled: 500, Paid: 500},
		{TotalBilled: 300, Paid: 100, RemainingDebt: 200},
		{TotalBilled: 200, Paid: 350, RemainingAdvance: 150},
	}
	forward := SumExpenses(entries)
	reversed := []ExpenseEntry{entries[2], entries[1], entries[0]}
	require.Equal(t, forward, SumExpenses(reversed))
	require.Equal(t, 1000.0, forward.TotalBilled)
	require.Equal(t, 950.0, forward.Paid)
}
