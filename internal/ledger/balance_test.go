package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeZeroLedgers(t *testing.T) {
	summary := Compose(IncomeTotals{}, ExpenseTotals{})
	require.Equal(t, 0.0, summary.NetIncome)
	require.Equal(t, 0.0, summary.Receivables)
	require.Equal(t, 0.0, summary.Payables)
	require.Equal(t, 0.0, summary.NetPosition)
	// Zero denominators must yield 0, never NaN or a panic.
	require.Equal(t, 0, summary.CollectionRate)
	require.Equal(t, 0, summary.PaymentRate)
	require.Equal(t, 0, summary.ProfitMargin)
}

func TestComposeNetIncome(t *testing.T) {
	income := SumIncome([]IncomeEntry{{Paid: PaidBreakdown{Total: 500000}}})
	expense := SumExpenses([]ExpenseEntry{{Paid: 300000}})
	summary := Compose(income, expense)
	require.Equal(t, 200000.0, summary.NetIncome)
}

func TestComposeReceivablesAndPayables(t *testing.T) {
	income := IncomeTotals{Remaining: 120000}
	expense := ExpenseTotals{RemainingDebt: 80000, RemainingAdvance: 30000}
	summary := Compose(income, expense)
	require.Equal(t, 150000.0, summary.Receivables)
	require.Equal(t, 80000.0, summary.Payables)
	require.Equal(t, 70000.0, summary.NetPosition)
}

func TestComposeRates(t *testing.T) {
	income := IncomeTotals{TotalOwed: 300000, PaidTotal: 200000}
	expense := ExpenseTotals{TotalBilled: 160000, Paid: 120000}
	summary := Compose(income, expense)
	require.Equal(t, 67, summary.CollectionRate) // 66.66 rounds up
	require.Equal(t, 75, summary.PaymentRate)
	require.Equal(t, 40, summary.ProfitMargin) // 80000/200000
}

func TestComposeRatesRoundHalfUp(t *testing.T) {
	// 100*25/200 = 12.5 rounds to 13.
	summary := Compose(IncomeTotals{TotalOwed: 200, PaidTotal: 25}, ExpenseTotals{})
	require.Equal(t, 13, summary.CollectionRate)
}

func TestComposeNegativeMargin(t *testing.T) {
	income := IncomeTotals{TotalOwed: 100000, PaidTotal: 100000}
	expense := ExpenseTotals{TotalBilled: 150000, Paid: 150000}
	summary := Compose(income, expense)
	require.Equal(t, -50000.0, summary.NetIncome)
	require.Equal(t, -50, summary.ProfitMargin)
}

func TestComposeCarriesTotals(t *testing.T) {
	income := IncomeTotals{TotalOwed: 1, PaidTotal: 2, Remaining: 3}
	expense := ExpenseTotals{TotalBilled: 4, Paid: 5}
	summary := Compose(income, expense)
	require.Equal(t, income, summary.IncomeTotals)
	require.Equal(t, expense, summary.ExpenseTotals)
}
