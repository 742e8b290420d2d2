package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveExpensePartialPayment(t *testing.T) {
	d := DeriveExpense(100000, 50000, 120000)
	require.Equal(t, 150000.0, d.TotalBilled)
	require.Equal(t, 30000.0, d.RemainingDebt)
	require.Equal(t, 0.0, d.RemainingAdvance)
}

func TestDeriveExpenseOverpayment(t *testing.T) {
	d := DeriveExpense(0, 80000, 100000)
	require.Equal(t, 80000.0, d.TotalBilled)
	require.Equal(t, 0.0, d.RemainingDebt)
	require.Equal(t, 20000.0, d.RemainingAdvance)
}

func TestDeriveExpenseExactPayment(t *testing.T) {
	d := DeriveExpense(30000, 70000, 100000)
	require.Equal(t, 100000.0, d.TotalBilled)
	require.Equal(t, 0.0, d.RemainingDebt)
	require.Equal(t, 0.0, d.RemainingAdvance)
}

func TestDeriveExpenseZeroInputs(t *testing.T) {
	d := DeriveExpense(0, 0, 0)
	require.Equal(t, ExpenseDerivation{}, d)
}

func TestDeriveExpenseIdempotent(t *testing.T) {
	first := DeriveExpense(12345, 67890, 55555)
	second := DeriveExpense(12345, 67890, 55555)
	require.Equal(t, first, second)
}

func TestDeriveExpenseInvariants(t *testing.T) {
	cases := []struct{ prior, monthly, paid float64 }{
		{0, 0, 0},
		{100, 200, 0},
		{100, 200, 300},
		{100, 200, 500},
		{0, 1, 1},
		{250000, 0, 125000},
	}
	for _, tc := range cases {
		d := DeriveExpense(tc.prior, tc.monthly, tc.paid)
		require.Equal(t, tc.prior+tc.monthly, d.TotalBilled)
		// At most one remainder may be nonzero.
		require.False(t, d.RemainingDebt > 0 && d.RemainingAdvance > 0)
		require.GreaterOrEqual(t, d.RemainingDebt, 0.0)
		require.GreaterOrEqual(t, d.RemainingAdvance, 0.0)
		// Signed identity survives the clamping.
		require.Equal(t, d.TotalBilled-tc.paid, d.RemainingDebt-d.RemainingAdvance)
	}
}

func TestDerivationApply(t *testing.T) {
	e := ExpenseEntry{PriorMonthsCarry: 100, MonthlyBilled: 50, Paid: 30}
	DeriveExpense(e.PriorMonthsCarry, e.MonthlyBilled, e.Paid).Apply(&e)
	require.Equal(t, 150.0, e.TotalBilled)
	require.Equal(t, 120.0, e.RemainingDebt)
	require.Equal(t, 0.0, e.RemainingAdvance)
}
