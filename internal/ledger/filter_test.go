package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func expenseEntries() []ExpenseEntry {
	return []ExpenseEntry{
		{ID: 1, Payee: "Aziz", Category: "Oylik maosh", Branch: "Zarkent Filiali", Paid: 100000},
		{ID: 2, Payee: "Vali", Category: "Ijara", Branch: "Nabrejniy filiali", Paid: 0},
		{ID: 3, Payee: "Olim", Category: "Kommunal", Branch: "Zarkent Filiali", Paid: 50000},
	}
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	got := Filter{Query: "AZ"}.Expenses(expenseEntries())
	require.Len(t, got, 1)
	require.Equal(t, "Aziz", got[0].Payee)
}

func TestFilterQueryMatchesEitherNameField(t *testing.T) {
	got := Filter{Query: "ijara"}.Expenses(expenseEntries())
	require.Len(t, got, 1)
	require.Equal(t, "Vali", got[0].Payee)
}

func TestFilterBranchExact(t *testing.T) {
	got := Filter{Branch: "Zarkent Filiali"}.Expenses(expenseEntries())
	require.Len(t, got, 2)

	// Empty branch means no filter.
	got = Filter{}.Expenses(expenseEntries())
	require.Len(t, got, 3)
}

func TestFilterPayStatus(t *testing.T) {
	paid := Filter{Status: PayStatusPaid}.Expenses(expenseEntries())
	require.Len(t, paid, 2)

	unpaid := Filter{Status: PayStatusUnpaid}.Expenses(expenseEntries())
	require.Len(t, unpaid, 1)
	require.Equal(t, "Vali", unpaid[0].Payee)

	all := Filter{Status: PayStatusAll}.Expenses(expenseEntries())
	require.Len(t, all, 3)
}

func TestFilterPredicatesCombine(t *testing.T) {
	f := Filter{Query: "o", Branch: "Zarkent Filiali", Status: PayStatusPaid}
	got := f.Expenses(expenseEntries())
	require.Len(t, got, 2) // Aziz (category "Oylik maosh") and Olim
}

func TestFilterDateRangeInert(t *testing.T) {
	f := Filter{StartDate: "2024-01-01", EndDate: "2024-12-31"}
	require.Len(t, f.Expenses(expenseEntries()), 3)
}

func TestFilterIncome(t *testing.T) {
	entries := []IncomeEntry{
		{ID: 1, CompanyName: "Buxoro Savdo", ContactName: "Jasur", Branch: "Zarkent Filiali", Paid: PaidBreakdown{Total: 100}},
		{ID: 2, CompanyName: "Nur MChJ", ContactName: "Aziza", Branch: "Nabrejniy filiali"},
	}

	got := Filter{Query: "aziza"}.Incomes(entries)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)

	got = Filter{Status: PayStatusUnpaid}.Incomes(entries)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestValidPayStatus(t *testing.T) {
	require.True(t, ValidPayStatus(""))
	require.True(t, ValidPayStatus(PayStatusAll))
	require.True(t, ValidPayStatus(PayStatusPaid))
	require.True(t, ValidPayStatus(PayStatusUnpaid))
	require.False(t, ValidPayStatus("overdue"))
}
