package chiqim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

func TestWriteCSVQuotesTextBareNumbers(t *testing.T) {
	entries := []ledger.ExpenseEntry{
		{
			Date:             "2024-03-15",
			Payee:            "Ijara to'lovi",
			Branch:           "Zarkent Filiali",
			Category:         "Ijara",
			PriorMonthsCarry: 100000,
			MonthlyBilled:    50000,
			TotalBilled:      150000,
			Paid:             120000,
			RemainingDebt:    30000,
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, entries))

	lines := strings.Split(strings.TrimRight(sb.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	require.Equal(t, `"Sana","To'lov oluvchi","Filial","Kategoriya","Avvalgi oylardan","Bir oylik","Jami","To'langan","Qarzdorlik","Avans"`, lines[0])
	require.Equal(t, `"2024-03-15","Ijara to'lovi","Zarkent Filiali","Ijara",100000,50000,150000,120000,30000,0`, lines[1])
}

func TestWriteCSVEscapesEmbeddedQuotes(t *testing.T) {
	entries := []ledger.ExpenseEntry{{Date: "2024-01-01", Payee: `MChJ "Nur"`}}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, entries))
	require.Contains(t, sb.String(), `"MChJ ""Nur"""`)
}

func TestWriteCSVEmptyCollection(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))

	lines := strings.Split(strings.TrimRight(sb.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 1) // header only
}

func TestWriteCSVFractionalAmounts(t *testing.T) {
	entries := []ledger.ExpenseEntry{{Payee: "A", MonthlyBilled: 1500.5, TotalBilled: 1500.5, Paid: 1500.5}}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, entries))
	require.Contains(t, sb.String(), ",1500.5,")
}
