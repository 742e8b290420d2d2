package chiqim

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hisobchi/hisobchi/internal/ledger"
)

// csvHeaders are the Uzbek column titles of the expense export.
var csvHeaders = []string{
	"Sana", "To'lov oluvchi", "Filial", "Kategoriya",
	"Avvalgi oylardan", "Bir oylik", "Jami",
	"To'langan", "Qarzdorlik", "Avans",
}

// WriteCSV streams the expense entries as CSV. Text columns are always
// quoted, numeric columns are written bare, matching the export format the
// spreadsheet operators already import.
func WriteCSV(w io.Writer, entries []ledger.ExpenseEntry) error {
	buf := bufio.NewWriterSize(w, 32*1024)

	header := make([]string, len(csvHeaders))
	for i, h := range csvHeaders {
		header[i] = quoteCSV(h)
	}
	if _, err := buf.WriteString(strings.Join(header, ",") + "\r\n"); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			quoteCSV(e.Date),
			quoteCSV(e.Payee),
			quoteCSV(e.Branch),
			quoteCSV(e.Category),
			formatAmount(e.PriorMonthsCarry),
			formatAmount(e.MonthlyBilled),
			formatAmount(e.TotalBilled),
			formatAmount(e.Paid),
			formatAmount(e.RemainingDebt),
			formatAmount(e.RemainingAdvance),
		}
		if _, err := buf.WriteString(strings.Join(row, ",") + "\r\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
