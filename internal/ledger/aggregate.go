package ledger

// SumIncome folds an income collection into totals. An empty or nil slice
// yields zero totals; the fold visits every record once and is
// order-independent.
func SumIncome(entries []IncomeEntry) IncomeTotals {
	var t IncomeTotals
	for _, e := range entries {
		t.TotalOwed += e.TotalOwed
		t.PaidTotal += e.Paid.Total
		t.Remaining += e.Remaining
	}
	return t
}

// SumExpenses folds an expense collection into totals.
func SumExpenses(entries []ExpenseEntry) ExpenseTotals {
	var t ExpenseTotals
	for _, e := range entries {
		t.PriorCarry += e.PriorMonthsCarry
		t.MonthlyBilled += e.MonthlyBilled
		t.TotalBilled += e.TotalBilled
		t.Paid += e.Paid
		t.RemainingDebt += e.RemainingDebt
		t.RemainingAdvance += e.RemainingAdvance
	}
	return t
}
