package ledger

// ExpenseDerivation carries the auto-calculated fields of an expense row.
type ExpenseDerivation struct {
	TotalBilled      float64
	RemainingDebt    float64
	RemainingAdvance float64
}

// DeriveExpense computes the derived fields of an expense row from its three
// entered amounts. Callers clamp inputs to >= 0 before invoking; the result
// guarantees that at most one of RemainingDebt and RemainingAdvance is
// nonzero. The function is pure and must run on every create and update so
// persisted rows never carry stale derived values.
func DeriveExpense(priorCarry, monthlyBilled, paid float64) ExpenseDerivation {
	total := priorCarry + monthlyBilled
	d := ExpenseDerivation{TotalBilled: total}
	if diff := total - paid; diff > 0 {
		d.RemainingDebt = diff
	}
	if diff := paid - total; diff > 0 {
		d.RemainingAdvance = diff
	}
	return d
}

// Apply writes the derived fields back onto an expense entry.
func (d ExpenseDerivation) Apply(e *ExpenseEntry) {
	e.TotalBilled = d.TotalBilled
	e.RemainingDebt = d.RemainingDebt
	e.RemainingAdvance = d.RemainingAdvance
}
