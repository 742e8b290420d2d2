package ledger

import "math"

// Compose builds the balance sheet from the two ledger totals.
//
// Net income compares money actually received against money actually paid
// out; receivables add unpaid customer balances to advances handed to payees;
// payables are the unpaid expense debt. Each rate guards its denominator so a
// fresh ledger reports 0% rather than NaN.
func Compose(income IncomeTotals, expense ExpenseTotals) BalanceSummary {
	netIncome := income.PaidTotal - expense.Paid
	receivables := income.Remaining + expense.RemainingAdvance
	payables := expense.RemainingDebt

	return BalanceSummary{
		IncomeTotals:   income,
		ExpenseTotals:  expense,
		NetIncome:      netIncome,
		Receivables:    receivables,
		Payables:       payables,
		NetPosition:    receivables - payables,
		CollectionRate: ratePct(income.PaidTotal, income.TotalOwed),
		PaymentRate:    ratePct(expense.Paid, expense.TotalBilled),
		ProfitMargin:   ratePct(netIncome, income.PaidTotal),
	}
}

// ratePct returns round-half-up(100*num/den), or 0 when den is not positive.
func ratePct(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return int(math.Floor(num/den*100 + 0.5))
}
