package ledger

import (
	"strings"

	"golang.org/x/text/cases"
)

// PayStatus narrows a ledger view by payment state.
type PayStatus string

const (
	PayStatusAll    PayStatus = "all"
	PayStatusPaid   PayStatus = "paid"
	PayStatusUnpaid PayStatus = "unpaid"
)

// ValidPayStatus reports whether s is a recognised payment-status value.
// The empty string is accepted and treated as "all".
func ValidPayStatus(s PayStatus) bool {
	switch s {
	case "", PayStatusAll, PayStatusPaid, PayStatusUnpaid:
		return true
	}
	return false
}

// Filter narrows a record set before aggregation or export. Query matches
// case-insensitively against the two name fields of a record (either may
// match); Branch is an exact match with the empty string meaning no filter;
// Status checks the paid amount. All active predicates are ANDed.
//
// StartDate and EndDate are accepted for interface compatibility with the
// original form state but are not applied to any predicate; entry dates are
// free text and carry no comparable ordering.
type Filter struct {
	Query     string
	Branch    string
	Status    PayStatus
	StartDate string
	EndDate   string
}

var foldCaser = cases.Fold()

// MatchIncome reports whether an income entry passes the filter. The query
// term is matched against the company and contact names.
func (f Filter) MatchIncome(e IncomeEntry) bool {
	if !containsFold(f.Query, e.CompanyName, e.ContactName) {
		return false
	}
	if f.Branch != "" && e.Branch != f.Branch {
		return false
	}
	return f.matchPaid(e.Paid.Total)
}

// MatchExpense reports whether an expense entry passes the filter. The query
// term is matched against the payee and category names.
func (f Filter) MatchExpense(e ExpenseEntry) bool {
	if !containsFold(f.Query, e.Payee, e.Category) {
		return false
	}
	if f.Branch != "" && e.Branch != f.Branch {
		return false
	}
	return f.matchPaid(e.Paid)
}

// Incomes returns the entries passing the filter, preserving input order.
func (f Filter) Incomes(entries []IncomeEntry) []IncomeEntry {
	out := make([]IncomeEntry, 0, len(entries))
	for _, e := range entries {
		if f.MatchIncome(e) {
			out = append(out, e)
		}
	}
	return out
}

// Expenses returns the entries passing the filter, preserving input order.
func (f Filter) Expenses(entries []ExpenseEntry) []ExpenseEntry {
	out := make([]ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		if f.MatchExpense(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matchPaid(paid float64) bool {
	switch f.Status {
	case PayStatusPaid:
		return paid > 0
	case PayStatusUnpaid:
		return paid == 0
	}
	return true
}

func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	folded := foldCaser.String(term)
	for _, field := range fields {
		if strings.Contains(foldCaser.String(field), folded) {
			return true
		}
	}
	return false
}
