// Package ledger holds the pure calculation core shared by the kirim and
// chiqim modules: per-record derivation, collection aggregation and the
// composed balance report. Nothing in this package performs I/O.
package ledger

import "time"

// PaidBreakdown splits a received income payment by method. Total is entered
// by the operator and is expected, but not enforced, to equal the sum of the
// three method columns.
type PaidBreakdown struct {
	Total        float64 `json:"total"`
	Cash         float64 `json:"cash"`
	BankTransfer float64 `json:"bankTransfer"`
	Card         float64 `json:"card"`
}

// IncomeEntry is a kirim ledger row. TotalOwed and Remaining are stored as
// entered; income rows carry no derived fields.
type IncomeEntry struct {
	ID                int64         `json:"id"`
	CompanyName       string        `json:"companyName"`
	TaxID             string        `json:"inn"`
	Phone             string        `json:"phone"`
	ContactName       string        `json:"contactName"`
	ServiceType       string        `json:"serviceType"`
	Branch            string        `json:"branch"`
	PriorMonthsCount  int           `json:"priorMonthsCount"`
	PriorMonthsAmount float64       `json:"priorMonthsAmount"`
	MonthlyBilled     float64       `json:"monthlyBilled"`
	TotalOwed         float64       `json:"totalOwed"`
	Paid              PaidBreakdown `json:"paid"`
	Remaining         float64       `json:"remaining"`
	LastUpdated       string        `json:"lastUpdated"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// ExpenseEntry is a chiqim ledger row. TotalBilled, RemainingDebt and
// RemainingAdvance are derived via DeriveExpense before every write.
type ExpenseEntry struct {
	ID               int64     `json:"id"`
	Date             string    `json:"date"`
	Payee            string    `json:"payee"`
	Branch           string    `json:"branch"`
	Category         string    `json:"category"`
	PriorMonthsCarry float64   `json:"priorMonthsCarry"`
	MonthlyBilled    float64   `json:"monthlyBilled"`
	TotalBilled      float64   `json:"totalBilled"`
	Paid             float64   `json:"paid"`
	RemainingDebt    float64   `json:"remainingDebt"`
	RemainingAdvance float64   `json:"remainingAdvance"`
	CreatedAt        time.Time `json:"createdAt"`
}

// IncomeTotals sums an income collection.
type IncomeTotals struct {
	TotalOwed float64 `json:"totalOwed"`
	PaidTotal float64 `json:"paidTotal"`
	Remaining float64 `json:"remaining"`
}

// ExpenseTotals sums an expense collection. PriorCarry and MonthlyBilled back
// the list-view footer; the balance report reads the other four.
type ExpenseTotals struct {
	PriorCarry       float64 `json:"priorCarry"`
	MonthlyBilled    float64 `json:"monthlyBilled"`
	TotalBilled      float64 `json:"totalBilled"`
	Paid             float64 `json:"paid"`
	RemainingDebt    float64 `json:"remainingDebt"`
	RemainingAdvance float64 `json:"remainingAdvance"`
}

// BalanceSummary is the cross-ledger balance sheet. The three rates are
// integer percentages rounded half up, 0 when the denominator is 0.
type BalanceSummary struct {
	IncomeTotals   IncomeTotals  `json:"incomeTotals"`
	ExpenseTotals  ExpenseTotals `json:"expenseTotals"`
	NetIncome      float64       `json:"netIncome"`
	Receivables    float64       `json:"totalReceivables"`
	Payables       float64       `json:"totalPayables"`
	NetPosition    float64       `json:"netPosition"`
	CollectionRate int           `json:"collectionRate"`
	PaymentRate    int           `json:"paymentRate"`
	ProfitMargin   int           `json:"profitMargin"`
}
