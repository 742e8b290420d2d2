// Package eslatma manages reminder records. Reminders are descriptive
// metadata only; nothing in this codebase evaluates them against a clock or
// delivers them.
package eslatma

import "time"

// Frequency enumerates recurrence intervals.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ValidFrequency reports whether f is a recognised recurrence value.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Reminder model. Frequency is set iff IsRecurring. CreatedAt is assigned at
// creation and never changes.
type Reminder struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Date        string    `json:"date,omitempty"`
	IsRecurring bool      `json:"isRecurring"`
	Frequency   Frequency `json:"frequency,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
