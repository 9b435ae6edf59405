package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the length of a budget window.
type BudgetPeriod string

const (
	Monthly BudgetPeriod = "MONTHLY"
	Yearly  BudgetPeriod = "YEARLY"
)

// Budget tracks spending against a limit for the current window.
// A nil CategoryID makes it a ledger-level budget.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	UserID     string          `json:"userID"`
	LedgerID   string          `json:"ledgerID"`
	CategoryID *string         `json:"categoryID,omitempty"`
	Period     BudgetPeriod    `json:"period"`
	Limit      decimal.Decimal `json:"limit"`
	Amount     decimal.Decimal `json:"amount"` // spent inside [StartDate, EndDate]
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	AuditFields
}

// PeriodBounds returns the first and last day of the window of the given kind containing day.
func PeriodBounds(period BudgetPeriod, day time.Time) (time.Time, time.Time) {
	d := DateOf(day)
	if period == Yearly {
		start := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// IsActive reports whether date falls inside the window, both ends inclusive.
func (b Budget) IsActive(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(b.StartDate)) && !d.After(DateOf(b.EndDate))
}

// RefreshIfExpired resets the spent amount and moves the window onto today once today is past
// EndDate. It reports whether anything changed.
func (b *Budget) RefreshIfExpired(today time.Time) bool {
	if !DateOf(today).After(DateOf(b.EndDate)) {
		return false
	}
	b.Amount = decimal.Zero
	b.StartDate, b.EndDate = PeriodBounds(b.Period, today)
	return true
}

// OverLimit reports whether the spent amount exceeds the limit.
func (b Budget) OverLimit() bool {
	return b.Amount.GreaterThan(b.Limit)
}
