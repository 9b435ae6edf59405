package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is a ledgers row with its running income and expense totals.
type Ledger struct {
	LedgerID     string          `db:"ledger_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	AuditFields
}

// Category is a categories row.
type Category struct {
	CategoryID string          `db:"category_id"`
	LedgerID   string          `db:"ledger_id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	Type       string          `db:"category_type"`
	Total      decimal.Decimal `db:"total"`
	AuditFields
}

// Budget is a budgets row. A NULL category_id marks a ledger-level budget.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	LedgerID   string          `db:"ledger_id"`
	CategoryID *string         `db:"category_id"`
	Period     string          `db:"period"`
	Limit      decimal.Decimal `db:"budget_limit"`
	Amount     decimal.Decimal `db:"amount"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	AuditFields
}
