package domain

import "github.com/shopspring/decimal"

// CategoryType declares which transaction kind a category accepts.
type CategoryType string

const (
	IncomeCategory  CategoryType = "INCOME"
	ExpenseCategory CategoryType = "EXPENSE"
)

// Accepts reports whether a transaction of kind k may be booked on this category type.
func (c CategoryType) Accepts(k TransactionKind) bool {
	return (c == IncomeCategory && k == Income) || (c == ExpenseCategory && k == Expense)
}

// Category is a ledger category with its running aggregate.
type Category struct {
	CategoryID string          `json:"categoryID"`
	LedgerID   string          `json:"ledgerID"`
	UserID     string          `json:"userID"`
	Name       string          `json:"name"`
	Type       CategoryType    `json:"type"`
	Total      decimal.Decimal `json:"total"`
	AuditFields
}

// Ledger groups categories and carries income/expense aggregates.
type Ledger struct {
	LedgerID     string          `json:"ledgerID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	AuditFields
}
