package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger transaction row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Kind          string          `db:"kind"` // INCOME, EXPENSE or TRANSFER
	Date          time.Time       `db:"txn_date"`
	Amount        decimal.Decimal `db:"amount"`
	Note          string          `db:"note"`
	LedgerID      string          `db:"ledger_id"`
	CategoryID    *string         `db:"category_id"`     // Nullable
	FromAccountID *string         `db:"from_account_id"` // Nullable
	ToAccountID   *string         `db:"to_account_id"`   // Nullable
	PlanID        *string         `db:"plan_id"`         // Nullable
	AuditFields
}
