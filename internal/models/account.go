package models

import (
	"github.com/shopspring/decimal"
)

// Account is the flattened accounts row. Credit and debt columns are NULL for kinds that do not
// carry that state.
type Account struct {
	AccountID          string              `db:"account_id"`
	UserID             string              `db:"user_id"`
	Name               string              `db:"name"`
	Kind               string              `db:"kind"`
	IncludedInNetWorth bool                `db:"included_in_net_worth"`
	Selectable         bool                `db:"selectable"`
	Hidden             bool                `db:"hidden"`
	Status             *string             `db:"status"` // Nullable
	Balance            decimal.Decimal     `db:"balance"`
	CreditLimit        decimal.NullDecimal `db:"credit_limit"`
	CurrentDebt        decimal.NullDecimal `db:"current_debt"`
	Principal          decimal.NullDecimal `db:"principal"`
	RemainingAmount    decimal.NullDecimal `db:"remaining_amount"`
	Counterparty       *string             `db:"counterparty"`
	AuditFields
}
