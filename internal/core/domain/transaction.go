package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind tags the transaction variant.
type TransactionKind string

const (
	Income   TransactionKind = "INCOME"
	Expense  TransactionKind = "EXPENSE"
	Transfer TransactionKind = "TRANSFER"
)

// Direction is the side of an account a transaction effect lands on.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// Opposite returns the reversing direction.
func (d Direction) Opposite() Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// Transaction is an income, expense or transfer.
// Income moves money into ToAccountID, Expense out of FromAccountID, Transfer between the two
// (either side may be absent, not both).
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Kind          TransactionKind `json:"kind"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"` // never negative
	Note          string          `json:"note"`
	LedgerID      string          `json:"ledgerID"`
	CategoryID    *string         `json:"categoryID,omitempty"`
	FromAccountID *string         `json:"fromAccountID,omitempty"`
	ToAccountID   *string         `json:"toAccountID,omitempty"`
	PlanID        *string         `json:"planID,omitempty"` // set when generated by a repayment plan
	AuditFields
}

// Validate checks the shape of the variant. Referenced entities are checked by the service.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction amount cannot be negative", apperrors.ErrValidation)
	}
	if t.LedgerID == "" {
		return fmt.Errorf("%w: ledger is required", apperrors.ErrValidation)
	}
	switch t.Kind {
	case Income:
		if t.CategoryID == nil || t.ToAccountID == nil {
			return fmt.Errorf("%w: income requires a category and a destination account", apperrors.ErrValidation)
		}
		if t.FromAccountID != nil {
			return fmt.Errorf("%w: income cannot have a source account", apperrors.ErrValidation)
		}
	case Expense:
		if t.CategoryID == nil || t.FromAccountID == nil {
			return fmt.Errorf("%w: expense requires a category and a source account", apperrors.ErrValidation)
		}
		if t.ToAccountID != nil {
			return fmt.Errorf("%w: expense cannot have a destination account", apperrors.ErrValidation)
		}
	case Transfer:
		if t.CategoryID != nil {
			return fmt.Errorf("%w: transfer cannot have a category", apperrors.ErrValidation)
		}
		if t.FromAccountID == nil && t.ToAccountID == nil {
			return fmt.Errorf("%w: transfer requires at least one account", apperrors.ErrValidation)
		}
		if t.FromAccountID != nil && t.ToAccountID != nil && *t.FromAccountID == *t.ToAccountID {
			return fmt.Errorf("%w: transfer accounts must differ", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, t.Kind)
	}
	return nil
}

// AccountIDs lists the accounts the transaction touches, source first.
func (t Transaction) AccountIDs() []string {
	ids := make([]string, 0, 2)
	if t.FromAccountID != nil {
		ids = append(ids, *t.FromAccountID)
	}
	if t.ToAccountID != nil {
		ids = append(ids, *t.ToAccountID)
	}
	return ids
}
