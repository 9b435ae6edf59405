package domain

import (
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountKind tags the account variant. Each kind carries its own payload and polarity.
type AccountKind string

const (
	KindCash      AccountKind = "CASH"
	KindBasic     AccountKind = "BASIC"
	KindDebit     AccountKind = "DEBIT"
	KindCredit    AccountKind = "CREDIT"
	KindLoan      AccountKind = "LOAN"
	KindBorrowing AccountKind = "BORROWING" // money the user owes someone
	KindLending   AccountKind = "LENDING"   // money someone owes the user
)

// IsAsset reports whether the kind holds a plain balance.
func (k AccountKind) IsAsset() bool {
	return k == KindCash || k == KindBasic || k == KindDebit
}

// IsDebt reports whether the kind tracks a remaining amount.
func (k AccountKind) IsDebt() bool {
	return k == KindLoan || k == KindBorrowing || k == KindLending
}

// HasStatus reports whether the kind carries an Active/Ended status.
func (k AccountKind) HasStatus() bool {
	return k == KindCredit || k.IsDebt()
}

// Valid reports whether k is a known kind.
func (k AccountKind) Valid() bool {
	return k.IsAsset() || k == KindCredit || k.IsDebt()
}

// AccountStatus is derived from the tracked amount of liability-like and virtual accounts.
type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusEnded  AccountStatus = "ENDED"
)

// CreditState is the payload of a CREDIT account.
type CreditState struct {
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CurrentDebt decimal.Decimal `json:"currentDebt"`
}

// DebtState is the payload of LOAN, BORROWING and LENDING accounts.
type DebtState struct {
	Principal       decimal.Decimal `json:"principal"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Counterparty    string          `json:"counterparty"`
}

// Account represents a financial account within the core domain.
// Balance is meaningful for asset kinds only; Credit and Debt are set for their kinds only.
type Account struct {
	AccountID          string          `json:"accountID"`
	UserID             string          `json:"userID"` // owner
	Name               string          `json:"name"`
	Kind               AccountKind     `json:"kind"`
	IncludedInNetWorth bool            `json:"includedInNetWorth"`
	Selectable         bool            `json:"selectable"`
	Hidden             bool            `json:"hidden"`
	Status             AccountStatus   `json:"status,omitempty"`
	Balance            decimal.Decimal `json:"balance"`
	Credit             *CreditState    `json:"credit,omitempty"`
	Debt               *DebtState      `json:"debt,omitempty"`
	AuditFields
}

// Validate checks that the payload matches the kind.
func (a Account) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, a.Kind)
	}
	switch {
	case a.Kind == KindCredit && (a.Credit == nil || a.Debt != nil):
		return fmt.Errorf("%w: credit account %s must carry credit state only", apperrors.ErrValidation, a.AccountID)
	case a.Kind.IsDebt() && (a.Debt == nil || a.Credit != nil):
		return fmt.Errorf("%w: %s account %s must carry debt state only", apperrors.ErrValidation, a.Kind, a.AccountID)
	case a.Kind.IsAsset() && (a.Debt != nil || a.Credit != nil):
		return fmt.Errorf("%w: asset account %s cannot carry credit or debt state", apperrors.ErrValidation, a.AccountID)
	}
	return nil
}

// TrackedAmount returns the amount the account's polarity acts on.
func (a Account) TrackedAmount() decimal.Decimal {
	switch {
	case a.Kind == KindCredit && a.Credit != nil:
		return a.Credit.CurrentDebt
	case a.Kind.IsDebt() && a.Debt != nil:
		return a.Debt.RemainingAmount
	default:
		return a.Balance
	}
}

// DeriveStatus re-derives Status from the tracked amount. An amount at or below zero is
// clamped to exactly zero and the account becomes Ended. Asset kinds are left untouched.
func (a *Account) DeriveStatus() {
	if !a.Kind.HasStatus() {
		return
	}
	var amount *decimal.Decimal
	if a.Kind == KindCredit {
		amount = &a.Credit.CurrentDebt
	} else {
		amount = &a.Debt.RemainingAmount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		*amount = decimal.Zero
		a.Status = StatusEnded
		return
	}
	a.Status = StatusActive
}

// Clone returns a deep copy so in-flight mutations never leak into a caller's value.
func (a Account) Clone() Account {
	c := a
	if a.Credit != nil {
		cs := *a.Credit
		c.Credit = &cs
	}
	if a.Debt != nil {
		ds := *a.Debt
		c.Debt = &ds
	}
	return c
}
