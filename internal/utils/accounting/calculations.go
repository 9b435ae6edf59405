package accounting

import (
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta returns the change a (direction, amount) effect has on the tracked amount of an
// account of the given kind. This is the only place polarity is decided:
//
//	CASH/BASIC/DEBIT, LENDING   CREDIT -> +   DEBIT -> -
//	CREDIT, LOAN, BORROWING     CREDIT -> -   DEBIT -> +
func SignedDelta(kind domain.AccountKind, direction domain.Direction, amount decimal.Decimal) (decimal.Decimal, error) {
	if direction != domain.Debit && direction != domain.Credit {
		return decimal.Zero, fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, direction)
	}
	isCredit := direction == domain.Credit
	switch kind {
	case domain.KindCash, domain.KindBasic, domain.KindDebit, domain.KindLending:
		if isCredit {
			return amount, nil
		}
		return amount.Neg(), nil
	case domain.KindCredit, domain.KindLoan, domain.KindBorrowing:
		if isCredit {
			return amount.Neg(), nil
		}
		return amount, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, kind)
	}
}

// ApplyDelta applies one effect to the account in place and re-derives its status.
func ApplyDelta(acc *domain.Account, direction domain.Direction, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: effect amount cannot be negative", apperrors.ErrValidation)
	}
	delta, err := SignedDelta(acc.Kind, direction, amount)
	if err != nil {
		return err
	}
	return ApplySignedDelta(acc, delta)
}

// ApplySignedDelta moves the account's tracked amount by delta and re-derives its status.
// Credit, loan, borrowing and lending amounts never go below zero: such a delta is rejected
// and the account is left untouched. Asset balances may go negative.
func ApplySignedDelta(acc *domain.Account, delta decimal.Decimal) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	next := acc.TrackedAmount().Add(delta)
	if acc.Kind.HasStatus() && next.IsNegative() {
		return fmt.Errorf("%w: account %s would go %s below zero", apperrors.ErrValidation, acc.AccountID, next.Neg())
	}
	switch {
	case acc.Kind == domain.KindCredit:
		acc.Credit.CurrentDebt = next
	case acc.Kind.IsDebt():
		acc.Debt.RemainingAmount = next
	default:
		acc.Balance = next
	}
	acc.DeriveStatus()
	return nil
}

// AdjustCurrentDebt moves a credit account's current debt by delta outside the transaction
// polarity (installment linkage).
func AdjustCurrentDebt(acc *domain.Account, delta decimal.Decimal) error {
	if acc.Kind != domain.KindCredit || acc.Credit == nil {
		return fmt.Errorf("%w: account %s is not a credit account", apperrors.ErrValidation, acc.AccountID)
	}
	return ApplySignedDelta(acc, delta)
}
