package services

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Effect is one directional balance change a transaction makes on one account.
type Effect struct {
	AccountID string
	Direction domain.Direction
	Amount    decimal.Decimal
}

// Effects lists the balance changes applying txn makes:
//
//	INCOME    credit the destination
//	EXPENSE   debit the source
//	TRANSFER  debit the source, credit the destination
func Effects(txn domain.Transaction) []Effect {
	effects := make([]Effect, 0, 2)
	if txn.FromAccountID != nil && txn.Kind != domain.Income {
		effects = append(effects, Effect{AccountID: *txn.FromAccountID, Direction: domain.Debit, Amount: txn.Amount})
	}
	if txn.ToAccountID != nil && txn.Kind != domain.Expense {
		effects = append(effects, Effect{AccountID: *txn.ToAccountID, Direction: domain.Credit, Amount: txn.Amount})
	}
	return effects
}

// InverseEffects lists the balance changes that exactly undo Effects(txn), in reverse order.
// Edit and delete both rely on it.
func InverseEffects(txn domain.Transaction) []Effect {
	forward := Effects(txn)
	inverse := make([]Effect, len(forward))
	for i, e := range forward {
		inverse[len(forward)-1-i] = Effect{AccountID: e.AccountID, Direction: e.Direction.Opposite(), Amount: e.Amount}
	}
	return inverse
}

// aggregateDelta is the signed change txn makes on its category total and ledger totals.
func aggregateDelta(txn domain.Transaction, reverse bool) decimal.Decimal {
	if reverse {
		return txn.Amount.Neg()
	}
	return txn.Amount
}
