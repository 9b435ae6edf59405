package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerUnit applies transaction effects inside one unit of work. Accounts are loaded once,
// mutated in memory and written back by flush; category, ledger and budget aggregates are
// written as they change.
type ledgerUnit struct {
	store    portsrepo.Store
	session  domain.Session
	now      time.Time
	accounts map[string]*domain.Account
	dirty    []string
}

func newLedgerUnit(store portsrepo.Store, session domain.Session, now time.Time) *ledgerUnit {
	return &ledgerUnit{
		store:    store,
		session:  session,
		now:      now,
		accounts: make(map[string]*domain.Account),
	}
}

func notOwned(entity, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
}

func loadLedger(ctx context.Context, store portsrepo.Store, session domain.Session, ledgerID string) (*domain.Ledger, error) {
	ledger, err := store.Ledgers().FindLedgerByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if ledger.UserID != session.UserID {
		return nil, notOwned("ledger", ledgerID)
	}
	return ledger, nil
}

func loadCategory(ctx context.Context, store portsrepo.Store, session domain.Session, categoryID string) (*domain.Category, error) {
	category, err := store.Categories().FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != session.UserID {
		return nil, notOwned("category", categoryID)
	}
	return category, nil
}

// account returns the unit's working copy of an account owned by the session user.
func (u *ledgerUnit) account(ctx context.Context, accountID string) (*domain.Account, error) {
	if acc, ok := u.accounts[accountID]; ok {
		return acc, nil
	}
	acc, err := u.store.Accounts().FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.UserID != u.session.UserID {
		return nil, notOwned("account", accountID)
	}
	u.accounts[accountID] = acc
	return acc, nil
}

func (u *ledgerUnit) markDirty(accountID string) {
	for _, id := range u.dirty {
		if id == accountID {
			return
		}
	}
	u.dirty = append(u.dirty, accountID)
}

// validate checks a transaction against the entities it references. Manual transactions are
// the ones users create, edit or delete directly: their income/expense account must be
// selectable, and they may not touch loan, borrowing or lending accounts, which only move
// through their repayment operations.
func (u *ledgerUnit) validate(ctx context.Context, txn domain.Transaction, manual bool) error {
	if err := txn.Validate(); err != nil {
		return err
	}
	if _, err := loadLedger(ctx, u.store, u.session, txn.LedgerID); err != nil {
		return err
	}
	if txn.CategoryID != nil {
		category, err := loadCategory(ctx, u.store, u.session, *txn.CategoryID)
		if err != nil {
			return err
		}
		if category.LedgerID != txn.LedgerID {
			return fmt.Errorf("%w: category %s does not belong to ledger %s", apperrors.ErrValidation, category.CategoryID, txn.LedgerID)
		}
		if !category.Type.Accepts(txn.Kind) {
			return fmt.Errorf("%w: %s category %s cannot hold a %s transaction", apperrors.ErrValidation, category.Type, category.CategoryID, txn.Kind)
		}
	}
	for _, id := range txn.AccountIDs() {
		acc, err := u.account(ctx, id)
		if err != nil {
			return err
		}
		if !manual {
			continue
		}
		if acc.Kind.IsDebt() {
			return fmt.Errorf("%w: %s account %s only changes through its repayment operations", apperrors.ErrValidation, acc.Kind, id)
		}
		if txn.Kind != domain.Transfer && !acc.Selectable {
			return fmt.Errorf("%w: account %s is not selectable", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// checkManual rejects direct edits of transactions owned by a plan or a debt account.
func (u *ledgerUnit) checkManual(ctx context.Context, txn domain.Transaction) error {
	if txn.PlanID != nil {
		return fmt.Errorf("%w: transaction %s belongs to plan %s", apperrors.ErrValidation, txn.TransactionID, *txn.PlanID)
	}
	for _, id := range txn.AccountIDs() {
		acc, err := u.account(ctx, id)
		if err != nil {
			return err
		}
		if acc.Kind.IsDebt() {
			return fmt.Errorf("%w: transaction %s settles %s account %s", apperrors.ErrValidation, txn.TransactionID, acc.Kind, id)
		}
	}
	return nil
}

// apply books txn onto its accounts and aggregates; reverse books the exact inverse.
func (u *ledgerUnit) apply(ctx context.Context, txn domain.Transaction, reverse bool) error {
	effects := Effects(txn)
	if reverse {
		effects = InverseEffects(txn)
	}
	if err := u.applyEffects(ctx, effects); err != nil {
		return err
	}
	return u.applyAggregates(ctx, txn, reverse)
}

// replace swaps old for updated. Account effects are netted first, so only the resulting
// amounts have to respect the zero floor of credit and debt accounts.
func (u *ledgerUnit) replace(ctx context.Context, old, updated domain.Transaction) error {
	if err := u.applyEffects(ctx, append(InverseEffects(old), Effects(updated)...)); err != nil {
		return err
	}
	if err := u.applyAggregates(ctx, old, true); err != nil {
		return err
	}
	return u.applyAggregates(ctx, updated, false)
}

// applyEffects sums the effects per account and moves each account once.
func (u *ledgerUnit) applyEffects(ctx context.Context, effects []Effect) error {
	net := make(map[string]decimal.Decimal, len(effects))
	order := make([]string, 0, len(effects))
	for _, e := range effects {
		if e.Amount.IsNegative() {
			return fmt.Errorf("%w: effect amount cannot be negative", apperrors.ErrValidation)
		}
		acc, err := u.account(ctx, e.AccountID)
		if err != nil {
			return err
		}
		delta, err := accounting.SignedDelta(acc.Kind, e.Direction, e.Amount)
		if err != nil {
			return err
		}
		if _, ok := net[e.AccountID]; !ok {
			order = append(order, e.AccountID)
		}
		net[e.AccountID] = net[e.AccountID].Add(delta)
	}
	for _, id := range order {
		if err := accounting.ApplySignedDelta(u.accounts[id], net[id]); err != nil {
			return err
		}
		u.markDirty(id)
	}
	return nil
}

func (u *ledgerUnit) applyAggregates(ctx context.Context, txn domain.Transaction, reverse bool) error {
	if txn.CategoryID == nil {
		return nil
	}
	delta := aggregateDelta(txn, reverse)

	category, err := loadCategory(ctx, u.store, u.session, *txn.CategoryID)
	if err != nil {
		return err
	}
	category.Total = category.Total.Add(delta)
	category.Touch(u.session.UserID, u.now)
	if err := u.store.Categories().UpdateCategory(ctx, *category); err != nil {
		return err
	}

	ledger, err := loadLedger(ctx, u.store, u.session, txn.LedgerID)
	if err != nil {
		return err
	}
	if txn.Kind == domain.Income {
		ledger.TotalIncome = ledger.TotalIncome.Add(delta)
	} else {
		ledger.TotalExpense = ledger.TotalExpense.Add(delta)
	}
	ledger.Touch(u.session.UserID, u.now)
	if err := u.store.Ledgers().UpdateLedger(ctx, *ledger); err != nil {
		return err
	}

	if txn.Kind == domain.Expense {
		return u.applyBudgets(ctx, txn, delta)
	}
	return nil
}

// applyBudgets refreshes the category budgets and the ledger-level budgets an expense falls
// under, then counts the expense in those whose window contains its date.
func (u *ledgerUnit) applyBudgets(ctx context.Context, txn domain.Transaction, delta decimal.Decimal) error {
	budgets, err := u.store.Budgets().ListBudgetsByCategory(ctx, *txn.CategoryID)
	if err != nil {
		return err
	}
	byLedger, err := u.store.Budgets().ListBudgetsByLedger(ctx, txn.LedgerID)
	if err != nil {
		return err
	}
	for _, b := range byLedger {
		if b.CategoryID == nil {
			budgets = append(budgets, b)
		}
	}

	for i := range budgets {
		b := &budgets[i]
		changed := b.RefreshIfExpired(u.now)
		if b.IsActive(txn.Date) {
			b.Amount = b.Amount.Add(delta)
			if b.Amount.IsNegative() {
				b.Amount = decimal.Zero
			}
			changed = true
		}
		if !changed {
			continue
		}
		b.Touch(u.session.UserID, u.now)
		if err := u.store.Budgets().UpdateBudget(ctx, *b); err != nil {
			return err
		}
	}
	return nil
}

// adjustCurrentDebt moves a credit account's current debt outside the transaction polarity.
func (u *ledgerUnit) adjustCurrentDebt(ctx context.Context, accountID string, delta decimal.Decimal) error {
	acc, err := u.account(ctx, accountID)
	if err != nil {
		return err
	}
	if err := accounting.AdjustCurrentDebt(acc, delta); err != nil {
		return err
	}
	u.markDirty(accountID)
	return nil
}

// flush writes every account changed by the unit.
func (u *ledgerUnit) flush(ctx context.Context) error {
	for _, id := range u.dirty {
		acc := u.accounts[id]
		acc.Touch(u.session.UserID, u.now)
		if err := u.store.Accounts().UpdateAccount(ctx, *acc); err != nil {
			return err
		}
	}
	u.dirty = u.dirty[:0]
	return nil
}

// post validates, applies and records a new transaction.
func (u *ledgerUnit) post(ctx context.Context, txn domain.Transaction, manual bool) error {
	if err := u.validate(ctx, txn, manual); err != nil {
		return err
	}
	if err := u.apply(ctx, txn, false); err != nil {
		return err
	}
	if err := u.flush(ctx); err != nil {
		return err
	}
	return u.store.Transactions().InsertTransaction(ctx, txn)
}
