package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

func (u *unit) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := u.data.transactions[transactionID]
	if !ok {
		return nil, notFound("transaction", transactionID)
	}
	return &txn, nil
}

func (u *unit) listTransactions(match func(domain.Transaction) bool) []domain.Transaction {
	res := make([]domain.Transaction, 0)
	for _, txn := range u.data.transactions {
		if match(txn) {
			res = append(res, txn)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.After(res[j].Date)
		}
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].TransactionID > res[j].TransactionID
	})
	return res
}

func (u *unit) ListTransactionsByAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	return u.listTransactions(func(t domain.Transaction) bool {
		return (t.FromAccountID != nil && *t.FromAccountID == accountID) ||
			(t.ToAccountID != nil && *t.ToAccountID == accountID)
	}), nil
}

func (u *unit) ListTransactionsByCategory(_ context.Context, categoryID string) ([]domain.Transaction, error) {
	return u.listTransactions(func(t domain.Transaction) bool {
		return t.CategoryID != nil && *t.CategoryID == categoryID
	}), nil
}

func (u *unit) ListTransactionsByLedger(_ context.Context, ledgerID string) ([]domain.Transaction, error) {
	return u.listTransactions(func(t domain.Transaction) bool {
		return t.LedgerID == ledgerID
	}), nil
}

func (u *unit) InsertTransaction(_ context.Context, txn domain.Transaction) error {
	if err := u.store.fail("InsertTransaction"); err != nil {
		return err
	}
	if _, ok := u.data.transactions[txn.TransactionID]; ok {
		return duplicate("transaction", txn.TransactionID)
	}
	u.data.transactions[txn.TransactionID] = txn
	return nil
}

func (u *unit) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	if err := u.store.fail("UpdateTransaction"); err != nil {
		return err
	}
	if _, ok := u.data.transactions[txn.TransactionID]; !ok {
		return notFound("transaction", txn.TransactionID)
	}
	u.data.transactions[txn.TransactionID] = txn
	return nil
}

func (u *unit) DeleteTransaction(_ context.Context, transactionID string) error {
	if err := u.store.fail("DeleteTransaction"); err != nil {
		return err
	}
	if _, ok := u.data.transactions[transactionID]; !ok {
		return notFound("transaction", transactionID)
	}
	delete(u.data.transactions, transactionID)
	return nil
}
