package pgsql

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
)

type transactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, kind, txn_date, amount, note, ledger_id, category_id,
	from_account_id, to_account_id, plan_id, created_at, created_by, last_updated_at, last_updated_by`

const newestFirst = ` ORDER BY txn_date DESC, created_at DESC, transaction_id DESC;`

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	m, err := queryOne[models.Transaction](ctx, r.db, "transaction", transactionID, query, transactionID)
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

func (r *transactionRepository) list(ctx context.Context, what, id, where string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + where + newestFirst
	ms, err := queryAll[models.Transaction](ctx, r.db, what, id, query, id)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return r.list(ctx, "transactions of account", accountID, `from_account_id = $1 OR to_account_id = $1`)
}

func (r *transactionRepository) ListTransactionsByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	return r.list(ctx, "transactions of category", categoryID, `category_id = $1`)
}

func (r *transactionRepository) ListTransactionsByLedger(ctx context.Context, ledgerID string) ([]domain.Transaction, error) {
	return r.list(ctx, "transactions of ledger", ledgerID, `ledger_id = $1`)
}

func (r *transactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID, m.UserID, m.Kind, m.Date, m.Amount, m.Note, m.LedgerID, m.CategoryID,
		m.FromAccountID, m.ToAccountID, m.PlanID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "transaction", m.TransactionID, "insert")
}

// UpdateTransaction rewrites every editable column. Owner, plan link and creation stamps are kept.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET kind = $2, txn_date = $3, amount = $4, note = $5, ledger_id = $6, category_id = $7,
			from_account_id = $8, to_account_id = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.TransactionID, m.Kind, m.Date, m.Amount, m.Note, m.LedgerID, m.CategoryID,
		m.FromAccountID, m.ToAccountID, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return expectRow(tag, err, "transaction", m.TransactionID, "update")
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	return expectRow(tag, err, "transaction", transactionID, "delete")
}
