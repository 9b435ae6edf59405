package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs each unit inside one database transaction.
type PgxUnitOfWork struct {
	pool *pgxpool.Pool
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{pool: pool}
}

// Begin starts a new database transaction
func (u *PgxUnitOfWork) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (u *PgxUnitOfWork) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "transaction", "commit", "commit")
	}
	return nil
}

// Rollback rolls back a transaction. Rolling back a finished transaction is a no-op.
func (u *PgxUnitOfWork) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewPersistenceError("failed to rollback transaction", err)
	}
	return nil
}

// Do runs fn inside a transaction and commits only when fn succeeds.
func (u *PgxUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, store portsrepo.Store) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// ctx may already be cancelled.
		if rbErr := u.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			slog.ErrorContext(ctx, "Rollback failed", "error", rbErr)
		}
	}()

	if err := fn(ctx, newTxStore(tx)); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// txStore binds every repository to the same pgx.Tx.
type txStore struct {
	accounts     *accountRepository
	transactions *transactionRepository
	loanPlans    *amortizationPlanRepository
	installments *installmentPlanRepository
	budgets      *budgetRepository
	categories   *categoryRepository
	ledgers      *ledgerRepository
}

var _ portsrepo.Store = (*txStore)(nil)

func newTxStore(db DBTX) *txStore {
	base := BaseRepository{db: db}
	return &txStore{
		accounts:     &accountRepository{base},
		transactions: &transactionRepository{base},
		loanPlans:    &amortizationPlanRepository{base},
		installments: &installmentPlanRepository{base},
		budgets:      &budgetRepository{base},
		categories:   &categoryRepository{base},
		ledgers:      &ledgerRepository{base},
	}
}

func (s *txStore) Accounts() portsrepo.AccountRepositoryFacade {
	return s.accounts
}

func (s *txStore) Transactions() portsrepo.TransactionRepositoryFacade {
	return s.transactions
}

func (s *txStore) Budgets() portsrepo.BudgetRepositoryFacade {
	return s.budgets
}

func (s *txStore) Categories() portsrepo.CategoryRepositoryFacade {
	return s.categories
}

func (s *txStore) Ledgers() portsrepo.LedgerRepositoryFacade {
	return s.ledgers
}

func (s *txStore) InstallmentPlans() portsrepo.InstallmentPlanRepositoryFacade {
	return s.installments
}

func (s *txStore) AmortizationPlans() portsrepo.AmortizationPlanRepositoryFacade {
	return s.loanPlans
}
