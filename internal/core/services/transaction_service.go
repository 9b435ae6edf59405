package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// transactionService creates, edits and deletes income, expense and transfer records.
type transactionService struct {
	BaseService
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{BaseService: newBaseService(uow, options...)}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func transactionFromRequest(req dto.TransactionRequest) domain.Transaction {
	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}
	return domain.Transaction{
		Kind:          req.Kind,
		Date:          req.Date.UTC(),
		Amount:        amount,
		Note:          req.Note,
		LedgerID:      req.LedgerID,
		CategoryID:    req.CategoryID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
	}
}

func loadTransaction(ctx context.Context, store portsrepo.Store, session domain.Session, transactionID string) (*domain.Transaction, error) {
	txn, err := store.Transactions().FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != session.UserID {
		return nil, notOwned("transaction", transactionID)
	}
	return txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, session domain.Session, transactionID string) (*domain.Transaction, error) {
	var txn *domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		txn, err = loadTransaction(ctx, store, session, transactionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, session domain.Session, accountID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := newLedgerUnit(store, session, s.now()).account(ctx, accountID); err != nil {
			return err
		}
		var err error
		txns, err = store.Transactions().ListTransactionsByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) ListTransactionsByCategory(ctx context.Context, session domain.Session, categoryID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadCategory(ctx, store, session, categoryID); err != nil {
			return err
		}
		var err error
		txns, err = store.Transactions().ListTransactionsByCategory(ctx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) ListTransactionsByLedger(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadLedger(ctx, store, session, ledgerID); err != nil {
			return err
		}
		var err error
		txns, err = store.Transactions().ListTransactionsByLedger(ctx, ledgerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// CreateTransaction validates and books a new transaction in one unit.
func (s *transactionService) CreateTransaction(ctx context.Context, session domain.Session, req dto.TransactionRequest) (*domain.Transaction, error) {
	now := s.now()
	txn := transactionFromRequest(req)
	txn.TransactionID = s.newID()
	txn.UserID = session.UserID
	txn.AuditFields = domain.NewAuditFields(session.UserID, now)

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		return newLedgerUnit(store, session, now).post(ctx, txn, true)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.String("kind", string(txn.Kind)), slog.String("ledger_id", txn.LedgerID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("kind", string(txn.Kind)), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// EditTransaction reverses the stored transaction and applies the replacement in one unit.
// The identity, owner and creation stamp are kept.
func (s *transactionService) EditTransaction(ctx context.Context, session domain.Session, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	now := s.now()
	var updated domain.Transaction

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		old, err := loadTransaction(ctx, store, session, transactionID)
		if err != nil {
			return err
		}
		unit := newLedgerUnit(store, session, now)
		if err := unit.checkManual(ctx, *old); err != nil {
			return err
		}

		updated = transactionFromRequest(req)
		updated.TransactionID = old.TransactionID
		updated.UserID = old.UserID
		updated.AuditFields = old.AuditFields
		updated.Touch(session.UserID, now)
		if err := unit.validate(ctx, updated, true); err != nil {
			return err
		}

		if err := unit.replace(ctx, *old, updated); err != nil {
			return err
		}
		if err := unit.flush(ctx); err != nil {
			return err
		}
		return store.Transactions().UpdateTransaction(ctx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to edit transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction edited", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction reverses the stored transaction and removes it in one unit.
func (s *transactionService) DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error {
	now := s.now()
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		old, err := loadTransaction(ctx, store, session, transactionID)
		if err != nil {
			return err
		}
		unit := newLedgerUnit(store, session, now)
		if err := unit.checkManual(ctx, *old); err != nil {
			return err
		}
		if err := unit.apply(ctx, *old, true); err != nil {
			return err
		}
		if err := unit.flush(ctx); err != nil {
			return err
		}
		return store.Transactions().DeleteTransaction(ctx, transactionID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// requirePositive rejects zero or negative amounts where a payment must move money.
func requirePositive(amount decimal.Decimal, what string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrValidation, what)
	}
	return nil
}
