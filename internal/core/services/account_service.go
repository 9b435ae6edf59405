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
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountService manages non-loan accounts and borrowing/lending settlement.
type accountService struct {
	BaseService
}

// NewAccountService creates a new AccountService.
func NewAccountService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{BaseService: newBaseService(uow, options...)}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (s *accountService) GetAccountByID(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error) {
	var acc *domain.Account
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		acc, err = newLedgerUnit(store, session, s.now()).account(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *accountService) ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		accounts, err = store.Accounts().ListAccountsByUser(ctx, session.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// accountFromRequest builds the variant payload matching req.Kind and rejects amounts that
// belong to another kind.
func accountFromRequest(req dto.CreateAccountRequest) (domain.Account, error) {
	acc := domain.Account{
		Name:               req.Name,
		Kind:               req.Kind,
		IncludedInNetWorth: boolOr(req.IncludedInNetWorth, true),
		Selectable:         boolOr(req.Selectable, true),
		Hidden:             req.Hidden,
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}
	creditLimit, ok1 := accounting.NonNegative(req.CreditLimit)
	currentDebt, ok2 := accounting.NonNegative(req.CurrentDebt)
	principal, ok3 := accounting.NonNegative(req.Principal)
	if !(ok1 && ok2 && ok3) {
		return acc, fmt.Errorf("%w: credit limit, current debt and principal cannot be negative", apperrors.ErrValidation)
	}

	switch {
	case req.Kind.IsAsset():
		if req.CreditLimit != nil || req.CurrentDebt != nil || req.Principal != nil {
			return acc, fmt.Errorf("%w: %s account only carries a balance", apperrors.ErrValidation, req.Kind)
		}
		acc.Balance = balance
	case req.Kind == domain.KindCredit:
		if req.Balance != nil || req.Principal != nil {
			return acc, fmt.Errorf("%w: credit account only carries a limit and current debt", apperrors.ErrValidation)
		}
		acc.Credit = &domain.CreditState{CreditLimit: creditLimit, CurrentDebt: currentDebt}
	case req.Kind == domain.KindBorrowing || req.Kind == domain.KindLending:
		if req.Balance != nil || req.CreditLimit != nil || req.CurrentDebt != nil {
			return acc, fmt.Errorf("%w: %s account only carries a principal", apperrors.ErrValidation, req.Kind)
		}
		acc.Debt = &domain.DebtState{Principal: principal, RemainingAmount: principal, Counterparty: req.Counterparty}
	default:
		return acc, fmt.Errorf("%w: %s accounts cannot be created here", apperrors.ErrValidation, req.Kind)
	}
	acc.DeriveStatus()
	return acc, acc.Validate()
}

// CreateAccount persists a new cash, bank, credit, borrowing or lending account.
func (s *accountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	acc, err := accountFromRequest(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	acc.AccountID = s.newID()
	acc.UserID = session.UserID
	acc.AuditFields = domain.NewAuditFields(session.UserID, now)

	err = s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		return store.Accounts().SaveAccount(ctx, acc)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("kind", string(acc.Kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", acc.AccountID), slog.String("kind", string(acc.Kind)))
	return &acc, nil
}

// RepayDebt moves money between an asset account and a borrowing or lending account.
// Borrowings are paid from the asset; lendings are received into it.
func (s *accountService) RepayDebt(ctx context.Context, session domain.Session, debtAccountID string, req dto.RepayDebtRequest) (*domain.Transaction, error) {
	now := s.now()
	amount, _ := accounting.NonNegative(req.Amount)
	if err := requirePositive(amount, "repayment amount"); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: s.newID(),
		UserID:        session.UserID,
		Kind:          domain.Transfer,
		Date:          now,
		Amount:        amount,
		Note:          req.Note,
		LedgerID:      req.LedgerID,
		AuditFields:   domain.NewAuditFields(session.UserID, now),
	}
	if req.Date != nil {
		txn.Date = req.Date.UTC()
	}

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		unit := newLedgerUnit(store, session, now)
		debt, err := unit.account(ctx, debtAccountID)
		if err != nil {
			return err
		}
		counter, err := unit.account(ctx, req.AccountID)
		if err != nil {
			return err
		}
		if !counter.Kind.IsAsset() {
			return fmt.Errorf("%w: account %s must be a cash or bank account", apperrors.ErrValidation, counter.AccountID)
		}

		switch debt.Kind {
		case domain.KindBorrowing:
			txn.FromAccountID, txn.ToAccountID = &counter.AccountID, &debt.AccountID
		case domain.KindLending:
			txn.FromAccountID, txn.ToAccountID = &debt.AccountID, &counter.AccountID
		default:
			return fmt.Errorf("%w: account %s is not a borrowing or lending account", apperrors.ErrValidation, debtAccountID)
		}
		if amount.GreaterThan(debt.Debt.RemainingAmount) {
			return fmt.Errorf("%w: repayment %s exceeds remaining %s", apperrors.ErrValidation, amount, debt.Debt.RemainingAmount)
		}
		return unit.post(ctx, txn, false)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to repay debt", slog.String("account_id", debtAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt repaid", slog.String("account_id", debtAccountID), slog.String("amount", amount.String()))
	return &txn, nil
}
