package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by the session user.
	GetAccountByID(ctx context.Context, session domain.Session, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the session user.
	ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new non-loan account.
	CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error)

	// RepayDebt settles part of a borrowing or lending account and returns the recorded transfer.
	RepayDebt(ctx context.Context, session domain.Session, debtAccountID string, req dto.RepayDebtRequest) (*domain.Transaction, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
