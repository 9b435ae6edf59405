package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, session domain.Session, transactionID string) (*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, session domain.Session, accountID string) ([]domain.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, session domain.Session, categoryID string) ([]domain.Transaction, error)
	ListTransactionsByLedger(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the mutating operations. Each one is applied as a single unit:
// accounts, category and ledger aggregates, budgets and the record itself change together.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, session domain.Session, req dto.TransactionRequest) (*domain.Transaction, error)

	// EditTransaction reverses the stored effect and applies the new one.
	EditTransaction(ctx context.Context, session domain.Session, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
