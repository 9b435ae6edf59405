package repositories

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions where the account is either side, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByCategory retrieves transactions booked on a category, newest first.
	ListTransactionsByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error)

	// ListTransactionsByLedger retrieves transactions booked on a ledger, newest first.
	ListTransactionsByLedger(ctx context.Context, ledgerID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	InsertTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
