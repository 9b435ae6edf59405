package dto

import (
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRequest carries the fields of an income, expense or transfer for create and edit.
type TransactionRequest struct {
	Kind          domain.TransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Date          time.Time              `json:"date" binding:"required"`
	Amount        *decimal.Decimal       `json:"amount" binding:"omitempty,gte=0"` // nil is zero
	Note          string                 `json:"note"`
	LedgerID      string                 `json:"ledgerID" binding:"required"`
	CategoryID    *string                `json:"categoryID"`
	FromAccountID *string                `json:"fromAccountID"`
	ToAccountID   *string                `json:"toAccountID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Kind          domain.TransactionKind `json:"kind"`
	Date          time.Time              `json:"date"`
	Amount        decimal.Decimal        `json:"amount"`
	Note          string                 `json:"note"`
	LedgerID      string                 `json:"ledgerID"`
	CategoryID    *string                `json:"categoryID,omitempty"`
	FromAccountID *string                `json:"fromAccountID,omitempty"`
	ToAccountID   *string                `json:"toAccountID,omitempty"`
	PlanID        *string                `json:"planID,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          txn.Kind,
		Date:          txn.Date,
		Amount:        txn.Amount,
		Note:          txn.Note,
		LedgerID:      txn.LedgerID,
		CategoryID:    txn.CategoryID,
		FromAccountID: txn.FromAccountID,
		ToAccountID:   txn.ToAccountID,
		PlanID:        txn.PlanID,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
