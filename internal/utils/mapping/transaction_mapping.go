package mapping

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Kind:          string(d.Kind),
		Date:          d.Date,
		Amount:        d.Amount,
		Note:          d.Note,
		LedgerID:      d.LedgerID,
		CategoryID:    d.CategoryID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		PlanID:        d.PlanID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Kind:          domain.TransactionKind(m.Kind),
		Date:          m.Date.UTC(),
		Amount:        m.Amount,
		Note:          m.Note,
		LedgerID:      m.LedgerID,
		CategoryID:    m.CategoryID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		PlanID:        m.PlanID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return toSlice(ms, ToDomainTransaction)
}
