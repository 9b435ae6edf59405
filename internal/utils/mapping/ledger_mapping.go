package mapping

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger
func ToModelLedger(d domain.Ledger) models.Ledger {
	return models.Ledger{
		LedgerID:     d.LedgerID,
		UserID:       d.UserID,
		Name:         d.Name,
		TotalIncome:  d.TotalIncome,
		TotalExpense: d.TotalExpense,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:     m.LedgerID,
		UserID:       m.UserID,
		Name:         m.Name,
		TotalIncome:  m.TotalIncome,
		TotalExpense: m.TotalExpense,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerSlice converts a slice of model Ledgers to a slice of domain Ledgers
func ToDomainLedgerSlice(ms []models.Ledger) []domain.Ledger {
	return toSlice(ms, ToDomainLedger)
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		LedgerID:    d.LedgerID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        string(d.Type),
		Total:       d.Total,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		LedgerID:    m.LedgerID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        domain.CategoryType(m.Type),
		Total:       m.Total,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	return toSlice(ms, ToDomainCategory)
}

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		LedgerID:    d.LedgerID,
		CategoryID:  d.CategoryID,
		Period:      string(d.Period),
		Limit:       d.Limit,
		Amount:      d.Amount,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		LedgerID:    m.LedgerID,
		CategoryID:  m.CategoryID,
		Period:      domain.BudgetPeriod(m.Period),
		Limit:       m.Limit,
		Amount:      m.Amount,
		StartDate:   m.StartDate.UTC(),
		EndDate:     m.EndDate.UTC(),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to a slice of domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	return toSlice(ms, ToDomainBudget)
}
