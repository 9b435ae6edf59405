package dto

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	LedgerID   string              `json:"ledgerID" binding:"required"`
	CategoryID *string             `json:"categoryID"` // nil for a ledger-level budget
	Period     domain.BudgetPeriod `json:"period" binding:"required,oneof=MONTHLY YEARLY"`
	Limit      decimal.Decimal     `json:"limit" binding:"gte=0"`
}

// BudgetResponse returns a budget after its window has been refreshed.
type BudgetResponse struct {
	Budget    domain.Budget   `json:"budget"`
	Remaining decimal.Decimal `json:"remaining"`
	OverLimit bool            `json:"overLimit"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		Budget:    *b,
		Remaining: b.Limit.Sub(b.Amount),
		OverLimit: b.OverLimit(),
	}
}

// CreateLedgerRequest defines the data needed to create a ledger.
type CreateLedgerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategoryRequest defines the data needed to add a category to a ledger.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required"`
	Type domain.CategoryType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
}
