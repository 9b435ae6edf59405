package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
)

// BudgetSvcFacade defines budget operations. Every read refreshes an expired window first.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudget(ctx context.Context, session domain.Session, budgetID string) (*domain.Budget, error)
	ListBudgetsByLedger(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Budget, error)
	IsOverBudget(ctx context.Context, session domain.Session, budgetID string) (bool, error)
}

// LedgerSvcFacade defines ledger and category operations.
type LedgerSvcFacade interface {
	CreateLedger(ctx context.Context, session domain.Session, req dto.CreateLedgerRequest) (*domain.Ledger, error)
	GetLedger(ctx context.Context, session domain.Session, ledgerID string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, session domain.Session) ([]domain.Ledger, error)
	CreateCategory(ctx context.Context, session domain.Session, ledgerID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Category, error)
}
