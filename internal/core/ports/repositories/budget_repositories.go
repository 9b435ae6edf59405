package repositories

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgetsByCategory retrieves the category-level budgets of a category.
	ListBudgetsByCategory(ctx context.Context, categoryID string) ([]domain.Budget, error)

	// ListBudgetsByLedger retrieves every budget of a ledger, category budgets included.
	ListBudgetsByLedger(ctx context.Context, ledgerID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	UpdateBudget(ctx context.Context, budget domain.Budget) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
