package repositories

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for ledger categories.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategoriesByLedger(ctx context.Context, ledgerID string) ([]domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// LedgerRepositoryFacade defines persistence operations for ledgers.
type LedgerRepositoryFacade interface {
	FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error)
	ListLedgersByUser(ctx context.Context, userID string) ([]domain.Ledger, error)
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	UpdateLedger(ctx context.Context, ledger domain.Ledger) error
}
