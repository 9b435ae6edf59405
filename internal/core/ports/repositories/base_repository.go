package repositories

import (
	"context"
)

// Store exposes every repository bound to a single unit of work.
// Reads made through a Store observe the writes already made through it.
type Store interface {
	Accounts() AccountRepositoryFacade
	Transactions() TransactionRepositoryFacade
	AmortizationPlans() AmortizationPlanRepositoryFacade
	InstallmentPlans() InstallmentPlanRepositoryFacade
	Budgets() BudgetRepositoryFacade
	Categories() CategoryRepositoryFacade
	Ledgers() LedgerRepositoryFacade
}

// UnitOfWork runs a function against a Store whose writes commit together or not at all.
// A non-nil error from fn, or a failed commit, rolls back every write made through the Store.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
