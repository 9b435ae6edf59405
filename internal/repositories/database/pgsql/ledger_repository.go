package pgsql

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
)

const auditColumns = `created_at, created_by, last_updated_at, last_updated_by`

type ledgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

const ledgerColumns = `ledger_id, user_id, name, total_income, total_expense, ` + auditColumns

func (r *ledgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE ledger_id = $1 FOR UPDATE;`
	m, err := queryOne[models.Ledger](ctx, r.db, "ledger", ledgerID, query, ledgerID)
	if err != nil {
		return nil, err
	}
	ledger := mapping.ToDomainLedger(*m)
	return &ledger, nil
}

func (r *ledgerRepository) ListLedgersByUser(ctx context.Context, userID string) ([]domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE user_id = $1 ORDER BY name, ledger_id;`
	ms, err := queryAll[models.Ledger](ctx, r.db, "ledgers of user", userID, query, userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLedgerSlice(ms), nil
}

func (r *ledgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `INSERT INTO ledgers (` + ledgerColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.db.Exec(ctx, query,
		m.LedgerID, m.UserID, m.Name, m.TotalIncome, m.TotalExpense,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "ledger", m.LedgerID, "save")
}

func (r *ledgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `
		UPDATE ledgers
		SET name = $2, total_income = $3, total_expense = $4, last_updated_at = $5, last_updated_by = $6
		WHERE ledger_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.LedgerID, m.Name, m.TotalIncome, m.TotalExpense, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectRow(tag, err, "ledger", m.LedgerID, "update")
}

type categoryRepository struct {
	BaseRepository
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

const categoryColumns = `category_id, ledger_id, user_id, name, category_type, total, ` + auditColumns

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1 FOR UPDATE;`
	m, err := queryOne[models.Category](ctx, r.db, "category", categoryID, query, categoryID)
	if err != nil {
		return nil, err
	}
	category := mapping.ToDomainCategory(*m)
	return &category, nil
}

func (r *categoryRepository) ListCategoriesByLedger(ctx context.Context, ledgerID string) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ledger_id = $1 ORDER BY name, category_id;`
	ms, err := queryAll[models.Category](ctx, r.db, "categories of ledger", ledgerID, query, ledgerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.db.Exec(ctx, query,
		m.CategoryID, m.LedgerID, m.UserID, m.Name, m.Type, m.Total,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "category", m.CategoryID, "save")
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, total = $3, last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.CategoryID, m.Name, m.Total, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectRow(tag, err, "category", m.CategoryID, "update")
}

type budgetRepository struct {
	BaseRepository
}

var _ portsrepo.BudgetRepositoryFacade = (*budgetRepository)(nil)

const budgetColumns = `budget_id, user_id, ledger_id, category_id, period, budget_limit, amount, start_date, end_date, ` + auditColumns

func (r *budgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 FOR UPDATE;`
	m, err := queryOne[models.Budget](ctx, r.db, "budget", budgetID, query, budgetID)
	if err != nil {
		return nil, err
	}
	budget := mapping.ToDomainBudget(*m)
	return &budget, nil
}

// The list queries lock too: the caller may refresh and rewrite any budget it reads.
func (r *budgetRepository) list(ctx context.Context, what, id, where string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE ` + where + ` ORDER BY budget_id FOR UPDATE;`
	ms, err := queryAll[models.Budget](ctx, r.db, what, id, query, id)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBudgetSlice(ms), nil
}

func (r *budgetRepository) ListBudgetsByCategory(ctx context.Context, categoryID string) ([]domain.Budget, error) {
	return r.list(ctx, "budgets of category", categoryID, `category_id = $1`)
}

func (r *budgetRepository) ListBudgetsByLedger(ctx context.Context, ledgerID string) ([]domain.Budget, error) {
	return r.list(ctx, "budgets of ledger", ledgerID, `ledger_id = $1`)
}

func (r *budgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `INSERT INTO budgets (` + budgetColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.db.Exec(ctx, query,
		m.BudgetID, m.UserID, m.LedgerID, m.CategoryID, m.Period, m.Limit, m.Amount, m.StartDate, m.EndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "budget", m.BudgetID, "save")
}

// UpdateBudget persists the spent amount and the current window.
func (r *budgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET budget_limit = $2, amount = $3, start_date = $4, end_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE budget_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.BudgetID, m.Limit, m.Amount, m.StartDate, m.EndDate, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectRow(tag, err, "budget", m.BudgetID, "update")
}
