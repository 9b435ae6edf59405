package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

func (u *unit) FindBudgetByID(_ context.Context, budgetID string) (*domain.Budget, error) {
	b, ok := u.data.budgets[budgetID]
	if !ok {
		return nil, notFound("budget", budgetID)
	}
	return &b, nil
}

func (u *unit) listBudgets(match func(domain.Budget) bool) []domain.Budget {
	res := make([]domain.Budget, 0)
	for _, b := range u.data.budgets {
		if match(b) {
			res = append(res, b)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].BudgetID < res[j].BudgetID })
	return res
}

func (u *unit) ListBudgetsByCategory(_ context.Context, categoryID string) ([]domain.Budget, error) {
	return u.listBudgets(func(b domain.Budget) bool {
		return b.CategoryID != nil && *b.CategoryID == categoryID
	}), nil
}

func (u *unit) ListBudgetsByLedger(_ context.Context, ledgerID string) ([]domain.Budget, error) {
	return u.listBudgets(func(b domain.Budget) bool {
		return b.LedgerID == ledgerID
	}), nil
}

func (u *unit) SaveBudget(_ context.Context, budget domain.Budget) error {
	if err := u.store.fail("SaveBudget"); err != nil {
		return err
	}
	if _, ok := u.data.budgets[budget.BudgetID]; ok {
		return duplicate("budget", budget.BudgetID)
	}
	u.data.budgets[budget.BudgetID] = budget
	return nil
}

func (u *unit) UpdateBudget(_ context.Context, budget domain.Budget) error {
	if err := u.store.fail("UpdateBudget"); err != nil {
		return err
	}
	if _, ok := u.data.budgets[budget.BudgetID]; !ok {
		return notFound("budget", budget.BudgetID)
	}
	u.data.budgets[budget.BudgetID] = budget
	return nil
}

func (u *unit) FindCategoryByID(_ context.Context, categoryID string) (*domain.Category, error) {
	c, ok := u.data.categories[categoryID]
	if !ok {
		return nil, notFound("category", categoryID)
	}
	return &c, nil
}

func (u *unit) ListCategoriesByLedger(_ context.Context, ledgerID string) ([]domain.Category, error) {
	res := make([]domain.Category, 0)
	for _, c := range u.data.categories {
		if c.LedgerID == ledgerID {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (u *unit) SaveCategory(_ context.Context, category domain.Category) error {
	if err := u.store.fail("SaveCategory"); err != nil {
		return err
	}
	if _, ok := u.data.categories[category.CategoryID]; ok {
		return duplicate("category", category.CategoryID)
	}
	u.data.categories[category.CategoryID] = category
	return nil
}

func (u *unit) UpdateCategory(_ context.Context, category domain.Category) error {
	if err := u.store.fail("UpdateCategory"); err != nil {
		return err
	}
	if _, ok := u.data.categories[category.CategoryID]; !ok {
		return notFound("category", category.CategoryID)
	}
	u.data.categories[category.CategoryID] = category
	return nil
}

func (u *unit) FindLedgerByID(_ context.Context, ledgerID string) (*domain.Ledger, error) {
	l, ok := u.data.ledgers[ledgerID]
	if !ok {
		return nil, notFound("ledger", ledgerID)
	}
	return &l, nil
}

func (u *unit) ListLedgersByUser(_ context.Context, userID string) ([]domain.Ledger, error) {
	res := make([]domain.Ledger, 0)
	for _, l := range u.data.ledgers {
		if l.UserID == userID {
			res = append(res, l)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (u *unit) SaveLedger(_ context.Context, ledger domain.Ledger) error {
	if err := u.store.fail("SaveLedger"); err != nil {
		return err
	}
	if _, ok := u.data.ledgers[ledger.LedgerID]; ok {
		return duplicate("ledger", ledger.LedgerID)
	}
	u.data.ledgers[ledger.LedgerID] = ledger
	return nil
}

func (u *unit) UpdateLedger(_ context.Context, ledger domain.Ledger) error {
	if err := u.store.fail("UpdateLedger"); err != nil {
		return err
	}
	if _, ok := u.data.ledgers[ledger.LedgerID]; !ok {
		return notFound("ledger", ledger.LedgerID)
	}
	u.data.ledgers[ledger.LedgerID] = ledger
	return nil
}
