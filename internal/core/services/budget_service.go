package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// budgetService tracks spending against monthly or yearly limits.
// Windows roll over lazily: a budget is refreshed whenever it is read or touched by an expense.
type budgetService struct {
	BaseService
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.BudgetSvcFacade {
	return &budgetService{BaseService: newBaseService(uow, options...)}
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// refreshed loads a budget and persists it if its window had expired.
func (s *budgetService) refreshed(ctx context.Context, store portsrepo.Store, session domain.Session, budgetID string) (*domain.Budget, error) {
	budget, err := store.Budgets().FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != session.UserID {
		return nil, notOwned("budget", budgetID)
	}
	if err := s.persistRefresh(ctx, store, session, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) persistRefresh(ctx context.Context, store portsrepo.Store, session domain.Session, budget *domain.Budget) error {
	now := s.now()
	if !budget.RefreshIfExpired(now) {
		return nil
	}
	budget.Touch(session.UserID, now)
	s.LogDebug(ctx, "Budget window rolled over", slog.String("budget_id", budget.BudgetID), slog.Time("start", budget.StartDate))
	return store.Budgets().UpdateBudget(ctx, *budget)
}

// CreateBudget opens a budget on the window containing today. Expenses already recorded in
// that window are counted.
func (s *budgetService) CreateBudget(ctx context.Context, session domain.Session, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Limit.IsNegative() {
		return nil, fmt.Errorf("%w: budget limit cannot be negative", apperrors.ErrValidation)
	}
	now := s.now()
	budget := domain.Budget{
		BudgetID:    s.newID(),
		UserID:      session.UserID,
		LedgerID:    req.LedgerID,
		CategoryID:  req.CategoryID,
		Period:      req.Period,
		Limit:       req.Limit,
		Amount:      decimal.Zero,
		AuditFields: domain.NewAuditFields(session.UserID, now),
	}
	budget.StartDate, budget.EndDate = domain.PeriodBounds(budget.Period, now)

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadLedger(ctx, store, session, req.LedgerID); err != nil {
			return err
		}
		var txns []domain.Transaction
		if req.CategoryID != nil {
			category, err := loadCategory(ctx, store, session, *req.CategoryID)
			if err != nil {
				return err
			}
			if category.LedgerID != req.LedgerID || category.Type != domain.ExpenseCategory {
				return fmt.Errorf("%w: category %s is not an expense category of ledger %s", apperrors.ErrValidation, category.CategoryID, req.LedgerID)
			}
			txns, err = store.Transactions().ListTransactionsByCategory(ctx, category.CategoryID)
			if err != nil {
				return err
			}
		} else {
			var err error
			txns, err = store.Transactions().ListTransactionsByLedger(ctx, req.LedgerID)
			if err != nil {
				return err
			}
		}
		for _, txn := range txns {
			if txn.Kind == domain.Expense && budget.IsActive(txn.Date) {
				budget.Amount = budget.Amount.Add(txn.Amount)
			}
		}
		return store.Budgets().SaveBudget(ctx, budget)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create budget", slog.String("ledger_id", req.LedgerID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID), slog.String("period", string(budget.Period)))
	return &budget, nil
}

// GetBudget returns a budget with its window brought up to date.
func (s *budgetService) GetBudget(ctx context.Context, session domain.Session, budgetID string) (*domain.Budget, error) {
	var budget *domain.Budget
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		budget, err = s.refreshed(ctx, store, session, budgetID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgetsByLedger(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Budget, error) {
	var budgets []domain.Budget
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadLedger(ctx, store, session, ledgerID); err != nil {
			return err
		}
		var err error
		budgets, err = store.Budgets().ListBudgetsByLedger(ctx, ledgerID)
		if err != nil {
			return err
		}
		for i := range budgets {
			if err := s.persistRefresh(ctx, store, session, &budgets[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

// IsOverBudget reports whether the current window's spending exceeds the limit.
func (s *budgetService) IsOverBudget(ctx context.Context, session domain.Session, budgetID string) (bool, error) {
	budget, err := s.GetBudget(ctx, session, budgetID)
	if err != nil {
		return false, err
	}
	return budget.OverLimit(), nil
}
