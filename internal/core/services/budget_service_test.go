package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceSuite struct {
	ledgerSuite
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) foodBudget(limit string) *domain.Budget {
	b, err := s.svc.Budget.CreateBudget(s.ctx, s.session, dto.CreateBudgetRequest{
		LedgerID:   s.ledger.LedgerID,
		CategoryID: &s.food.CategoryID,
		Period:     domain.Monthly,
		Limit:      dec(limit),
	})
	s.Require().NoError(err)
	return b
}

func (s *BudgetServiceSuite) budget(id string) domain.Budget {
	b, err := s.svc.Budget.GetBudget(s.ctx, s.session, id)
	s.Require().NoError(err)
	return *b
}

func (s *BudgetServiceSuite) TestCreate_CountsExpensesInCurrentWindow() {
	s.expense("120", s.cash, day(2026, 10, 3))
	s.expense("80", s.cash, day(2026, 9, 20))

	b := s.foodBudget("500")
	s.Equal(day(2026, 10, 1), b.StartDate)
	s.Equal(day(2026, 10, 31), b.EndDate)
	s.assertAmount("120", b.Amount)
}

func (s *BudgetServiceSuite) TestExpensesMoveTheBudget() {
	b := s.foodBudget("500")

	txn := s.expense("120", s.cash, s.now)
	s.assertAmount("120", s.budget(b.BudgetID).Amount)

	s.expense("400", s.bank, s.now)
	over, err := s.svc.Budget.IsOverBudget(s.ctx, s.session, b.BudgetID)
	s.Require().NoError(err)
	s.True(over)

	_, err = s.svc.Transaction.EditTransaction(s.ctx, s.session, txn.TransactionID, s.expenseRequest("20", s.cash, s.food, s.now))
	s.Require().NoError(err)
	s.assertAmount("420", s.budget(b.BudgetID).Amount)
	over, err = s.svc.Budget.IsOverBudget(s.ctx, s.session, b.BudgetID)
	s.Require().NoError(err)
	s.False(over)

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, s.session, txn.TransactionID))
	s.assertAmount("400", s.budget(b.BudgetID).Amount)
}

func (s *BudgetServiceSuite) TestExpenseOutsideWindowIsNotCounted() {
	b := s.foodBudget("500")
	s.expense("60", s.cash, day(2026, 9, 30))
	s.assertAmount("0", s.budget(b.BudgetID).Amount)
	s.assertAmount("60", s.categoryTotal(s.food.CategoryID))
}

func (s *BudgetServiceSuite) TestLazyRefreshOnRead() {
	b := s.foodBudget("500")
	s.expense("520", s.cash, s.now)
	s.True(s.budget(b.BudgetID).OverLimit())

	s.now = time.Date(2026, time.November, 2, 9, 0, 0, 0, time.UTC)
	first := s.budget(b.BudgetID)
	s.True(first.Amount.IsZero())
	s.Equal(day(2026, 11, 1), first.StartDate)
	s.Equal(day(2026, 11, 30), first.EndDate)

	second := s.budget(b.BudgetID)
	s.Equal(first, second)

	s.expense("30", s.cash, s.now)
	s.assertAmount("30", s.budget(b.BudgetID).Amount)
}

func (s *BudgetServiceSuite) TestLazyRefreshOnExpense() {
	b := s.foodBudget("500")
	s.expense("100", s.cash, s.now)

	s.now = time.Date(2027, time.January, 5, 9, 0, 0, 0, time.UTC)
	// a late October receipt refreshes the budget but does not count in January
	s.expense("40", s.cash, day(2026, 10, 30))

	budgets, err := s.svc.Budget.ListBudgetsByLedger(s.ctx, s.session, s.ledger.LedgerID)
	s.Require().NoError(err)
	s.Require().Len(budgets, 1)
	s.Equal(b.BudgetID, budgets[0].BudgetID)
	s.Equal(day(2027, 1, 1), budgets[0].StartDate)
	s.True(budgets[0].Amount.IsZero())
}

func (s *BudgetServiceSuite) TestLedgerLevelBudgetCountsEveryCategory() {
	rent := s.category("Rent", domain.ExpenseCategory)
	b, err := s.svc.Budget.CreateBudget(s.ctx, s.session, dto.CreateBudgetRequest{
		LedgerID: s.ledger.LedgerID,
		Period:   domain.Yearly,
		Limit:    dec("10000"),
	})
	s.Require().NoError(err)
	s.Equal(day(2026, 1, 1), b.StartDate)

	s.expense("50", s.cash, s.now)
	_, err = s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.expenseRequest("900", s.bank, rent, day(2026, 2, 1)))
	s.Require().NoError(err)
	s.assertAmount("950", s.budget(b.BudgetID).Amount)

	res := dto.ToBudgetResponse(&domain.Budget{Limit: dec("10000"), Amount: dec("950")})
	s.assertAmount("9050", res.Remaining)
}

func (s *BudgetServiceSuite) TestCreate_Rejections() {
	_, err := s.svc.Budget.CreateBudget(s.ctx, s.session, dto.CreateBudgetRequest{
		LedgerID: s.ledger.LedgerID, CategoryID: &s.salary.CategoryID, Period: domain.Monthly, Limit: dec("10"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Budget.CreateBudget(s.ctx, s.session, dto.CreateBudgetRequest{
		LedgerID: s.ledger.LedgerID, Period: domain.Monthly, Limit: dec("-1"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Budget.GetBudget(s.ctx, domain.Session{UserID: "user_2"}, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
