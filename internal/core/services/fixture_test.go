package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ledgerSuite seeds one user with a ledger, an income and an expense category, a cash
// account (1000), a bank account (5000) and an empty credit card.
type ledgerSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	store   *memory.Store
	svc     *portssvc.ServiceContainer
	session domain.Session

	ledger *domain.Ledger
	food   *domain.Category
	salary *domain.Category
	cash   *domain.Account
	bank   *domain.Account
	card   *domain.Account
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	s.store = memory.NewStore()
	s.session = domain.Session{UserID: "user_1"}

	seq := 0
	s.svc = services.NewServiceContainer(
		portsrepo.RepositoryProvider{UnitOfWork: s.store},
		services.WithClock(func() time.Time { return s.now }),
		services.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id_%03d", seq)
		}),
	)

	var err error
	s.ledger, err = s.svc.Ledger.CreateLedger(s.ctx, s.session, dto.CreateLedgerRequest{Name: "Household"})
	s.Require().NoError(err)
	s.food = s.category("Food", domain.ExpenseCategory)
	s.salary = s.category("Salary", domain.IncomeCategory)

	s.cash = s.createAccount(dto.CreateAccountRequest{Name: "Wallet", Kind: domain.KindCash, Balance: amt("1000")})
	s.bank = s.createAccount(dto.CreateAccountRequest{Name: "Checking", Kind: domain.KindBasic, Balance: amt("5000")})
	s.card = s.createAccount(dto.CreateAccountRequest{Name: "Visa", Kind: domain.KindCredit, CreditLimit: amt("10000")})
}

func (s *ledgerSuite) category(name string, typ domain.CategoryType) *domain.Category {
	c, err := s.svc.Ledger.CreateCategory(s.ctx, s.session, s.ledger.LedgerID, dto.CreateCategoryRequest{Name: name, Type: typ})
	s.Require().NoError(err)
	return c
}

func (s *ledgerSuite) createAccount(req dto.CreateAccountRequest) *domain.Account {
	acc, err := s.svc.Account.CreateAccount(s.ctx, s.session, req)
	s.Require().NoError(err)
	return acc
}

func (s *ledgerSuite) account(id string) domain.Account {
	acc, err := s.svc.Account.GetAccountByID(s.ctx, s.session, id)
	s.Require().NoError(err)
	return *acc
}

func (s *ledgerSuite) categoryTotal(id string) decimal.Decimal {
	categories, err := s.svc.Ledger.ListCategories(s.ctx, s.session, s.ledger.LedgerID)
	s.Require().NoError(err)
	for _, c := range categories {
		if c.CategoryID == id {
			return c.Total
		}
	}
	s.FailNow("category not found", id)
	return decimal.Zero
}

func (s *ledgerSuite) ledgerState() domain.Ledger {
	l, err := s.svc.Ledger.GetLedger(s.ctx, s.session, s.ledger.LedgerID)
	s.Require().NoError(err)
	return *l
}

func (s *ledgerSuite) expenseRequest(amount string, from *domain.Account, category *domain.Category, date time.Time) dto.TransactionRequest {
	return dto.TransactionRequest{
		Kind:          domain.Expense,
		Date:          date,
		Amount:        amt(amount),
		LedgerID:      s.ledger.LedgerID,
		CategoryID:    &category.CategoryID,
		FromAccountID: &from.AccountID,
	}
}

func (s *ledgerSuite) expense(amount string, from *domain.Account, date time.Time) *domain.Transaction {
	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.expenseRequest(amount, from, s.food, date))
	s.Require().NoError(err)
	return txn
}

func (s *ledgerSuite) transferRequest(amount string, from, to *domain.Account) dto.TransactionRequest {
	return dto.TransactionRequest{
		Kind:          domain.Transfer,
		Date:          s.now,
		Amount:        amt(amount),
		LedgerID:      s.ledger.LedgerID,
		FromAccountID: &from.AccountID,
		ToAccountID:   &to.AccountID,
	}
}

// assertAmount compares decimals by value so that 880 and 880.00 match.
func (s *ledgerSuite) assertAmount(want string, got decimal.Decimal, msgAndArgs ...any) {
	s.T().Helper()
	s.True(dec(want).Equal(got), append([]any{fmt.Sprintf("want %s, got %s", want, got)}, msgAndArgs...)...)
}
