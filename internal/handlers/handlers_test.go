package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/handlers"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, session domain.Session, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, session, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByAccount(ctx context.Context, session domain.Session, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, session, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByCategory(ctx context.Context, session domain.Session, categoryID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, session, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactionsByLedger(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, session, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, session domain.Session, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) EditTransaction(ctx context.Context, session domain.Session, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, session, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, session domain.Session, transactionID string) error {
	args := m.Called(ctx, session, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	cfg      *config.Config
	services *portssvc.ServiceContainer
	now      time.Time
	token    string
}

// generateTestToken creates a signed JWT for testing.
func (s *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    s.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough",
		JWTIssuer: "finance-ledger-test",
	}
	s.now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

	seq := 0
	s.services = services.NewServiceContainer(
		portsrepo.RepositoryProvider{UnitOfWork: memory.NewStore()},
		services.WithClock(func() time.Time { return s.now }),
		services.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id_%03d", seq)
		}),
	)
	s.token = s.generateTestToken("user_1")
	s.route()
}

func (s *HandlerTestSuite) route() {
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, s.services)
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, path, &payload)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// seed creates a ledger with a food category and a cash account holding 100.
func (s *HandlerTestSuite) seed() (ledgerID, categoryID, cashID string) {
	w := s.do(http.MethodPost, "/api/v1/ledgers", gin.H{"name": "Household"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var ledger domain.Ledger
	s.decode(w, &ledger)

	w = s.do(http.MethodPost, "/api/v1/ledgers/"+ledger.LedgerID+"/categories", gin.H{"name": "Food", "type": "EXPENSE"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var category domain.Category
	s.decode(w, &category)

	w = s.do(http.MethodPost, "/api/v1/accounts", gin.H{"name": "Wallet", "kind": "CASH", "balance": "100"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var cash dto.AccountResponse
	s.decode(w, &cash)

	return ledger.LedgerID, category.CategoryID, cash.AccountID
}

// --- Test Cases ---

func (s *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)

	s.cfg.JWTIssuer = "someone-else"
	s.token = s.generateTestToken("user_1")
	s.cfg.JWTIssuer = "finance-ledger-test"
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/accounts", nil).Code)
}

func (s *HandlerTestSuite) TestExpenseLifecycle() {
	ledgerID, categoryID, cashID := s.seed()

	w := s.do(http.MethodPost, "/api/v1/transactions", gin.H{
		"kind":          "EXPENSE",
		"date":          s.now,
		"amount":        "30.25",
		"ledgerID":      ledgerID,
		"categoryID":    categoryID,
		"fromAccountID": cashID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var txn dto.TransactionResponse
	s.decode(w, &txn)
	s.True(decimal.RequireFromString("30.25").Equal(txn.Amount))

	w = s.do(http.MethodGet, "/api/v1/accounts/"+cashID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var cash dto.AccountResponse
	s.decode(w, &cash)
	s.Require().NotNil(cash.Balance)
	s.True(decimal.RequireFromString("69.75").Equal(*cash.Balance), "balance %s", cash.Balance)

	w = s.do(http.MethodGet, "/api/v1/ledgers/"+ledgerID+"/transactions", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListTransactionsResponse
	s.decode(w, &list)
	s.Len(list.Transactions, 1)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/transactions/"+txn.TransactionID, nil).Code)
	s.decode(s.do(http.MethodGet, "/api/v1/accounts/"+cashID, nil), &cash)
	s.True(decimal.RequireFromString("100").Equal(*cash.Balance))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/transactions/"+txn.TransactionID, nil).Code)
}

func (s *HandlerTestSuite) TestBindingRejectsNegativeAmount() {
	ledgerID, categoryID, cashID := s.seed()

	w := s.do(http.MethodPost, "/api/v1/transactions", gin.H{
		"kind":          "EXPENSE",
		"date":          s.now,
		"amount":        "-1",
		"ledgerID":      ledgerID,
		"categoryID":    categoryID,
		"fromAccountID": cashID,
	})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/v1/budgets", gin.H{"ledgerID": ledgerID, "period": "WEEKLY", "limit": "10"})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestServiceErrorsMapToStatus() {
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/accounts/missing", nil).Code)

	w := s.do(http.MethodPost, "/api/v1/accounts", gin.H{"name": "Mortgage", "kind": "LOAN"})
	s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestLoanRepaidUntilConflict() {
	ledgerID, _, cashID := s.seed()

	w := s.do(http.MethodPost, "/api/v1/loans", gin.H{
		"name":               "Car",
		"principal":          "60",
		"annualRate":         "0",
		"totalPeriods":       1,
		"method":             "EQUAL_PRINCIPAL",
		"startDate":          s.now,
		"repaymentAccountID": cashID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var loan dto.LoanResponse
	s.decode(w, &loan)

	repay := "/api/v1/loans/" + loan.Account.AccountID + "/repay"
	s.Equal(http.StatusCreated, s.do(http.MethodPost, repay, gin.H{"ledgerID": ledgerID}).Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, repay, gin.H{"ledgerID": ledgerID}).Code)

	var schedule dto.LoanScheduleResponse
	s.decode(s.do(http.MethodGet, "/api/v1/loans/"+loan.Account.AccountID+"/schedule", nil), &schedule)
	s.True(schedule.RemainingAmount.IsZero())
}

func (s *HandlerTestSuite) TestBudgetOverLimit() {
	ledgerID, categoryID, cashID := s.seed()

	w := s.do(http.MethodPost, "/api/v1/budgets", gin.H{"ledgerID": ledgerID, "categoryID": categoryID, "period": "MONTHLY", "limit": "20"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.BudgetResponse
	s.decode(w, &created)

	w = s.do(http.MethodPost, "/api/v1/transactions", gin.H{
		"kind": "EXPENSE", "date": s.now, "amount": "25", "ledgerID": ledgerID,
		"categoryID": categoryID, "fromAccountID": cashID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var over struct {
		OverBudget bool `json:"overBudget"`
	}
	s.decode(s.do(http.MethodGet, "/api/v1/budgets/"+created.Budget.BudgetID+"/over", nil), &over)
	s.True(over.OverBudget)
}

func (s *HandlerTestSuite) TestConsistencyViolationIsHidden() {
	mockTxn := new(MockTransactionService)
	s.services.Transaction = mockTxn
	s.route()

	mockTxn.On("DeleteTransaction", mock.Anything, domain.Session{UserID: "user_1"}, "t1").
		Return(fmt.Errorf("%w: remaining drifted", apperrors.ErrConsistencyViolation)).Once()
	mockTxn.On("DeleteTransaction", mock.Anything, domain.Session{UserID: "user_1"}, "t2").
		Return(fmt.Errorf("%w: generated by a plan", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodDelete, "/api/v1/transactions/t1", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "drifted")

	s.Equal(http.StatusBadRequest, s.do(http.MethodDelete, "/api/v1/transactions/t2", nil).Code)
	mockTxn.AssertExpectations(s.T())
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
