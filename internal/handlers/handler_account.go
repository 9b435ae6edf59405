package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
	installmentService portssvc.InstallmentSvcFacade
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ts portssvc.TransactionSvcFacade, is portssvc.InstallmentSvcFacade) {
	h := &accountHandler{accountService: as, transactionService: ts, installmentService: is}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/transactions", h.listTransactions)
		accounts.GET("/:id/installments", h.listInstallments)
		accounts.POST("/:id/repay", h.repayDebt)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a cash, bank, credit, borrowing or lending account. Loans go through /loans.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req, "CreateAccount") {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("kind", string(req.Kind)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) listTransactions(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	txns, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

func (h *accountHandler) listInstallments(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	plans, err := h.installmentService.ListInstallmentsByAccount(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list installments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"installments": plans})
}

// repayDebt godoc
// @Summary Settle part of a borrowing or lending account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Borrowing or lending account ID"
// @Param   repayment body dto.RepayDebtRequest true "Repayment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /accounts/{id}/repay [post]
func (h *accountHandler) repayDebt(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.RepayDebtRequest
	if !bindJSON(c, &req, "RepayDebt") {
		return
	}
	txn, err := h.accountService.RepayDebt(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "repay debt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
