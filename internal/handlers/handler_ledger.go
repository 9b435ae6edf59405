package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledgers and their categories.
type ledgerHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	transactionService portssvc.TransactionSvcFacade
	budgetService      portssvc.BudgetSvcFacade
}

// registerLedgerRoutes registers routes related to ledgers and categories.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, ts portssvc.TransactionSvcFacade, bs portssvc.BudgetSvcFacade) {
	h := &ledgerHandler{ledgerService: ls, transactionService: ts, budgetService: bs}

	ledgers := rg.Group("/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:id", h.getLedger)
		ledgers.POST("/:id/categories", h.createCategory)
		ledgers.GET("/:id/categories", h.listCategories)
		ledgers.GET("/:id/transactions", h.listLedgerTransactions)
		ledgers.GET("/:id/budgets", h.listBudgets)
	}
	rg.GET("/categories/:id/transactions", h.listCategoryTransactions)
}

func (h *ledgerHandler) createLedger(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateLedgerRequest
	if !bindJSON(c, &req, "CreateLedger") {
		return
	}
	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create ledger")
		return
	}
	c.JSON(http.StatusCreated, ledger)
}

func (h *ledgerHandler) listLedgers(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "list ledgers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledgers": ledgers})
}

func (h *ledgerHandler) getLedger(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

func (h *ledgerHandler) createCategory(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if !bindJSON(c, &req, "CreateCategory") {
		return
	}
	category, err := h.ledgerService.CreateCategory(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *ledgerHandler) listCategories(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	categories, err := h.ledgerService.ListCategories(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ledgerHandler) listLedgerTransactions(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	txns, err := h.transactionService.ListTransactionsByLedger(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

func (h *ledgerHandler) listCategoryTransactions(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	txns, err := h.transactionService.ListTransactionsByCategory(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

func (h *ledgerHandler) listBudgets(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	budgets, err := h.budgetService.ListBudgetsByLedger(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "list budgets")
		return
	}
	res := make([]dto.BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = dto.ToBudgetResponse(&budgets[i])
	}
	c.JSON(http.StatusOK, gin.H{"budgets": res})
}
