package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: ts}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.editTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record an income, expense or transfer
// @Description Accounts, category and ledger totals and budgets change together with the record.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Ledger, category or account not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req, "CreateTransaction") {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// editTransaction godoc
// @Summary Edit a transaction
// @Description Reverses the stored effect and applies the edited one. Plan-generated transactions are locked.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.TransactionRequest true "Edited transaction"
// @Success 200 {object} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) editTransaction(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req, "EditTransaction") {
		return
	}
	txn, err := h.transactionService.EditTransaction(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "edit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
