package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loan accounts.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, ls portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: ls}

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.POST("/:id/repay", h.repayPeriod)
		loans.GET("/:id/schedule", h.getSchedule)
	}
}

// createLoan godoc
// @Summary Open a loan with its repayment plan
// @Description Periods already due at the start date are counted as paid without recording transactions.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateLoanRequest
	if !bindJSON(c, &req, "CreateLoan") {
		return
	}
	loan, err := h.loanService.CreateLoan(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create loan")
		return
	}
	c.JSON(http.StatusCreated, loan)
}

// repayPeriod godoc
// @Summary Pay the next due period of a loan
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   id path string true "Loan account ID"
// @Param   repayment body dto.RepayPeriodRequest true "Repayment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 409 {object} map[string]string "All periods already paid"
// @Security BearerAuth
// @Router /loans/{id}/repay [post]
func (h *loanHandler) repayPeriod(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.RepayPeriodRequest
	if !bindJSON(c, &req, "RepayLoanPeriod") {
		return
	}
	txn, err := h.loanService.RepayLoanPeriod(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "repay loan period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *loanHandler) getSchedule(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	schedule, err := h.loanService.GetLoanSchedule(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve loan schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}
