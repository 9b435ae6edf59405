package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// installmentHandler handles HTTP requests related to credit-card installments.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
}

// registerInstallmentRoutes registers routes related to installments.
func registerInstallmentRoutes(rg *gin.RouterGroup, is portssvc.InstallmentSvcFacade) {
	h := &installmentHandler{installmentService: is}

	installments := rg.Group("/installments")
	{
		installments.POST("", h.createInstallment)
		installments.GET("/:id", h.getInstallment)
		installments.POST("/:id/repay", h.repayPeriod)
		installments.PUT("/:id/included", h.setIncluded)
		installments.DELETE("/:id", h.deleteInstallment)
	}
}

// createInstallment godoc
// @Summary Split a credit-card purchase into installments
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   installment body dto.CreateInstallmentRequest true "Installment details"
// @Success 201 {object} dto.InstallmentResponse
// @Security BearerAuth
// @Router /installments [post]
func (h *installmentHandler) createInstallment(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateInstallmentRequest
	if !bindJSON(c, &req, "CreateInstallment") {
		return
	}
	plan, err := h.installmentService.CreateInstallment(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create installment")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *installmentHandler) getInstallment(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	plan, err := h.installmentService.GetInstallment(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve installment")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *installmentHandler) repayPeriod(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.RepayInstallmentRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req, "RepayInstallmentPeriod") {
		return
	}
	txn, err := h.installmentService.RepayInstallmentPeriod(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "repay installment period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// setIncluded godoc
// @Summary Toggle whether an installment counts towards its card's current debt
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   id path string true "Installment plan ID"
// @Param   included body dto.SetIncludedRequest true "New flag"
// @Success 200 {object} dto.InstallmentResponse
// @Security BearerAuth
// @Router /installments/{id}/included [put]
func (h *installmentHandler) setIncluded(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.SetIncludedRequest
	if !bindJSON(c, &req, "SetIncludedInCurrentDebts") {
		return
	}
	plan, err := h.installmentService.SetIncludedInCurrentDebts(c.Request.Context(), session, c.Param("id"), *req.Included)
	if err != nil {
		respondError(c, err, "update installment")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *installmentHandler) deleteInstallment(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if err := h.installmentService.DeleteInstallment(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, err, "delete installment")
		return
	}
	c.Status(http.StatusNoContent)
}
