package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: bs}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("/:id", h.getBudget)
		budgets.GET("/:id/over", h.isOverBudget)
	}
}

// createBudget godoc
// @Summary Create a monthly or yearly budget
// @Description Omit categoryID for a budget over every expense of the ledger.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if !bindJSON(c, &req, "CreateBudget") {
		return
	}
	budget, err := h.budgetService.CreateBudget(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// getBudget godoc
// @Summary Get a budget, rolling its window forward first when it has expired
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	budget, err := h.budgetService.GetBudget(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) isOverBudget(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	over, err := h.budgetService.IsOverBudget(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, err, "check budget")
		return
	}
	c.JSON(http.StatusOK, gin.H{"overBudget": over})
}
