package handlers

import (
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerLedgerRoutes(v1, services.Ledger, services.Transaction, services.Budget)
	registerAccountRoutes(v1, services.Account, services.Transaction, services.Installment)
	registerTransactionRoutes(v1, services.Transaction)
	registerLoanRoutes(v1, services.Loan)
	registerInstallmentRoutes(v1, services.Installment)
	registerBudgetRoutes(v1, services.Budget)
}
