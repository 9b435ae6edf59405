package repositories

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// AmortizationPlanReader defines read operations for loan repayment plans
type AmortizationPlanReader interface {
	FindAmortizationPlanByID(ctx context.Context, planID string) (*domain.AmortizationPlan, error)

	// FindAmortizationPlanByAccount retrieves the plan attached to a loan account.
	FindAmortizationPlanByAccount(ctx context.Context, accountID string) (*domain.AmortizationPlan, error)
}

// AmortizationPlanWriter defines write operations for loan repayment plans
type AmortizationPlanWriter interface {
	SaveAmortizationPlan(ctx context.Context, plan domain.AmortizationPlan) error
	UpdateAmortizationPlan(ctx context.Context, plan domain.AmortizationPlan) error
	DeleteAmortizationPlan(ctx context.Context, planID string) error
}

// AmortizationPlanRepositoryFacade combines all amortization plan repository interfaces
type AmortizationPlanRepositoryFacade interface {
	AmortizationPlanReader
	AmortizationPlanWriter
}

// InstallmentPlanReader defines read operations for credit-card installment plans
type InstallmentPlanReader interface {
	FindInstallmentPlanByID(ctx context.Context, planID string) (*domain.InstallmentPlan, error)

	// ListInstallmentPlansByAccount retrieves every plan attached to a credit account.
	ListInstallmentPlansByAccount(ctx context.Context, accountID string) ([]domain.InstallmentPlan, error)
}

// InstallmentPlanWriter defines write operations for credit-card installment plans
type InstallmentPlanWriter interface {
	SaveInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan) error
	UpdateInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan) error
	DeleteInstallmentPlan(ctx context.Context, planID string) error
}

// InstallmentPlanRepositoryFacade combines all installment plan repository interfaces
type InstallmentPlanRepositoryFacade interface {
	InstallmentPlanReader
	InstallmentPlanWriter
}
