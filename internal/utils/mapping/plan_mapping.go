package mapping

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/models"
)

// ToModelAmortizationPlan converts a domain AmortizationPlan to a model AmortizationPlan
func ToModelAmortizationPlan(d domain.AmortizationPlan) models.AmortizationPlan {
	return models.AmortizationPlan{
		PlanID:             d.PlanID,
		AccountID:          d.AccountID,
		UserID:             d.UserID,
		Principal:          d.Principal,
		AnnualRate:         d.AnnualRate,
		TotalPeriods:       d.TotalPeriods,
		PaidPeriods:        d.PaidPeriods,
		Method:             string(d.Method),
		StartDate:          d.StartDate,
		RepaymentAccountID: d.RepaymentAccountID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAmortizationPlan converts a model AmortizationPlan to a domain AmortizationPlan
func ToDomainAmortizationPlan(m models.AmortizationPlan) domain.AmortizationPlan {
	return domain.AmortizationPlan{
		PlanID:             m.PlanID,
		AccountID:          m.AccountID,
		UserID:             m.UserID,
		Principal:          m.Principal,
		AnnualRate:         m.AnnualRate,
		TotalPeriods:       m.TotalPeriods,
		PaidPeriods:        m.PaidPeriods,
		Method:             domain.RepaymentMethod(m.Method),
		StartDate:          m.StartDate.UTC(),
		RepaymentAccountID: m.RepaymentAccountID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInstallmentPlan converts a domain InstallmentPlan to a model InstallmentPlan
func ToModelInstallmentPlan(d domain.InstallmentPlan) models.InstallmentPlan {
	return models.InstallmentPlan{
		PlanID:                 d.PlanID,
		AccountID:              d.AccountID,
		UserID:                 d.UserID,
		LedgerID:               d.LedgerID,
		CategoryID:             d.CategoryID,
		Principal:              d.Principal,
		InterestRate:           d.InterestRate,
		TotalPeriods:           d.TotalPeriods,
		PaidPeriods:            d.PaidPeriods,
		Strategy:               string(d.Strategy),
		IncludedInCurrentDebts: d.IncludedInCurrentDebts,
		RemainingAmount:        d.RemainingAmount,
		StartDate:              d.StartDate,
		Note:                   d.Note,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallmentPlan converts a model InstallmentPlan to a domain InstallmentPlan
func ToDomainInstallmentPlan(m models.InstallmentPlan) domain.InstallmentPlan {
	return domain.InstallmentPlan{
		PlanID:                 m.PlanID,
		AccountID:              m.AccountID,
		UserID:                 m.UserID,
		LedgerID:               m.LedgerID,
		CategoryID:             m.CategoryID,
		Principal:              m.Principal,
		InterestRate:           m.InterestRate,
		TotalPeriods:           m.TotalPeriods,
		PaidPeriods:            m.PaidPeriods,
		Strategy:               domain.InstallmentStrategy(m.Strategy),
		IncludedInCurrentDebts: m.IncludedInCurrentDebts,
		RemainingAmount:        m.RemainingAmount,
		StartDate:              m.StartDate.UTC(),
		Note:                   m.Note,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstallmentPlanSlice converts a slice of model InstallmentPlans to domain InstallmentPlans
func ToDomainInstallmentPlanSlice(ms []models.InstallmentPlan) []domain.InstallmentPlan {
	return toSlice(ms, ToDomainInstallmentPlan)
}
