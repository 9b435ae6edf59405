package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

func (u *unit) FindAmortizationPlanByID(_ context.Context, planID string) (*domain.AmortizationPlan, error) {
	plan, ok := u.data.loanPlans[planID]
	if !ok {
		return nil, notFound("amortization plan", planID)
	}
	return &plan, nil
}

func (u *unit) FindAmortizationPlanByAccount(_ context.Context, accountID string) (*domain.AmortizationPlan, error) {
	for _, plan := range u.data.loanPlans {
		if plan.AccountID == accountID {
			return &plan, nil
		}
	}
	return nil, notFound("amortization plan for account", accountID)
}

func (u *unit) SaveAmortizationPlan(_ context.Context, plan domain.AmortizationPlan) error {
	if err := u.store.fail("SaveAmortizationPlan"); err != nil {
		return err
	}
	if _, ok := u.data.loanPlans[plan.PlanID]; ok {
		return duplicate("amortization plan", plan.PlanID)
	}
	u.data.loanPlans[plan.PlanID] = plan
	return nil
}

func (u *unit) UpdateAmortizationPlan(_ context.Context, plan domain.AmortizationPlan) error {
	if err := u.store.fail("UpdateAmortizationPlan"); err != nil {
		return err
	}
	if _, ok := u.data.loanPlans[plan.PlanID]; !ok {
		return notFound("amortization plan", plan.PlanID)
	}
	u.data.loanPlans[plan.PlanID] = plan
	return nil
}

func (u *unit) DeleteAmortizationPlan(_ context.Context, planID string) error {
	if err := u.store.fail("DeleteAmortizationPlan"); err != nil {
		return err
	}
	if _, ok := u.data.loanPlans[planID]; !ok {
		return notFound("amortization plan", planID)
	}
	delete(u.data.loanPlans, planID)
	return nil
}

func (u *unit) FindInstallmentPlanByID(_ context.Context, planID string) (*domain.InstallmentPlan, error) {
	plan, ok := u.data.installments[planID]
	if !ok {
		return nil, notFound("installment plan", planID)
	}
	return &plan, nil
}

func (u *unit) ListInstallmentPlansByAccount(_ context.Context, accountID string) ([]domain.InstallmentPlan, error) {
	res := make([]domain.InstallmentPlan, 0)
	for _, plan := range u.data.installments {
		if plan.AccountID == accountID {
			res = append(res, plan)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].StartDate.Equal(res[j].StartDate) {
			return res[i].StartDate.Before(res[j].StartDate)
		}
		return res[i].PlanID < res[j].PlanID
	})
	return res, nil
}

func (u *unit) SaveInstallmentPlan(_ context.Context, plan domain.InstallmentPlan) error {
	if err := u.store.fail("SaveInstallmentPlan"); err != nil {
		return err
	}
	if _, ok := u.data.installments[plan.PlanID]; ok {
		return duplicate("installment plan", plan.PlanID)
	}
	u.data.installments[plan.PlanID] = plan
	return nil
}

func (u *unit) UpdateInstallmentPlan(_ context.Context, plan domain.InstallmentPlan) error {
	if err := u.store.fail("UpdateInstallmentPlan"); err != nil {
		return err
	}
	if _, ok := u.data.installments[plan.PlanID]; !ok {
		return notFound("installment plan", plan.PlanID)
	}
	u.data.installments[plan.PlanID] = plan
	return nil
}

func (u *unit) DeleteInstallmentPlan(_ context.Context, planID string) error {
	if err := u.store.fail("DeleteInstallmentPlan"); err != nil {
		return err
	}
	if _, ok := u.data.installments[planID]; !ok {
		return notFound("installment plan", planID)
	}
	delete(u.data.installments, planID)
	return nil
}
