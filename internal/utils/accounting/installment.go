package accounting

import (
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InstallmentTotalInterest is the flat interest added on top of the principal.
func InstallmentTotalInterest(plan domain.InstallmentPlan) decimal.Decimal {
	return RoundMoney(Percent(plan.Principal, plan.InterestRate))
}

// InstallmentTotalPayment is principal plus flat interest, rounded to cents.
func InstallmentTotalPayment(plan domain.InstallmentPlan) (decimal.Decimal, error) {
	if err := plan.Validate(); err != nil {
		return decimal.Zero, err
	}
	return RoundMoney(plan.Principal.Add(Percent(plan.Principal, plan.InterestRate))), nil
}

// installmentBase is the regular (non-first, non-last) period payment.
func installmentBase(plan domain.InstallmentPlan, total decimal.Decimal) decimal.Decimal {
	n := decimal.NewFromInt(int64(plan.TotalPeriods))
	if plan.Strategy == domain.EvenlySplit {
		return RoundMoney(total.DivRound(n, RatePrecision))
	}
	return RoundMoney(plan.Principal.DivRound(n, RatePrecision))
}

// installmentPeriods returns every period payment; the last entry absorbs the residual so the
// slice always sums to the total payment.
func installmentPeriods(plan domain.InstallmentPlan) ([]decimal.Decimal, error) {
	total, err := InstallmentTotalPayment(plan)
	if err != nil {
		return nil, err
	}
	n := plan.TotalPeriods
	if n == 1 {
		return []decimal.Decimal{total}, nil
	}
	base := installmentBase(plan, total)
	payments := make([]decimal.Decimal, n)
	paid := decimal.Zero
	for k := 1; k < n; k++ {
		amount := base
		if k == 1 && plan.Strategy == domain.Upfront {
			amount = base.Add(InstallmentTotalInterest(plan))
		}
		payments[k-1] = amount
		paid = paid.Add(amount)
	}
	payments[n-1] = total.Sub(paid)
	if payments[n-1].IsNegative() {
		return nil, fmt.Errorf("%w: %s cannot be split over %d periods", apperrors.ErrValidation, total.String(), n)
	}
	return payments, nil
}

// InstallmentMonthlyPayment returns the amount due for the 1-based period.
func InstallmentMonthlyPayment(plan domain.InstallmentPlan, period int) (decimal.Decimal, error) {
	payments, err := installmentPeriods(plan)
	if err != nil {
		return decimal.Zero, err
	}
	if period < 1 || period > plan.TotalPeriods {
		return decimal.Zero, fmt.Errorf("%w: period %d out of range [1, %d]", apperrors.ErrValidation, period, plan.TotalPeriods)
	}
	return payments[period-1], nil
}

// InstallmentRemainingFromPeriod sums the payments of periods [from, TotalPeriods].
func InstallmentRemainingFromPeriod(plan domain.InstallmentPlan, from int) (decimal.Decimal, error) {
	payments, err := installmentPeriods(plan)
	if err != nil {
		return decimal.Zero, err
	}
	if from < 1 || from > plan.TotalPeriods+1 {
		return decimal.Zero, fmt.Errorf("%w: start period %d out of range [1, %d]", apperrors.ErrValidation, from, plan.TotalPeriods+1)
	}
	sum := decimal.Zero
	for _, p := range payments[from-1:] {
		sum = sum.Add(p)
	}
	return sum, nil
}

// InstallmentRemainingAmount is the canonical remaining amount after PaidPeriods.
func InstallmentRemainingAmount(plan domain.InstallmentPlan) (decimal.Decimal, error) {
	return InstallmentRemainingFromPeriod(plan, plan.PaidPeriods+1)
}

// RepayInstallmentPeriod consumes one due amount from the plan. The incremental remaining must
// match the recomputed one; a mismatch is reported as a consistency violation.
func RepayInstallmentPeriod(plan *domain.InstallmentPlan) (decimal.Decimal, error) {
	if plan.Completed() {
		return decimal.Zero, domain.ErrAllPeriodsPaid
	}
	due, err := InstallmentMonthlyPayment(*plan, plan.PaidPeriods+1)
	if err != nil {
		return decimal.Zero, err
	}
	next := *plan
	next.PaidPeriods++
	canonical, err := InstallmentRemainingAmount(next)
	if err != nil {
		return decimal.Zero, err
	}
	if incremental := plan.RemainingAmount.Sub(due); !incremental.Equal(canonical) {
		return decimal.Zero, fmt.Errorf("%w: installment %s remaining %s drifted from schedule %s",
			apperrors.ErrConsistencyViolation, plan.PlanID, incremental.String(), canonical.String())
	}
	plan.PaidPeriods = next.PaidPeriods
	plan.RemainingAmount = canonical
	return due, nil
}
