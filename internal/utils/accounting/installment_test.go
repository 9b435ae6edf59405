package accounting_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installmentPlan(strategy domain.InstallmentStrategy, principal, rate string, periods int) domain.InstallmentPlan {
	return domain.InstallmentPlan{
		PlanID:       "inst_1",
		Principal:    dec(principal),
		InterestRate: dec(rate),
		TotalPeriods: periods,
		Strategy:     strategy,
	}
}

func TestInstallmentMonthlyPayment_Strategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy domain.InstallmentStrategy
		first    string
		middle   string
		last     string
	}{
		{"evenly split", domain.EvenlySplit, "176.67", "176.67", "176.63"},
		{"upfront interest", domain.Upfront, "286.67", "166.67", "166.63"},
		{"final interest", domain.Final, "166.67", "166.67", "286.63"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := installmentPlan(tt.strategy, "2000", "6", 12)

			first, err := accounting.InstallmentMonthlyPayment(plan, 1)
			require.NoError(t, err)
			middle, err := accounting.InstallmentMonthlyPayment(plan, 6)
			require.NoError(t, err)
			last, err := accounting.InstallmentMonthlyPayment(plan, 12)
			require.NoError(t, err)

			assert.True(t, dec(tt.first).Equal(first), "first: %s", first)
			assert.True(t, dec(tt.middle).Equal(middle), "middle: %s", middle)
			assert.True(t, dec(tt.last).Equal(last), "last: %s", last)

			total, err := accounting.InstallmentTotalPayment(plan)
			require.NoError(t, err)
			assert.True(t, dec("2120").Equal(total))
		})
	}
}

func TestInstallmentMonthlyPayment_SumsExactlyToTotal(t *testing.T) {
	shapes := []struct {
		principal string
		rate      string
		periods   int
	}{
		{"2000", "6", 12},
		{"999.99", "13.5", 7},
		{"100", "0", 3},
		{"0.05", "1", 6},
		{"12345.67", "8.88", 24},
	}
	for _, strategy := range []domain.InstallmentStrategy{domain.EvenlySplit, domain.Upfront, domain.Final} {
		for _, shape := range shapes {
			plan := installmentPlan(strategy, shape.principal, shape.rate, shape.periods)
			total, err := accounting.InstallmentTotalPayment(plan)
			require.NoError(t, err)

			sum := decimal.Zero
			for k := 1; k <= plan.TotalPeriods; k++ {
				due, err := accounting.InstallmentMonthlyPayment(plan, k)
				require.NoError(t, err)
				sum = sum.Add(due)
			}
			assert.True(t, sum.Equal(total), "%s %v: sum %s != total %s", strategy, shape, sum, total)
		}
	}
}

func TestInstallmentMonthlyPayment_SinglePeriodPaysTotal(t *testing.T) {
	for _, strategy := range []domain.InstallmentStrategy{domain.EvenlySplit, domain.Upfront, domain.Final} {
		plan := installmentPlan(strategy, "1000", "5", 1)
		due, err := accounting.InstallmentMonthlyPayment(plan, 1)
		require.NoError(t, err)
		assert.True(t, dec("1050").Equal(due), "%s: %s", strategy, due)
	}
}

func TestInstallmentMonthlyPayment_InvalidInput(t *testing.T) {
	plan := installmentPlan(domain.EvenlySplit, "1000", "5", 4)

	_, err := accounting.InstallmentMonthlyPayment(plan, 5)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	plan.Strategy = "WEEKLY"
	_, err = accounting.InstallmentMonthlyPayment(plan, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	plan = installmentPlan(domain.EvenlySplit, "-1", "5", 4)
	_, err = accounting.InstallmentTotalPayment(plan)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestInstallmentRemainingAmount_BackFilled(t *testing.T) {
	plan := installmentPlan(domain.EvenlySplit, "2000", "6", 12)
	plan.PaidPeriods = 3

	remaining, err := accounting.InstallmentRemainingAmount(plan)
	require.NoError(t, err)
	total, err := accounting.InstallmentTotalPayment(plan)
	require.NoError(t, err)

	// 8 regular periods plus the residual period are still open.
	assert.True(t, dec("1589.99").Equal(remaining), "remaining: %s", remaining)
	assert.True(t, dec("530.01").Equal(total.Sub(remaining)))

	plan.PaidPeriods = 12
	remaining, err = accounting.InstallmentRemainingAmount(plan)
	require.NoError(t, err)
	assert.True(t, remaining.IsZero())
}

func TestRepayInstallmentPeriod(t *testing.T) {
	plan := installmentPlan(domain.Final, "2000", "6", 12)
	plan.RemainingAmount = dec("2120")

	for k := 1; k <= 12; k++ {
		_, err := accounting.RepayInstallmentPeriod(&plan)
		require.NoError(t, err)
	}
	assert.True(t, plan.Completed())
	assert.True(t, plan.RemainingAmount.IsZero())

	_, err := accounting.RepayInstallmentPeriod(&plan)
	assert.ErrorIs(t, err, domain.ErrAllPeriodsPaid)
}

func TestRepayInstallmentPeriod_DetectsDrift(t *testing.T) {
	plan := installmentPlan(domain.EvenlySplit, "2000", "6", 12)
	plan.RemainingAmount = dec("2119.99")

	_, err := accounting.RepayInstallmentPeriod(&plan)
	assert.ErrorIs(t, err, apperrors.ErrConsistencyViolation)
	assert.Equal(t, 0, plan.PaidPeriods)
	assert.True(t, dec("2119.99").Equal(plan.RemainingAmount))
}
