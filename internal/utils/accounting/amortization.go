package accounting

import (
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// powPrecision bounds the digits kept while compounding (1+r)^n.
const powPrecision = RatePrecision + 8

// ScheduleRow is one line of a loan repayment schedule.
type ScheduleRow struct {
	Period             int             `json:"period"`
	Payment            decimal.Decimal `json:"payment"`
	Principal          decimal.Decimal `json:"principal"`
	Interest           decimal.Decimal `json:"interest"`
	RemainingPrincipal decimal.Decimal `json:"remainingPrincipal"`
	RemainingPayment   decimal.Decimal `json:"remainingPayment"`
	Paid               bool            `json:"paid"`
}

func compound(rate decimal.Decimal, n int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(rate)
	result := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		result = result.Mul(factor).Round(powPrecision)
	}
	return result
}

// annuityPayment is the unrounded constant EqualInterest payment.
func annuityPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	nd := decimal.NewFromInt(int64(n))
	if rate.IsZero() {
		return principal.DivRound(nd, RatePrecision)
	}
	f := compound(rate, n)
	return principal.Mul(rate).Mul(f).DivRound(f.Sub(decimal.NewFromInt(1)), RatePrecision)
}

// loanCalc caches the closed-form values of one plan.
type loanCalc struct {
	plan    domain.AmortizationPlan
	rate    decimal.Decimal
	n       decimal.Decimal
	annuity decimal.Decimal
	total   decimal.Decimal
	lastDue decimal.Decimal
}

func newLoanCalc(plan domain.AmortizationPlan) (*loanCalc, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	c := &loanCalc{
		plan: plan,
		rate: MonthlyRate(plan.AnnualRate),
		n:    decimal.NewFromInt(int64(plan.TotalPeriods)),
	}
	p := plan.Principal
	switch plan.Method {
	case domain.EqualInterest:
		c.annuity = annuityPayment(p, c.rate, plan.TotalPeriods)
		c.total = RoundMoney(c.annuity.Mul(c.n))
	case domain.EqualPrincipal:
		interest := p.Mul(c.rate).Mul(c.n.Add(decimal.NewFromInt(1))).DivRound(two, RatePrecision)
		c.total = RoundMoney(p.Add(interest))
	default: // EqualPrincipalAndInterest, InterestBeforePrincipal
		c.total = RoundMoney(p.Add(p.Mul(c.rate).Mul(c.n)))
	}
	c.lastDue = c.total
	for k := 1; k < plan.TotalPeriods; k++ {
		c.lastDue = c.lastDue.Sub(c.closedFormDue(k))
	}
	if c.lastDue.IsNegative() {
		return nil, fmt.Errorf("%w: principal %s is too small for %d periods", apperrors.ErrValidation, p.String(), plan.TotalPeriods)
	}
	return c, nil
}

// closedFormDue is the rounded due amount of a non-final period.
func (c *loanCalc) closedFormDue(period int) decimal.Decimal {
	p := c.plan.Principal
	switch c.plan.Method {
	case domain.EqualInterest:
		return RoundMoney(c.annuity)
	case domain.EqualPrincipal:
		part := p.DivRound(c.n, RatePrecision)
		outstanding := p.Sub(part.Mul(decimal.NewFromInt(int64(period - 1))))
		return RoundMoney(part.Add(outstanding.Mul(c.rate)))
	case domain.EqualPrincipalAndInterest:
		return RoundMoney(p.Add(p.Mul(c.rate).Mul(c.n)).DivRound(c.n, RatePrecision))
	default: // InterestBeforePrincipal
		return RoundMoney(p.Mul(c.rate))
	}
}

// due assumes period is in range.
func (c *loanCalc) due(period int) decimal.Decimal {
	if period == c.plan.TotalPeriods {
		return c.lastDue
	}
	return c.closedFormDue(period)
}

// LoanTotalPayment is the total repaid over the life of the plan, derived from the closed form
// of the method rather than from the rounded period amounts.
func LoanTotalPayment(plan domain.AmortizationPlan) (decimal.Decimal, error) {
	c, err := newLoanCalc(plan)
	if err != nil {
		return decimal.Zero, err
	}
	return c.total, nil
}

func checkPeriod(plan domain.AmortizationPlan, period int) error {
	if period < 1 || period > plan.TotalPeriods {
		return fmt.Errorf("%w: period %d out of range [1, %d]", apperrors.ErrValidation, period, plan.TotalPeriods)
	}
	return nil
}

// LoanDueAmount returns the amount due for the 1-based period. Every period but the last comes
// from the closed form; the last one absorbs the rounding residual against LoanTotalPayment.
func LoanDueAmount(plan domain.AmortizationPlan, period int) (decimal.Decimal, error) {
	c, err := newLoanCalc(plan)
	if err != nil {
		return decimal.Zero, err
	}
	if err := checkPeriod(plan, period); err != nil {
		return decimal.Zero, err
	}
	return c.due(period), nil
}

// LoanRemainingFromPeriod sums the due amounts of periods [from, TotalPeriods].
// from = TotalPeriods+1 yields zero.
func LoanRemainingFromPeriod(plan domain.AmortizationPlan, from int) (decimal.Decimal, error) {
	c, err := newLoanCalc(plan)
	if err != nil {
		return decimal.Zero, err
	}
	if from < 1 || from > plan.TotalPeriods+1 {
		return decimal.Zero, fmt.Errorf("%w: start period %d out of range [1, %d]", apperrors.ErrValidation, from, plan.TotalPeriods+1)
	}
	sum := decimal.Zero
	for k := from; k <= plan.TotalPeriods; k++ {
		sum = sum.Add(c.due(k))
	}
	return sum, nil
}

// LoanRemainingAmount is the canonical remaining amount: every unpaid period summed.
func LoanRemainingAmount(plan domain.AmortizationPlan) (decimal.Decimal, error) {
	return LoanRemainingFromPeriod(plan, plan.PaidPeriods+1)
}

// RepayLoanPeriod advances the plan by one period and returns the amount that period costs.
func RepayLoanPeriod(plan *domain.AmortizationPlan) (decimal.Decimal, error) {
	if plan.Completed() {
		return decimal.Zero, domain.ErrAllPeriodsPaid
	}
	due, err := LoanDueAmount(*plan, plan.PaidPeriods+1)
	if err != nil {
		return decimal.Zero, err
	}
	plan.PaidPeriods++
	return due, nil
}

// LoanSchedule lays out every period with its principal/interest split.
func LoanSchedule(plan domain.AmortizationPlan) ([]ScheduleRow, error) {
	c, err := newLoanCalc(plan)
	if err != nil {
		return nil, err
	}
	n := plan.TotalPeriods
	evenPart := RoundMoney(plan.Principal.DivRound(c.n, RatePrecision))
	outstanding := plan.Principal
	remaining := c.total
	rows := make([]ScheduleRow, 0, n)
	for k := 1; k <= n; k++ {
		payment := c.due(k)
		var principal decimal.Decimal
		switch {
		case k == n:
			principal = outstanding
		case plan.Method == domain.EqualInterest:
			principal = payment.Sub(RoundMoney(outstanding.Mul(c.rate)))
		case plan.Method == domain.InterestBeforePrincipal:
			principal = decimal.Zero
		default:
			principal = evenPart
		}
		outstanding = outstanding.Sub(principal)
		remaining = remaining.Sub(payment)
		rows = append(rows, ScheduleRow{
			Period:             k,
			Payment:            payment,
			Principal:          principal,
			Interest:           payment.Sub(principal),
			RemainingPrincipal: outstanding,
			RemainingPayment:   remaining,
			Paid:               k <= plan.PaidPeriods,
		})
	}
	return rows, nil
}
