package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ErrAllPeriodsPaid is returned when a period repayment is requested on a completed plan.
var ErrAllPeriodsPaid = fmt.Errorf("%w: all periods already paid", apperrors.ErrConflict)

// RepaymentMethod selects the loan amortization formula.
type RepaymentMethod string

const (
	EqualInterest             RepaymentMethod = "EQUAL_INTEREST" // annuity
	EqualPrincipal            RepaymentMethod = "EQUAL_PRINCIPAL"
	EqualPrincipalAndInterest RepaymentMethod = "EQUAL_PRINCIPAL_AND_INTEREST" // flat rate
	InterestBeforePrincipal   RepaymentMethod = "INTEREST_BEFORE_PRINCIPAL"
)

// AmortizationPlan is the repayment schedule attached to a LOAN account.
type AmortizationPlan struct {
	PlanID             string          `json:"planID"`
	AccountID          string          `json:"accountID"`
	UserID             string          `json:"userID"`
	Principal          decimal.Decimal `json:"principal"`
	AnnualRate         decimal.Decimal `json:"annualRate"` // percent per year
	TotalPeriods       int             `json:"totalPeriods"`
	PaidPeriods        int             `json:"paidPeriods"`
	Method             RepaymentMethod `json:"method"`
	StartDate          time.Time       `json:"startDate"`
	RepaymentAccountID *string         `json:"repaymentAccountID,omitempty"`
	AuditFields
}

// Completed reports whether every period has been paid.
func (p AmortizationPlan) Completed() bool {
	return p.PaidPeriods >= p.TotalPeriods
}

// Validate checks the plan inputs the schedule math relies on.
func (p AmortizationPlan) Validate() error {
	switch p.Method {
	case EqualInterest, EqualPrincipal, EqualPrincipalAndInterest, InterestBeforePrincipal:
	default:
		return fmt.Errorf("%w: unknown repayment method %q", apperrors.ErrValidation, p.Method)
	}
	return validatePlanShape(p.Principal, p.AnnualRate, p.TotalPeriods, p.PaidPeriods)
}

// InstallmentStrategy selects how the flat interest is distributed over the periods.
type InstallmentStrategy string

const (
	EvenlySplit InstallmentStrategy = "EVENLY_SPLIT"
	Upfront     InstallmentStrategy = "UPFRONT"
	Final       InstallmentStrategy = "FINAL"
)

// InstallmentPlan splits a credit-card purchase over a number of periods.
type InstallmentPlan struct {
	PlanID                 string              `json:"planID"`
	AccountID              string              `json:"accountID"` // CREDIT account
	UserID                 string              `json:"userID"`
	LedgerID               string              `json:"ledgerID"`
	CategoryID             string              `json:"categoryID"`
	Principal              decimal.Decimal     `json:"principal"`
	InterestRate           decimal.Decimal     `json:"interestRate"` // percent of principal, not compounded
	TotalPeriods           int                 `json:"totalPeriods"`
	PaidPeriods            int                 `json:"paidPeriods"`
	Strategy               InstallmentStrategy `json:"strategy"`
	IncludedInCurrentDebts bool                `json:"includedInCurrentDebts"`
	RemainingAmount        decimal.Decimal     `json:"remainingAmount"`
	StartDate              time.Time           `json:"startDate"`
	Note                   string              `json:"note"`
	AuditFields
}

// Completed reports whether every period has been paid.
func (p InstallmentPlan) Completed() bool {
	return p.PaidPeriods >= p.TotalPeriods
}

// Validate checks the plan inputs the schedule math relies on.
func (p InstallmentPlan) Validate() error {
	switch p.Strategy {
	case EvenlySplit, Upfront, Final:
	default:
		return fmt.Errorf("%w: unknown installment strategy %q", apperrors.ErrValidation, p.Strategy)
	}
	return validatePlanShape(p.Principal, p.InterestRate, p.TotalPeriods, p.PaidPeriods)
}

func validatePlanShape(principal, rate decimal.Decimal, total, paid int) error {
	if total < 1 {
		return fmt.Errorf("%w: total periods must be at least 1", apperrors.ErrValidation)
	}
	if paid < 0 || paid > total {
		return fmt.Errorf("%w: paid periods %d out of range [0, %d]", apperrors.ErrValidation, paid, total)
	}
	if principal.IsNegative() {
		return fmt.Errorf("%w: principal cannot be negative", apperrors.ErrValidation)
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: rate cannot be negative", apperrors.ErrValidation)
	}
	return nil
}
