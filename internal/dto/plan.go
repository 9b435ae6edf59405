package dto

import (
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to open a loan account with its repayment plan.
type CreateLoanRequest struct {
	Name               string                 `json:"name" binding:"required"`
	Principal          decimal.Decimal        `json:"principal" binding:"gte=0"`
	AnnualRate         decimal.Decimal        `json:"annualRate" binding:"gte=0"` // percent
	TotalPeriods       int                    `json:"totalPeriods" binding:"required,min=1"`
	Method             domain.RepaymentMethod `json:"method" binding:"required,oneof=EQUAL_INTEREST EQUAL_PRINCIPAL EQUAL_PRINCIPAL_AND_INTEREST INTEREST_BEFORE_PRINCIPAL"`
	StartDate          time.Time              `json:"startDate" binding:"required"`
	RepaymentAccountID *string                `json:"repaymentAccountID"`
	IncludedInNetWorth *bool                  `json:"includedInNetWorth"`
	Counterparty       string                 `json:"counterparty"`
}

// RepayPeriodRequest pays the next due period of a plan.
// FromAccountID falls back to the loan's repayment account when omitted.
type RepayPeriodRequest struct {
	FromAccountID *string    `json:"fromAccountID"`
	LedgerID      string     `json:"ledgerID" binding:"required"`
	Date          *time.Time `json:"date"`
	Note          string     `json:"note"`
}

// LoanResponse returns a loan account together with its plan.
type LoanResponse struct {
	Account AccountResponse         `json:"account"`
	Plan    domain.AmortizationPlan `json:"plan"`
	Total   decimal.Decimal         `json:"totalPayment"`
}

// LoanScheduleResponse lays out every period of a loan.
type LoanScheduleResponse struct {
	PlanID          string                   `json:"planID"`
	TotalPayment    decimal.Decimal          `json:"totalPayment"`
	RemainingAmount decimal.Decimal          `json:"remainingAmount"`
	Rows            []accounting.ScheduleRow `json:"rows"`
}

// CreateInstallmentRequest defines the data needed to split a credit-card purchase.
type CreateInstallmentRequest struct {
	AccountID              string                     `json:"accountID" binding:"required"`
	LedgerID               string                     `json:"ledgerID" binding:"required"`
	CategoryID             string                     `json:"categoryID" binding:"required"`
	Principal              decimal.Decimal            `json:"principal" binding:"gte=0"`
	InterestRate           decimal.Decimal            `json:"interestRate" binding:"gte=0"` // percent of principal
	TotalPeriods           int                        `json:"totalPeriods" binding:"required,min=1"`
	Strategy               domain.InstallmentStrategy `json:"strategy" binding:"required,oneof=EVENLY_SPLIT UPFRONT FINAL"`
	IncludedInCurrentDebts *bool                      `json:"includedInCurrentDebts"` // defaults to true
	StartDate              time.Time                  `json:"startDate" binding:"required"`
	Note                   string                     `json:"note"`
}

// RepayInstallmentRequest pays the next due period of an installment plan.
type RepayInstallmentRequest struct {
	Date *time.Time `json:"date"`
	Note string     `json:"note"`
}

// SetIncludedRequest toggles whether an installment counts towards its card's current debt.
type SetIncludedRequest struct {
	Included *bool `json:"included" binding:"required"`
}

// InstallmentResponse returns an installment plan with its derived amounts.
type InstallmentResponse struct {
	Plan         domain.InstallmentPlan `json:"plan"`
	TotalPayment decimal.Decimal        `json:"totalPayment"`
	NextDue      *decimal.Decimal       `json:"nextDue,omitempty"`
}
