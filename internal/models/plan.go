package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationPlan is a loan repayment plan row.
type AmortizationPlan struct {
	PlanID             string          `db:"plan_id"`
	AccountID          string          `db:"account_id"`
	UserID             string          `db:"user_id"`
	Principal          decimal.Decimal `db:"principal"`
	AnnualRate         decimal.Decimal `db:"annual_rate"`
	TotalPeriods       int             `db:"total_periods"`
	PaidPeriods        int             `db:"paid_periods"`
	Method             string          `db:"method"`
	StartDate          time.Time       `db:"start_date"`
	RepaymentAccountID *string         `db:"repayment_account_id"`
	AuditFields
}

// InstallmentPlan is a credit-card installment plan row.
type InstallmentPlan struct {
	PlanID                 string          `db:"plan_id"`
	AccountID              string          `db:"account_id"`
	UserID                 string          `db:"user_id"`
	LedgerID               string          `db:"ledger_id"`
	CategoryID             string          `db:"category_id"`
	Principal              decimal.Decimal `db:"principal"`
	InterestRate           decimal.Decimal `db:"interest_rate"`
	TotalPeriods           int             `db:"total_periods"`
	PaidPeriods            int             `db:"paid_periods"`
	Strategy               string          `db:"strategy"`
	IncludedInCurrentDebts bool            `db:"included_in_current_debts"`
	RemainingAmount        decimal.Decimal `db:"remaining_amount"`
	StartDate              time.Time       `db:"start_date"`
	Note                   string          `db:"note"`
	AuditFields
}
