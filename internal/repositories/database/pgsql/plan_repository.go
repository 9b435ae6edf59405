package pgsql

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
)

type amortizationPlanRepository struct {
	BaseRepository
}

var _ portsrepo.AmortizationPlanRepositoryFacade = (*amortizationPlanRepository)(nil)

const amortizationPlanColumns = `plan_id, account_id, user_id, principal, annual_rate, total_periods, paid_periods,
	method, start_date, repayment_account_id, created_at, created_by, last_updated_at, last_updated_by`

func (r *amortizationPlanRepository) find(ctx context.Context, id, where string) (*domain.AmortizationPlan, error) {
	query := `SELECT ` + amortizationPlanColumns + ` FROM amortization_plans WHERE ` + where + ` FOR UPDATE;`
	m, err := queryOne[models.AmortizationPlan](ctx, r.db, "amortization plan", id, query, id)
	if err != nil {
		return nil, err
	}
	plan := mapping.ToDomainAmortizationPlan(*m)
	return &plan, nil
}

func (r *amortizationPlanRepository) FindAmortizationPlanByID(ctx context.Context, planID string) (*domain.AmortizationPlan, error) {
	return r.find(ctx, planID, `plan_id = $1`)
}

func (r *amortizationPlanRepository) FindAmortizationPlanByAccount(ctx context.Context, accountID string) (*domain.AmortizationPlan, error) {
	return r.find(ctx, accountID, `account_id = $1`)
}

func (r *amortizationPlanRepository) SaveAmortizationPlan(ctx context.Context, plan domain.AmortizationPlan) error {
	m := mapping.ToModelAmortizationPlan(plan)
	query := `
		INSERT INTO amortization_plans (` + amortizationPlanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.PlanID, m.AccountID, m.UserID, m.Principal, m.AnnualRate, m.TotalPeriods, m.PaidPeriods,
		m.Method, m.StartDate, m.RepaymentAccountID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "amortization plan", m.PlanID, "save")
}

// UpdateAmortizationPlan persists repayment progress.
func (r *amortizationPlanRepository) UpdateAmortizationPlan(ctx context.Context, plan domain.AmortizationPlan) error {
	m := mapping.ToModelAmortizationPlan(plan)
	query := `
		UPDATE amortization_plans
		SET paid_periods = $2, repayment_account_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE plan_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.PlanID, m.PaidPeriods, m.RepaymentAccountID, m.LastUpdatedAt, m.LastUpdatedBy)
	return expectRow(tag, err, "amortization plan", m.PlanID, "update")
}

func (r *amortizationPlanRepository) DeleteAmortizationPlan(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM amortization_plans WHERE plan_id = $1;`, planID)
	return expectRow(tag, err, "amortization plan", planID, "delete")
}

type installmentPlanRepository struct {
	BaseRepository
}

var _ portsrepo.InstallmentPlanRepositoryFacade = (*installmentPlanRepository)(nil)

const installmentPlanColumns = `plan_id, account_id, user_id, ledger_id, category_id, principal, interest_rate,
	total_periods, paid_periods, strategy, included_in_current_debts, remaining_amount, start_date, note,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *installmentPlanRepository) FindInstallmentPlanByID(ctx context.Context, planID string) (*domain.InstallmentPlan, error) {
	query := `SELECT ` + installmentPlanColumns + ` FROM installment_plans WHERE plan_id = $1 FOR UPDATE;`
	m, err := queryOne[models.InstallmentPlan](ctx, r.db, "installment plan", planID, query, planID)
	if err != nil {
		return nil, err
	}
	plan := mapping.ToDomainInstallmentPlan(*m)
	return &plan, nil
}

func (r *installmentPlanRepository) ListInstallmentPlansByAccount(ctx context.Context, accountID string) ([]domain.InstallmentPlan, error) {
	query := `SELECT ` + installmentPlanColumns + ` FROM installment_plans WHERE account_id = $1 ORDER BY start_date, plan_id;`
	ms, err := queryAll[models.InstallmentPlan](ctx, r.db, "installment plans of account", accountID, query, accountID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInstallmentPlanSlice(ms), nil
}

func (r *installmentPlanRepository) SaveInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan) error {
	m := mapping.ToModelInstallmentPlan(plan)
	query := `
		INSERT INTO installment_plans (` + installmentPlanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		m.PlanID, m.AccountID, m.UserID, m.LedgerID, m.CategoryID, m.Principal, m.InterestRate,
		m.TotalPeriods, m.PaidPeriods, m.Strategy, m.IncludedInCurrentDebts, m.RemainingAmount, m.StartDate, m.Note,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "installment plan", m.PlanID, "save")
}

func (r *installmentPlanRepository) UpdateInstallmentPlan(ctx context.Context, plan domain.InstallmentPlan) error {
	m := mapping.ToModelInstallmentPlan(plan)
	query := `
		UPDATE installment_plans
		SET paid_periods = $2, included_in_current_debts = $3, remaining_amount = $4, note = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE plan_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.PlanID, m.PaidPeriods, m.IncludedInCurrentDebts, m.RemainingAmount, m.Note, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return expectRow(tag, err, "installment plan", m.PlanID, "update")
}

func (r *installmentPlanRepository) DeleteInstallmentPlan(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM installment_plans WHERE plan_id = $1;`, planID)
	return expectRow(tag, err, "installment plan", planID, "delete")
}
