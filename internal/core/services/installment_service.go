package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// installmentService splits credit-card purchases into monthly installments.
//
// The unpaid part of an included plan counts towards the card's current debt. Each repaid
// period is billed to the card as an expense and released from the plan's share, so the card
// total stays the same when the plan is included.
type installmentService struct {
	BaseService
}

// NewInstallmentService creates a new InstallmentService.
func NewInstallmentService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.InstallmentSvcFacade {
	return &installmentService{BaseService: newBaseService(uow, options...)}
}

// Ensure installmentService implements the portssvc.InstallmentSvcFacade interface
var _ portssvc.InstallmentSvcFacade = (*installmentService)(nil)

func loadInstallment(ctx context.Context, store portsrepo.Store, session domain.Session, planID string) (*domain.InstallmentPlan, error) {
	plan, err := store.InstallmentPlans().FindInstallmentPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != session.UserID {
		return nil, notOwned("installment plan", planID)
	}
	return plan, nil
}

func (u *ledgerUnit) creditCard(ctx context.Context, accountID string) (*domain.Account, error) {
	card, err := u.account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if card.Kind != domain.KindCredit {
		return nil, fmt.Errorf("%w: account %s is not a credit account", apperrors.ErrValidation, accountID)
	}
	return card, nil
}

func toInstallmentResponse(plan domain.InstallmentPlan) (*dto.InstallmentResponse, error) {
	total, err := accounting.InstallmentTotalPayment(plan)
	if err != nil {
		return nil, err
	}
	res := &dto.InstallmentResponse{Plan: plan, TotalPayment: total}
	if !plan.Completed() {
		next, err := accounting.InstallmentMonthlyPayment(plan, plan.PaidPeriods+1)
		if err != nil {
			return nil, err
		}
		res.NextDue = &next
	}
	return res, nil
}

// installmentExpense is the expense a plan bills to its card.
func installmentExpense(plan *domain.InstallmentPlan, id string, amount decimal.Decimal, date, now time.Time, note string, session domain.Session) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        session.UserID,
		Kind:          domain.Expense,
		Date:          date,
		Amount:        amount,
		Note:          note,
		LedgerID:      plan.LedgerID,
		CategoryID:    &plan.CategoryID,
		FromAccountID: &plan.AccountID,
		PlanID:        &plan.PlanID,
		AuditFields:   domain.NewAuditFields(session.UserID, now),
	}
}

// CreateInstallment records a split purchase on a credit account. When the start date is in
// the past, the periods already due are counted as paid and billed as one catch-up expense.
func (s *installmentService) CreateInstallment(ctx context.Context, session domain.Session, req dto.CreateInstallmentRequest) (*dto.InstallmentResponse, error) {
	now := s.now()
	plan := domain.InstallmentPlan{
		PlanID:                 s.newID(),
		AccountID:              req.AccountID,
		UserID:                 session.UserID,
		LedgerID:               req.LedgerID,
		CategoryID:             req.CategoryID,
		Principal:              req.Principal,
		InterestRate:           req.InterestRate,
		TotalPeriods:           req.TotalPeriods,
		Strategy:               req.Strategy,
		IncludedInCurrentDebts: boolOr(req.IncludedInCurrentDebts, true),
		StartDate:              req.StartDate.UTC(),
		Note:                   req.Note,
		AuditFields:            domain.NewAuditFields(session.UserID, now),
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	plan.PaidPeriods = accounting.ElapsedPeriods(plan.StartDate, now, plan.TotalPeriods)

	total, err := accounting.InstallmentTotalPayment(plan)
	if err != nil {
		return nil, err
	}
	plan.RemainingAmount, err = accounting.InstallmentRemainingAmount(plan)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		unit := newLedgerUnit(store, session, now)
		if _, err := unit.creditCard(ctx, plan.AccountID); err != nil {
			return err
		}
		if err := store.InstallmentPlans().SaveInstallmentPlan(ctx, plan); err != nil {
			return err
		}
		if plan.IncludedInCurrentDebts {
			if err := unit.adjustCurrentDebt(ctx, plan.AccountID, plan.RemainingAmount); err != nil {
				return err
			}
		}
		catchUp := installmentExpense(&plan, s.newID(), total.Sub(plan.RemainingAmount), now, now, plan.Note, session)
		if plan.PaidPeriods == 0 {
			// nothing billed yet, but the category still has to fit the plan
			if err := unit.validate(ctx, catchUp, false); err != nil {
				return err
			}
			return unit.flush(ctx)
		}
		return unit.post(ctx, catchUp, false)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create installment", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment created",
		slog.String("plan_id", plan.PlanID),
		slog.Int("paid_periods", plan.PaidPeriods),
		slog.String("remaining", plan.RemainingAmount.String()))
	return toInstallmentResponse(plan)
}

func (s *installmentService) GetInstallment(ctx context.Context, session domain.Session, planID string) (*dto.InstallmentResponse, error) {
	var plan *domain.InstallmentPlan
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		plan, err = loadInstallment(ctx, store, session, planID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toInstallmentResponse(*plan)
}

func (s *installmentService) ListInstallmentsByAccount(ctx context.Context, session domain.Session, accountID string) ([]dto.InstallmentResponse, error) {
	var plans []domain.InstallmentPlan
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := newLedgerUnit(store, session, s.now()).creditCard(ctx, accountID); err != nil {
			return err
		}
		var err error
		plans, err = store.InstallmentPlans().ListInstallmentPlansByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}

	res := make([]dto.InstallmentResponse, 0, len(plans))
	for _, plan := range plans {
		r, err := toInstallmentResponse(plan)
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}
	return res, nil
}

// RepayInstallmentPeriod bills the next period to the card and advances the plan.
func (s *installmentService) RepayInstallmentPeriod(ctx context.Context, session domain.Session, planID string, req dto.RepayInstallmentRequest) (*domain.Transaction, error) {
	now := s.now()
	var txn domain.Transaction

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		plan, err := loadInstallment(ctx, store, session, planID)
		if err != nil {
			return err
		}
		unit := newLedgerUnit(store, session, now)
		if _, err := unit.creditCard(ctx, plan.AccountID); err != nil {
			return err
		}

		due, err := accounting.RepayInstallmentPeriod(plan)
		if err != nil {
			return err
		}
		date := now
		if req.Date != nil {
			date = req.Date.UTC()
		}
		note := req.Note
		if note == "" {
			note = plan.Note
		}
		txn = installmentExpense(plan, s.newID(), due, date, now, note, session)

		if err := unit.validate(ctx, txn, false); err != nil {
			return err
		}
		if err := unit.apply(ctx, txn, false); err != nil {
			return err
		}
		if plan.IncludedInCurrentDebts {
			if err := unit.adjustCurrentDebt(ctx, plan.AccountID, due.Neg()); err != nil {
				return err
			}
		}
		if err := unit.flush(ctx); err != nil {
			return err
		}
		plan.Touch(session.UserID, now)
		if err := store.InstallmentPlans().UpdateInstallmentPlan(ctx, *plan); err != nil {
			return err
		}
		return store.Transactions().InsertTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to repay installment period", slog.String("plan_id", planID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment period repaid", slog.String("plan_id", planID), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// SetIncludedInCurrentDebts adds or removes the plan's unpaid amount from its card's current debt.
func (s *installmentService) SetIncludedInCurrentDebts(ctx context.Context, session domain.Session, planID string, included bool) (*dto.InstallmentResponse, error) {
	now := s.now()
	var plan *domain.InstallmentPlan

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		plan, err = loadInstallment(ctx, store, session, planID)
		if err != nil {
			return err
		}
		if plan.IncludedInCurrentDebts == included {
			return nil
		}
		delta := plan.RemainingAmount
		if !included {
			delta = delta.Neg()
		}
		unit := newLedgerUnit(store, session, now)
		if err := unit.adjustCurrentDebt(ctx, plan.AccountID, delta); err != nil {
			return err
		}
		if err := unit.flush(ctx); err != nil {
			return err
		}
		plan.IncludedInCurrentDebts = included
		plan.Touch(session.UserID, now)
		return store.InstallmentPlans().UpdateInstallmentPlan(ctx, *plan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to toggle installment inclusion", slog.String("plan_id", planID))
		return nil, err
	}
	return toInstallmentResponse(*plan)
}

// DeleteInstallment removes a plan and releases its unpaid amount from the card. Expenses it
// already billed stay on the card.
func (s *installmentService) DeleteInstallment(ctx context.Context, session domain.Session, planID string) error {
	now := s.now()
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		plan, err := loadInstallment(ctx, store, session, planID)
		if err != nil {
			return err
		}
		if plan.IncludedInCurrentDebts {
			unit := newLedgerUnit(store, session, now)
			if err := unit.adjustCurrentDebt(ctx, plan.AccountID, plan.RemainingAmount.Neg()); err != nil {
				return err
			}
			if err := unit.flush(ctx); err != nil {
				return err
			}
		}
		return store.InstallmentPlans().DeleteInstallmentPlan(ctx, planID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete installment", slog.String("plan_id", planID))
		return err
	}

	s.LogInfo(ctx, "Installment deleted", slog.String("plan_id", planID))
	return nil
}
