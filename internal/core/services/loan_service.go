package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
)

// loanService opens loan accounts and pays them down period by period.
type loanService struct {
	BaseService
}

// NewLoanService creates a new LoanService.
func NewLoanService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.LoanSvcFacade {
	return &loanService{BaseService: newBaseService(uow, options...)}
}

// Ensure loanService implements the portssvc.LoanSvcFacade interface
var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// loadLoan returns the loan account and its plan, both owned by the session user.
func loadLoan(ctx context.Context, unit *ledgerUnit, loanAccountID string) (*domain.Account, *domain.AmortizationPlan, error) {
	acc, err := unit.account(ctx, loanAccountID)
	if err != nil {
		return nil, nil, err
	}
	if acc.Kind != domain.KindLoan {
		return nil, nil, fmt.Errorf("%w: account %s is not a loan", apperrors.ErrValidation, loanAccountID)
	}
	plan, err := unit.store.AmortizationPlans().FindAmortizationPlanByAccount(ctx, loanAccountID)
	if err != nil {
		return nil, nil, err
	}
	return acc, plan, nil
}

// CreateLoan opens a LOAN account with its amortization plan. Periods whose due date is
// already behind today are counted as paid, and the account starts at the canonical
// remaining amount.
func (s *loanService) CreateLoan(ctx context.Context, session domain.Session, req dto.CreateLoanRequest) (*dto.LoanResponse, error) {
	now := s.now()
	audit := domain.NewAuditFields(session.UserID, now)
	plan := domain.AmortizationPlan{
		PlanID:             s.newID(),
		AccountID:          s.newID(),
		UserID:             session.UserID,
		Principal:          req.Principal,
		AnnualRate:         req.AnnualRate,
		TotalPeriods:       req.TotalPeriods,
		Method:             req.Method,
		StartDate:          req.StartDate.UTC(),
		RepaymentAccountID: req.RepaymentAccountID,
		AuditFields:        audit,
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	plan.PaidPeriods = accounting.ElapsedPeriods(plan.StartDate, now, plan.TotalPeriods)

	total, err := accounting.LoanTotalPayment(plan)
	if err != nil {
		return nil, err
	}
	remaining, err := accounting.LoanRemainingAmount(plan)
	if err != nil {
		return nil, err
	}

	acc := domain.Account{
		AccountID:          plan.AccountID,
		UserID:             session.UserID,
		Name:               req.Name,
		Kind:               domain.KindLoan,
		IncludedInNetWorth: boolOr(req.IncludedInNetWorth, true),
		Selectable:         false,
		Debt: &domain.DebtState{
			Principal:       req.Principal,
			RemainingAmount: remaining,
			Counterparty:    req.Counterparty,
		},
		AuditFields: audit,
	}
	acc.DeriveStatus()

	err = s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if plan.RepaymentAccountID != nil {
			repayFrom, err := newLedgerUnit(store, session, now).account(ctx, *plan.RepaymentAccountID)
			if err != nil {
				return err
			}
			if !repayFrom.Kind.IsAsset() {
				return fmt.Errorf("%w: repayment account %s must be a cash or bank account", apperrors.ErrValidation, repayFrom.AccountID)
			}
		}
		if err := store.Accounts().SaveAccount(ctx, acc); err != nil {
			return err
		}
		return store.AmortizationPlans().SaveAmortizationPlan(ctx, plan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create loan", slog.String("method", string(plan.Method)))
		return nil, err
	}

	s.LogInfo(ctx, "Loan created",
		slog.String("account_id", acc.AccountID),
		slog.String("plan_id", plan.PlanID),
		slog.Int("paid_periods", plan.PaidPeriods),
		slog.String("remaining", remaining.String()))
	return &dto.LoanResponse{Account: dto.ToAccountResponse(&acc), Plan: plan, Total: total}, nil
}

// RepayLoanPeriod transfers the next period's due amount into the loan account and advances
// the plan. After the transfer the account must hold exactly the recomputed remaining amount.
func (s *loanService) RepayLoanPeriod(ctx context.Context, session domain.Session, loanAccountID string, req dto.RepayPeriodRequest) (*domain.Transaction, error) {
	now := s.now()
	var txn domain.Transaction

	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		unit := newLedgerUnit(store, session, now)
		loan, plan, err := loadLoan(ctx, unit, loanAccountID)
		if err != nil {
			return err
		}

		fromID := req.FromAccountID
		if fromID == nil {
			fromID = plan.RepaymentAccountID
		}
		if fromID == nil {
			return fmt.Errorf("%w: loan %s has no repayment account", apperrors.ErrValidation, loanAccountID)
		}
		from, err := unit.account(ctx, *fromID)
		if err != nil {
			return err
		}
		if !from.Kind.IsAsset() {
			return fmt.Errorf("%w: repayment account %s must be a cash or bank account", apperrors.ErrValidation, from.AccountID)
		}

		due, err := accounting.RepayLoanPeriod(plan)
		if err != nil {
			return err
		}
		txn = domain.Transaction{
			TransactionID: s.newID(),
			UserID:        session.UserID,
			Kind:          domain.Transfer,
			Date:          now,
			Amount:        due,
			Note:          req.Note,
			LedgerID:      req.LedgerID,
			FromAccountID: &from.AccountID,
			ToAccountID:   &loan.AccountID,
			PlanID:        &plan.PlanID,
			AuditFields:   domain.NewAuditFields(session.UserID, now),
		}
		if req.Date != nil {
			txn.Date = req.Date.UTC()
		}

		if err := unit.validate(ctx, txn, false); err != nil {
			return err
		}
		if err := unit.apply(ctx, txn, false); err != nil {
			return err
		}
		canonical, err := accounting.LoanRemainingAmount(*plan)
		if err != nil {
			return err
		}
		if !loan.Debt.RemainingAmount.Equal(canonical) {
			return fmt.Errorf("%w: loan %s remaining %s drifted from schedule %s",
				apperrors.ErrConsistencyViolation, loan.AccountID, loan.Debt.RemainingAmount, canonical)
		}
		if err := unit.flush(ctx); err != nil {
			return err
		}
		plan.Touch(session.UserID, now)
		if err := store.AmortizationPlans().UpdateAmortizationPlan(ctx, *plan); err != nil {
			return err
		}
		return store.Transactions().InsertTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to repay loan period", slog.String("account_id", loanAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan period repaid", slog.String("account_id", loanAccountID), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// GetLoanSchedule lays out every period of the loan's plan.
func (s *loanService) GetLoanSchedule(ctx context.Context, session domain.Session, loanAccountID string) (*dto.LoanScheduleResponse, error) {
	var res *dto.LoanScheduleResponse
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		loan, plan, err := loadLoan(ctx, newLedgerUnit(store, session, s.now()), loanAccountID)
		if err != nil {
			return err
		}
		total, err := accounting.LoanTotalPayment(*plan)
		if err != nil {
			return err
		}
		rows, err := accounting.LoanSchedule(*plan)
		if err != nil {
			return err
		}
		res = &dto.LoanScheduleResponse{
			PlanID:          plan.PlanID,
			TotalPayment:    total,
			RemainingAmount: loan.Debt.RemainingAmount,
			Rows:            rows,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
