package services

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
)

// LoanSvcFacade defines loan account operations.
type LoanSvcFacade interface {
	// CreateLoan opens a loan account and its plan. Periods already due at creation are
	// counted as paid.
	CreateLoan(ctx context.Context, session domain.Session, req dto.CreateLoanRequest) (*dto.LoanResponse, error)

	// RepayLoanPeriod pays the next due period and returns the recorded transfer.
	RepayLoanPeriod(ctx context.Context, session domain.Session, loanAccountID string, req dto.RepayPeriodRequest) (*domain.Transaction, error)

	GetLoanSchedule(ctx context.Context, session domain.Session, loanAccountID string) (*dto.LoanScheduleResponse, error)
}

// InstallmentSvcFacade defines credit-card installment operations.
type InstallmentSvcFacade interface {
	CreateInstallment(ctx context.Context, session domain.Session, req dto.CreateInstallmentRequest) (*dto.InstallmentResponse, error)
	GetInstallment(ctx context.Context, session domain.Session, planID string) (*dto.InstallmentResponse, error)
	ListInstallmentsByAccount(ctx context.Context, session domain.Session, accountID string) ([]dto.InstallmentResponse, error)
	RepayInstallmentPeriod(ctx context.Context, session domain.Session, planID string, req dto.RepayInstallmentRequest) (*domain.Transaction, error)
	SetIncludedInCurrentDebts(ctx context.Context, session domain.Session, planID string, included bool) (*dto.InstallmentResponse, error)
	DeleteInstallment(ctx context.Context, session domain.Session, planID string) error
}
