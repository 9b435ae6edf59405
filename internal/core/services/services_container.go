package services

import (
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every service shares the same unit of work and options (clock, ID generator).
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.UnitOfWork, options...),
		Transaction: NewTransactionService(repos.UnitOfWork, options...),
		Loan:        NewLoanService(repos.UnitOfWork, options...),
		Installment: NewInstallmentService(repos.UnitOfWork, options...),
		Budget:      NewBudgetService(repos.UnitOfWork, options...),
		Ledger:      NewLedgerService(repos.UnitOfWork, options...),
	}
}
