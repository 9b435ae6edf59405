package dto

import (
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Which amount fields apply depends on Kind; loans are created through CreateLoanRequest.
type CreateAccountRequest struct {
	Name               string             `json:"name" binding:"required"`
	Kind               domain.AccountKind `json:"kind" binding:"required,oneof=CASH BASIC DEBIT CREDIT BORROWING LENDING"`
	IncludedInNetWorth *bool              `json:"includedInNetWorth"` // defaults to true
	Selectable         *bool              `json:"selectable"`         // defaults to true
	Hidden             bool               `json:"hidden"`
	Balance            *decimal.Decimal   `json:"balance"`                               // asset opening balance
	CreditLimit        *decimal.Decimal   `json:"creditLimit" binding:"omitempty,gte=0"` // CREDIT
	CurrentDebt        *decimal.Decimal   `json:"currentDebt" binding:"omitempty,gte=0"` // CREDIT
	Principal          *decimal.Decimal   `json:"principal" binding:"omitempty,gte=0"`   // BORROWING, LENDING
	Counterparty       string             `json:"counterparty"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID          string               `json:"accountID"`
	Name               string               `json:"name"`
	Kind               domain.AccountKind   `json:"kind"`
	IncludedInNetWorth bool                 `json:"includedInNetWorth"`
	Selectable         bool                 `json:"selectable"`
	Hidden             bool                 `json:"hidden"`
	Status             domain.AccountStatus `json:"status,omitempty"`
	Balance            *decimal.Decimal     `json:"balance,omitempty"`
	Credit             *domain.CreditState  `json:"credit,omitempty"`
	Debt               *domain.DebtState    `json:"debt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy      string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	res := AccountResponse{
		AccountID:          acc.AccountID,
		Name:               acc.Name,
		Kind:               acc.Kind,
		IncludedInNetWorth: acc.IncludedInNetWorth,
		Selectable:         acc.Selectable,
		Hidden:             acc.Hidden,
		Status:             acc.Status,
		Credit:             acc.Credit,
		Debt:               acc.Debt,
		CreatedAt:          acc.CreatedAt,
		CreatedBy:          acc.CreatedBy,
		LastUpdatedAt:      acc.LastUpdatedAt,
		LastUpdatedBy:      acc.LastUpdatedBy,
	}
	if acc.Kind.IsAsset() {
		balance := acc.Balance
		res.Balance = &balance
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// RepayDebtRequest settles part of a borrowing or lending account through a cash-like account.
type RepayDebtRequest struct {
	AccountID string           `json:"accountID" binding:"required"` // paying or receiving account
	LedgerID  string           `json:"ledgerID" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	Date      *time.Time       `json:"date"`
	Note      string           `json:"note"`
}
