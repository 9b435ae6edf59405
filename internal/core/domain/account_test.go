package domain_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		wantErr bool
	}{
		{"cash", domain.Account{Kind: domain.KindCash}, false},
		{"credit with state", domain.Account{Kind: domain.KindCredit, Credit: &domain.CreditState{}}, false},
		{"credit without state", domain.Account{Kind: domain.KindCredit}, true},
		{"loan with debt state", domain.Account{Kind: domain.KindLoan, Debt: &domain.DebtState{}}, false},
		{"borrowing with credit state", domain.Account{Kind: domain.KindBorrowing, Debt: &domain.DebtState{}, Credit: &domain.CreditState{}}, true},
		{"asset with debt state", domain.Account{Kind: domain.KindDebit, Debt: &domain.DebtState{}}, true},
		{"unknown kind", domain.Account{Kind: "BROKERAGE"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAccount_DeriveStatus(t *testing.T) {
	acc := domain.Account{
		Kind: domain.KindBorrowing,
		Debt: &domain.DebtState{RemainingAmount: decimal.RequireFromString("-0.01")},
	}
	acc.DeriveStatus()
	assert.Equal(t, domain.StatusEnded, acc.Status)
	assert.True(t, acc.Debt.RemainingAmount.IsZero())
	assert.True(t, acc.TrackedAmount().IsZero())

	acc.Debt.RemainingAmount = decimal.NewFromInt(5)
	acc.DeriveStatus()
	assert.Equal(t, domain.StatusActive, acc.Status)

	cash := domain.Account{Kind: domain.KindCash, Balance: decimal.NewFromInt(-3)}
	cash.DeriveStatus()
	assert.Empty(t, cash.Status)
	assert.True(t, decimal.NewFromInt(-3).Equal(cash.TrackedAmount()))
}

func TestAccount_CloneIsDeep(t *testing.T) {
	orig := domain.Account{
		Kind:   domain.KindCredit,
		Credit: &domain.CreditState{CurrentDebt: decimal.NewFromInt(10)},
	}
	clone := orig.Clone()
	clone.Credit.CurrentDebt = decimal.NewFromInt(99)

	assert.True(t, decimal.NewFromInt(10).Equal(orig.Credit.CurrentDebt))
}
