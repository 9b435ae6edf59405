package accounting_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedDelta(t *testing.T) {
	amount := dec("10")
	tests := []struct {
		kind      domain.AccountKind
		direction domain.Direction
		want      string
	}{
		{domain.KindCash, domain.Credit, "10"},
		{domain.KindCash, domain.Debit, "-10"},
		{domain.KindBasic, domain.Credit, "10"},
		{domain.KindDebit, domain.Debit, "-10"},
		{domain.KindLending, domain.Credit, "10"},
		{domain.KindLending, domain.Debit, "-10"},
		{domain.KindCredit, domain.Credit, "-10"},
		{domain.KindCredit, domain.Debit, "10"},
		{domain.KindLoan, domain.Credit, "-10"},
		{domain.KindLoan, domain.Debit, "10"},
		{domain.KindBorrowing, domain.Credit, "-10"},
		{domain.KindBorrowing, domain.Debit, "10"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"_"+string(tt.direction), func(t *testing.T) {
			got, err := accounting.SignedDelta(tt.kind, tt.direction, amount)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := accounting.SignedDelta("SAVINGS", domain.Credit, amount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = accounting.SignedDelta(domain.KindCash, "SIDEWAYS", amount)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyDelta_AssetNeverClamped(t *testing.T) {
	acc := &domain.Account{AccountID: "a1", Kind: domain.KindBasic, Balance: dec("5")}

	require.NoError(t, accounting.ApplyDelta(acc, domain.Debit, dec("7.50")))
	assert.True(t, dec("-2.50").Equal(acc.Balance))
	assert.Empty(t, acc.Status)
}

func TestApplyDelta_StatusDerivation(t *testing.T) {
	loan := &domain.Account{
		AccountID: "l1",
		Kind:      domain.KindLoan,
		Debt:      &domain.DebtState{Principal: dec("100"), RemainingAmount: dec("100")},
	}

	require.NoError(t, accounting.ApplyDelta(loan, domain.Credit, dec("40")))
	assert.True(t, dec("60").Equal(loan.Debt.RemainingAmount))
	assert.Equal(t, domain.StatusActive, loan.Status)

	err := accounting.ApplyDelta(loan, domain.Credit, dec("60.01"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, dec("60").Equal(loan.Debt.RemainingAmount), "untouched, got %s", loan.Debt.RemainingAmount)
	assert.Equal(t, domain.StatusActive, loan.Status)

	require.NoError(t, accounting.ApplyDelta(loan, domain.Credit, dec("60")))
	assert.True(t, loan.Debt.RemainingAmount.IsZero())
	assert.Equal(t, domain.StatusEnded, loan.Status)

	require.NoError(t, accounting.ApplyDelta(loan, domain.Debit, dec("1")))
	assert.Equal(t, domain.StatusActive, loan.Status)

	lending := &domain.Account{
		AccountID: "d1",
		Kind:      domain.KindLending,
		Debt:      &domain.DebtState{Principal: dec("20"), RemainingAmount: dec("20")},
	}
	require.NoError(t, accounting.ApplyDelta(lending, domain.Debit, dec("20")))
	assert.True(t, lending.Debt.RemainingAmount.IsZero())
	assert.Equal(t, domain.StatusEnded, lending.Status)
}

func TestApplyDelta_CreditAccount(t *testing.T) {
	card := &domain.Account{
		AccountID: "c1",
		Kind:      domain.KindCredit,
		Credit:    &domain.CreditState{CreditLimit: dec("1000"), CurrentDebt: decimal.Zero},
	}

	require.NoError(t, accounting.ApplyDelta(card, domain.Debit, dec("250")))
	assert.True(t, dec("250").Equal(card.Credit.CurrentDebt))
	assert.Equal(t, domain.StatusActive, card.Status)

	assert.ErrorIs(t, accounting.ApplyDelta(card, domain.Credit, dec("250.01")), apperrors.ErrValidation)
	assert.ErrorIs(t, accounting.AdjustCurrentDebt(card, dec("-300")), apperrors.ErrValidation)
	assert.True(t, dec("250").Equal(card.Credit.CurrentDebt))

	require.NoError(t, accounting.AdjustCurrentDebt(card, dec("-250")))
	assert.True(t, card.Credit.CurrentDebt.IsZero())
	assert.Equal(t, domain.StatusEnded, card.Status)

	require.NoError(t, accounting.AdjustCurrentDebt(card, dec("40")))
	require.NoError(t, accounting.AdjustCurrentDebt(card, dec("-40")))
	assert.True(t, card.Credit.CurrentDebt.IsZero())
}

func TestApplyDelta_Rejects(t *testing.T) {
	acc := &domain.Account{AccountID: "a1", Kind: domain.KindCash}
	assert.ErrorIs(t, accounting.ApplyDelta(acc, domain.Credit, dec("-1")), apperrors.ErrValidation)

	broken := &domain.Account{AccountID: "l2", Kind: domain.KindLoan}
	assert.ErrorIs(t, accounting.ApplyDelta(broken, domain.Credit, dec("1")), apperrors.ErrValidation)

	assert.ErrorIs(t, accounting.AdjustCurrentDebt(acc, dec("1")), apperrors.ErrValidation)
}
