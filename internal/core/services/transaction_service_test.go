package services_test

import (
	"testing"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	ledgerSuite
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) TestCreateExpense_UpdatesAccountAndAggregates() {
	txn := s.expense("120", s.cash, s.now)

	s.Equal("user_1", txn.UserID)
	s.Equal(s.now, txn.CreatedAt)
	s.assertAmount("880", s.account(s.cash.AccountID).Balance)
	s.assertAmount("120", s.categoryTotal(s.food.CategoryID))
	s.assertAmount("120", s.ledgerState().TotalExpense)
	s.assertAmount("0", s.ledgerState().TotalIncome)

	stored, err := s.svc.Transaction.GetTransactionByID(s.ctx, s.session, txn.TransactionID)
	s.Require().NoError(err)
	s.Equal(*txn, *stored)
}

func (s *TransactionServiceSuite) TestCreateIncome() {
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, dto.TransactionRequest{
		Kind:        domain.Income,
		Date:        s.now,
		Amount:      amt("3000"),
		LedgerID:    s.ledger.LedgerID,
		CategoryID:  &s.salary.CategoryID,
		ToAccountID: &s.bank.AccountID,
	})
	s.Require().NoError(err)

	s.assertAmount("8000", s.account(s.bank.AccountID).Balance)
	s.assertAmount("3000", s.categoryTotal(s.salary.CategoryID))
	s.assertAmount("3000", s.ledgerState().TotalIncome)
}

func (s *TransactionServiceSuite) TestCreditCardPolarity() {
	s.Equal(domain.StatusEnded, s.account(s.card.AccountID).Status)

	s.expense("300", s.card, s.now)
	card := s.account(s.card.AccountID)
	s.assertAmount("300", card.Credit.CurrentDebt)
	s.Equal(domain.StatusActive, card.Status)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("200", s.bank, s.card))
	s.Require().NoError(err)
	s.assertAmount("100", s.account(s.card.AccountID).Credit.CurrentDebt)
	s.assertAmount("4800", s.account(s.bank.AccountID).Balance)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("150", s.bank, s.card))
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertAmount("100", s.account(s.card.AccountID).Credit.CurrentDebt)
	s.assertAmount("4800", s.account(s.bank.AccountID).Balance)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("100", s.bank, s.card))
	s.Require().NoError(err)
	card = s.account(s.card.AccountID)
	s.True(card.Credit.CurrentDebt.IsZero())
	s.Equal(domain.StatusEnded, card.Status)
	s.assertAmount("4700", s.account(s.bank.AccountID).Balance)
}

func (s *TransactionServiceSuite) TestCreditCardPayment_DeleteRestoresDebt() {
	s.expense("100", s.card, s.now)
	payment, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("100", s.bank, s.card))
	s.Require().NoError(err)
	s.Equal(domain.StatusEnded, s.account(s.card.AccountID).Status)

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, s.session, payment.TransactionID))
	card := s.account(s.card.AccountID)
	s.assertAmount("100", card.Credit.CurrentDebt)
	s.Equal(domain.StatusActive, card.Status)
	s.assertAmount("5000", s.account(s.bank.AccountID).Balance)
}

func (s *TransactionServiceSuite) TestCreditCardExpense_DeleteAfterPaymentRejected() {
	purchase := s.expense("100", s.card, s.now)
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("100", s.bank, s.card))
	s.Require().NoError(err)

	// removing the purchase would leave the card owing -100
	err = s.svc.Transaction.DeleteTransaction(s.ctx, s.session, purchase.TransactionID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.True(s.account(s.card.AccountID).Credit.CurrentDebt.IsZero())
	s.assertAmount("100", s.categoryTotal(s.food.CategoryID))

	_, err = s.svc.Transaction.GetTransactionByID(s.ctx, s.session, purchase.TransactionID)
	s.NoError(err)
}

func (s *TransactionServiceSuite) TestCreditCardEdit_NetsEffectsBeforeFloor() {
	purchase := s.expense("100", s.card, s.now)
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("100", s.bank, s.card))
	s.Require().NoError(err)

	// reversing first would dip to -100; the net change is +20
	_, err = s.svc.Transaction.EditTransaction(s.ctx, s.session, purchase.TransactionID, s.expenseRequest("120", s.card, s.food, s.now))
	s.Require().NoError(err)
	card := s.account(s.card.AccountID)
	s.assertAmount("20", card.Credit.CurrentDebt)
	s.Equal(domain.StatusActive, card.Status)
	s.assertAmount("120", s.categoryTotal(s.food.CategoryID))

	_, err = s.svc.Transaction.EditTransaction(s.ctx, s.session, purchase.TransactionID, s.expenseRequest("80", s.card, s.food, s.now))
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertAmount("20", s.account(s.card.AccountID).Credit.CurrentDebt)
	s.assertAmount("120", s.categoryTotal(s.food.CategoryID))
}

func (s *TransactionServiceSuite) TestEdit_RoundTripRestoresState() {
	txn := s.expense("120", s.cash, s.now)
	original := s.expenseRequest("120", s.cash, s.food, s.now)

	edited, err := s.svc.Transaction.EditTransaction(s.ctx, s.session, txn.TransactionID, s.expenseRequest("75", s.bank, s.food, s.now))
	s.Require().NoError(err)
	s.Equal(txn.TransactionID, edited.TransactionID)
	s.Equal(txn.CreatedAt, edited.CreatedAt)
	s.assertAmount("1000", s.account(s.cash.AccountID).Balance)
	s.assertAmount("4925", s.account(s.bank.AccountID).Balance)
	s.assertAmount("75", s.categoryTotal(s.food.CategoryID))
	s.assertAmount("75", s.ledgerState().TotalExpense)

	_, err = s.svc.Transaction.EditTransaction(s.ctx, s.session, txn.TransactionID, original)
	s.Require().NoError(err)
	s.assertAmount("880", s.account(s.cash.AccountID).Balance)
	s.assertAmount("5000", s.account(s.bank.AccountID).Balance)
	s.assertAmount("120", s.categoryTotal(s.food.CategoryID))
	s.assertAmount("120", s.ledgerState().TotalExpense)
}

func (s *TransactionServiceSuite) TestEdit_ChangesKind() {
	txn := s.expense("50", s.cash, s.now)

	_, err := s.svc.Transaction.EditTransaction(s.ctx, s.session, txn.TransactionID, s.transferRequest("50", s.cash, s.bank))
	s.Require().NoError(err)
	s.assertAmount("950", s.account(s.cash.AccountID).Balance)
	s.assertAmount("5050", s.account(s.bank.AccountID).Balance)
	s.assertAmount("0", s.categoryTotal(s.food.CategoryID))
	s.assertAmount("0", s.ledgerState().TotalExpense)
}

func (s *TransactionServiceSuite) TestDelete_AppliesInverse() {
	txn := s.expense("120", s.cash, s.now)

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, s.session, txn.TransactionID))
	s.assertAmount("1000", s.account(s.cash.AccountID).Balance)
	s.assertAmount("0", s.categoryTotal(s.food.CategoryID))
	s.assertAmount("0", s.ledgerState().TotalExpense)

	_, err := s.svc.Transaction.GetTransactionByID(s.ctx, s.session, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.Transaction.DeleteTransaction(s.ctx, s.session, txn.TransactionID), apperrors.ErrNotFound)
}

func (s *TransactionServiceSuite) TestCreate_FailedWriteLeavesNoTrace() {
	// the second account write of the transfer fails
	s.store.FailOn("UpdateAccount", 1)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("100", s.cash, s.bank))
	s.Require().ErrorIs(err, apperrors.ErrPersistence)

	s.assertAmount("1000", s.account(s.cash.AccountID).Balance)
	s.assertAmount("5000", s.account(s.bank.AccountID).Balance)
	txns, err := s.svc.Transaction.ListTransactionsByLedger(s.ctx, s.session, s.ledger.LedgerID)
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *TransactionServiceSuite) TestEdit_FailedWriteKeepsOldEffect() {
	txn := s.expense("120", s.cash, s.now)
	s.store.FailOn("UpdateTransaction", 0)

	_, err := s.svc.Transaction.EditTransaction(s.ctx, s.session, txn.TransactionID, s.expenseRequest("75", s.bank, s.food, s.now))
	s.Require().ErrorIs(err, apperrors.ErrPersistence)

	s.assertAmount("880", s.account(s.cash.AccountID).Balance)
	s.assertAmount("5000", s.account(s.bank.AccountID).Balance)
	s.assertAmount("120", s.categoryTotal(s.food.CategoryID))
	stored, err := s.svc.Transaction.GetTransactionByID(s.ctx, s.session, txn.TransactionID)
	s.Require().NoError(err)
	s.assertAmount("120", stored.Amount)
}

func (s *TransactionServiceSuite) TestDelete_FailedCommitKeepsEverything() {
	txn := s.expense("120", s.cash, s.now)
	s.store.FailOn("Commit", 0)

	s.Require().ErrorIs(s.svc.Transaction.DeleteTransaction(s.ctx, s.session, txn.TransactionID), apperrors.ErrPersistence)
	s.assertAmount("880", s.account(s.cash.AccountID).Balance)
	_, err := s.svc.Transaction.GetTransactionByID(s.ctx, s.session, txn.TransactionID)
	s.NoError(err)
}

func (s *TransactionServiceSuite) TestCreate_Rejections() {
	tests := []struct {
		name string
		req  dto.TransactionRequest
		want error
	}{
		{
			name: "income into an expense category",
			req: dto.TransactionRequest{
				Kind: domain.Income, Date: s.now, Amount: amt("10"), LedgerID: s.ledger.LedgerID,
				CategoryID: &s.food.CategoryID, ToAccountID: &s.cash.AccountID,
			},
			want: apperrors.ErrValidation,
		},
		{
			name: "negative amount",
			req:  s.expenseRequest("-1", s.cash, s.food, s.now),
			want: apperrors.ErrValidation,
		},
		{
			name: "unknown account",
			req: dto.TransactionRequest{
				Kind: domain.Expense, Date: s.now, Amount: amt("10"), LedgerID: s.ledger.LedgerID,
				CategoryID: &s.food.CategoryID, FromAccountID: strPtr("missing"),
			},
			want: apperrors.ErrNotFound,
		},
		{
			name: "unknown ledger",
			req: dto.TransactionRequest{
				Kind: domain.Transfer, Date: s.now, Amount: amt("10"), LedgerID: "missing",
				FromAccountID: &s.cash.AccountID, ToAccountID: &s.bank.AccountID,
			},
			want: apperrors.ErrNotFound,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, tt.req)
			s.ErrorIs(err, tt.want)
		})
	}
	s.assertAmount("1000", s.account(s.cash.AccountID).Balance)
}

func (s *TransactionServiceSuite) TestCreate_NonSelectableAccount() {
	savings := s.createAccount(dto.CreateAccountRequest{
		Name: "Savings", Kind: domain.KindBasic, Balance: amt("100"), Selectable: new(bool),
	})

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.expenseRequest("10", savings, s.food, s.now))
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, s.session, s.transferRequest("10", s.bank, savings))
	s.NoError(err, "transfers ignore selectability")
	s.assertAmount("110", s.account(savings.AccountID).Balance)
}

func (s *TransactionServiceSuite) TestOtherUserSeesNothing() {
	txn := s.expense("10", s.cash, s.now)
	other := domain.Session{UserID: "user_2"}

	_, err := s.svc.Transaction.GetTransactionByID(s.ctx, other, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.Transaction.DeleteTransaction(s.ctx, other, txn.TransactionID), apperrors.ErrNotFound)
	_, err = s.svc.Transaction.ListTransactionsByAccount(s.ctx, other, s.cash.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	byAccount, err := s.svc.Transaction.ListTransactionsByAccount(s.ctx, s.session, s.cash.AccountID)
	s.Require().NoError(err)
	s.Len(byAccount, 1)
	byCategory, err := s.svc.Transaction.ListTransactionsByCategory(s.ctx, s.session, s.food.CategoryID)
	s.Require().NoError(err)
	s.Len(byCategory, 1)
}
