package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

func (u *unit) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := u.data.accounts[accountID]
	if !ok {
		return nil, notFound("account", accountID)
	}
	c := acc.Clone()
	return &c, nil
}

func (u *unit) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	res := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := u.data.accounts[id]; ok {
			res[id] = acc.Clone()
		}
	}
	return res, nil
}

func (u *unit) ListAccountsByUser(_ context.Context, userID string) ([]domain.Account, error) {
	res := make([]domain.Account, 0)
	for _, acc := range u.data.accounts {
		if acc.UserID == userID {
			res = append(res, acc.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].AccountID < res[j].AccountID
	})
	return res, nil
}

func (u *unit) SaveAccount(_ context.Context, account domain.Account) error {
	if err := u.store.fail("SaveAccount"); err != nil {
		return err
	}
	if _, ok := u.data.accounts[account.AccountID]; ok {
		return duplicate("account", account.AccountID)
	}
	u.data.accounts[account.AccountID] = account.Clone()
	return nil
}

func (u *unit) UpdateAccount(_ context.Context, account domain.Account) error {
	if err := u.store.fail("UpdateAccount"); err != nil {
		return err
	}
	if _, ok := u.data.accounts[account.AccountID]; !ok {
		return notFound("account", account.AccountID)
	}
	u.data.accounts[account.AccountID] = account.Clone()
	return nil
}
