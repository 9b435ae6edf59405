package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/SscSPs/finance_ledger/internal/utils/mapping"
)

type accountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

const accountColumns = `account_id, user_id, name, kind, included_in_net_worth, selectable, hidden, status,
	balance, credit_limit, current_debt, principal, remaining_amount, counterparty,
	created_at, created_by, last_updated_at, last_updated_by`

// FindAccountByID retrieves an account by its ID and locks the row for the rest of the unit.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	m, err := queryOne[models.Account](ctx, r.db, "account", accountID, query, accountID)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountsByIDs locks rows in ID order so that concurrent units acquire them consistently.
// Unknown IDs are absent from the result.
func (r *accountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	res := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return res, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`
	ms, err := queryAll[models.Account](ctx, r.db, "account", strings.Join(accountIDs, ","), query, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		res[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return res, nil
}

// ListAccountsByUser retrieves every account owned by a user, oldest first.
func (r *accountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY created_at, account_id;`
	ms, err := queryAll[models.Account](ctx, r.db, "accounts of user", userID, query, userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// SaveAccount inserts a new account.
func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID, m.UserID, m.Name, m.Kind, m.IncludedInNetWorth, m.Selectable, m.Hidden, m.Status,
		m.Balance, m.CreditLimit, m.CurrentDebt, m.Principal, m.RemainingAmount, m.Counterparty,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "account", m.AccountID, "save")
}

// UpdateAccount persists the mutable state of an existing account. Kind and owner never change.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, included_in_net_worth = $3, selectable = $4, hidden = $5, status = $6,
			balance = $7, credit_limit = $8, current_debt = $9, principal = $10, remaining_amount = $11,
			counterparty = $12, last_updated_at = $13, last_updated_by = $14
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		m.AccountID, m.Name, m.IncludedInNetWorth, m.Selectable, m.Hidden, m.Status,
		m.Balance, m.CreditLimit, m.CurrentDebt, m.Principal, m.RemainingAmount,
		m.Counterparty, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return expectRow(tag, err, "account", m.AccountID, "update")
}
