// Package memory is an in-process implementation of the repository ports. A unit of work runs
// against a private copy of the data set which replaces the shared one only when the unit
// succeeds; units are serialized.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
)

type dataset struct {
	accounts     map[string]domain.Account
	transactions map[string]domain.Transaction
	loanPlans    map[string]domain.AmortizationPlan
	installments map[string]domain.InstallmentPlan
	budgets      map[string]domain.Budget
	categories   map[string]domain.Category
	ledgers      map[string]domain.Ledger
}

func newDataset() *dataset {
	return &dataset{
		accounts:     make(map[string]domain.Account),
		transactions: make(map[string]domain.Transaction),
		loanPlans:    make(map[string]domain.AmortizationPlan),
		installments: make(map[string]domain.InstallmentPlan),
		budgets:      make(map[string]domain.Budget),
		categories:   make(map[string]domain.Category),
		ledgers:      make(map[string]domain.Ledger),
	}
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		accounts:     make(map[string]domain.Account, len(d.accounts)),
		transactions: copyMap(d.transactions),
		loanPlans:    copyMap(d.loanPlans),
		installments: copyMap(d.installments),
		budgets:      copyMap(d.budgets),
		categories:   copyMap(d.categories),
		ledgers:      copyMap(d.ledgers),
	}
	for id, acc := range d.accounts {
		c.accounts[id] = acc.Clone()
	}
	return c
}

// Store is the shared in-memory data set.
type Store struct {
	mu       sync.Mutex
	data     *dataset
	failures map[string]*injectedFailure
}

type injectedFailure struct {
	skip int
	err  error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data:     newDataset(),
		failures: make(map[string]*injectedFailure),
	}
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// Do runs fn against a copy of the data set and publishes the copy only if fn succeeds.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, store portsrepo.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	u := &unit{store: s, data: s.data.clone()}
	if err := fn(ctx, u); err != nil {
		return err
	}
	if err := s.fail("Commit"); err != nil {
		return err
	}
	s.data = u.data
	return nil
}

// FailOn makes the named write operation (e.g. "UpdateAccount", "InsertTransaction", "Commit")
// fail once, after it has succeeded skip more times. The failure surfaces as a persistence error.
func (s *Store) FailOn(op string, skip int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = &injectedFailure{skip: skip, err: fmt.Errorf("injected %s failure", op)}
}

// fail must be called with mu held.
func (s *Store) fail(op string) error {
	f, ok := s.failures[op]
	if !ok {
		return nil
	}
	if f.skip > 0 {
		f.skip--
		return nil
	}
	delete(s.failures, op)
	return apperrors.NewPersistenceError(op+" failed", f.err)
}

// unit is the Store view handed to a single unit of work.
type unit struct {
	store *Store
	data  *dataset
}

var (
	_ portsrepo.Store                            = (*unit)(nil)
	_ portsrepo.AccountRepositoryFacade          = (*unit)(nil)
	_ portsrepo.TransactionRepositoryFacade      = (*unit)(nil)
	_ portsrepo.AmortizationPlanRepositoryFacade = (*unit)(nil)
	_ portsrepo.InstallmentPlanRepositoryFacade  = (*unit)(nil)
	_ portsrepo.BudgetRepositoryFacade           = (*unit)(nil)
	_ portsrepo.CategoryRepositoryFacade         = (*unit)(nil)
	_ portsrepo.LedgerRepositoryFacade           = (*unit)(nil)
)

func (u *unit) Accounts() portsrepo.AccountRepositoryFacade {
	return u
}

func (u *unit) Transactions() portsrepo.TransactionRepositoryFacade {
	return u
}

func (u *unit) AmortizationPlans() portsrepo.AmortizationPlanRepositoryFacade {
	return u
}

func (u *unit) InstallmentPlans() portsrepo.InstallmentPlanRepositoryFacade {
	return u
}

func (u *unit) Budgets() portsrepo.BudgetRepositoryFacade {
	return u
}

func (u *unit) Categories() portsrepo.CategoryRepositoryFacade {
	return u
}

func (u *unit) Ledgers() portsrepo.LedgerRepositoryFacade {
	return u
}

func notFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
}

func duplicate(entity, id string) error {
	return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
}
