package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(uow portsrepo.UnitOfWork, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{BaseService: newBaseService(uow, options...)}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateLedger(ctx context.Context, session domain.Session, req dto.CreateLedgerRequest) (*domain.Ledger, error) {
	ledger := domain.Ledger{
		LedgerID:     s.newID(),
		UserID:       session.UserID,
		Name:         req.Name,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		AuditFields:  domain.NewAuditFields(session.UserID, s.now()),
	}
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		return store.Ledgers().SaveLedger(ctx, ledger)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create ledger")
		return nil, err
	}
	s.LogInfo(ctx, "Ledger created", slog.String("ledger_id", ledger.LedgerID))
	return &ledger, nil
}

func (s *ledgerService) GetLedger(ctx context.Context, session domain.Session, ledgerID string) (*domain.Ledger, error) {
	var ledger *domain.Ledger
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		ledger, err = loadLedger(ctx, store, session, ledgerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) ListLedgers(ctx context.Context, session domain.Session) ([]domain.Ledger, error) {
	var ledgers []domain.Ledger
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		var err error
		ledgers, err = store.Ledgers().ListLedgersByUser(ctx, session.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (s *ledgerService) CreateCategory(ctx context.Context, session domain.Session, ledgerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:  s.newID(),
		LedgerID:    ledgerID,
		UserID:      session.UserID,
		Name:        req.Name,
		Type:        req.Type,
		Total:       decimal.Zero,
		AuditFields: domain.NewAuditFields(session.UserID, s.now()),
	}
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadLedger(ctx, store, session, ledgerID); err != nil {
			return err
		}
		return store.Categories().SaveCategory(ctx, category)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("ledger_id", ledgerID))
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *ledgerService) ListCategories(ctx context.Context, session domain.Session, ledgerID string) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.uow.Do(ctx, func(ctx context.Context, store portsrepo.Store) error {
		if _, err := loadLedger(ctx, store, session, ledgerID); err != nil {
			return err
		}
		var err error
		categories, err = store.Categories().ListCategoriesByLedger(ctx, ledgerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
