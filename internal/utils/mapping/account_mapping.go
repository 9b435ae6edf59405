package mapping

import (
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/SscSPs/finance_ledger/internal/models"
	"github.com/shopspring/decimal"
)

func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ToModelAccount flattens a domain Account into its row form.
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:          d.AccountID,
		UserID:             d.UserID,
		Name:               d.Name,
		Kind:               string(d.Kind),
		IncludedInNetWorth: d.IncludedInNetWorth,
		Selectable:         d.Selectable,
		Hidden:             d.Hidden,
		Balance:            d.Balance,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
	if d.Status != "" {
		status := string(d.Status)
		m.Status = &status
	}
	if d.Credit != nil {
		m.CreditLimit = nullDecimal(d.Credit.CreditLimit)
		m.CurrentDebt = nullDecimal(d.Credit.CurrentDebt)
	}
	if d.Debt != nil {
		m.Principal = nullDecimal(d.Debt.Principal)
		m.RemainingAmount = nullDecimal(d.Debt.RemainingAmount)
		counterparty := d.Debt.Counterparty
		m.Counterparty = &counterparty
	}
	return m
}

// ToDomainAccount rebuilds a domain Account from its row form.
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:          m.AccountID,
		UserID:             m.UserID,
		Name:               m.Name,
		Kind:               domain.AccountKind(m.Kind),
		IncludedInNetWorth: m.IncludedInNetWorth,
		Selectable:         m.Selectable,
		Hidden:             m.Hidden,
		Balance:            m.Balance,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	if m.Status != nil {
		d.Status = domain.AccountStatus(*m.Status)
	}
	if m.CreditLimit.Valid {
		d.Credit = &domain.CreditState{
			CreditLimit: m.CreditLimit.Decimal,
			CurrentDebt: m.CurrentDebt.Decimal,
		}
	}
	if m.Principal.Valid {
		d.Debt = &domain.DebtState{
			Principal:       m.Principal.Decimal,
			RemainingAmount: m.RemainingAmount.Decimal,
		}
		if m.Counterparty != nil {
			d.Debt.Counterparty = *m.Counterparty
		}
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	return toSlice(ms, ToDomainAccount)
}
