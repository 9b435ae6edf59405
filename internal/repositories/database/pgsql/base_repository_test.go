package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "transactions_category_id_fkey"}, apperrors.ErrValidation},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, apperrors.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, apperrors.ErrConflict},
		{"check violation", &pgconn.PgError{Code: "23514"}, apperrors.ErrPersistence},
		{"connection lost", errors.New("conn closed"), apperrors.ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(tt.err, "account", "acc_1", "update")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.NoError(t, mapError(nil, "account", "acc_1", "update"))
}

func TestMapError_KeepsDriverError(t *testing.T) {
	cause := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
	err := mapError(cause, "budget", "b1", "update")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23514", pgErr.Code)
}

func TestExpectRow(t *testing.T) {
	assert.NoError(t, expectRow(pgconn.NewCommandTag("UPDATE 1"), nil, "ledger", "l1", "update"))
	assert.ErrorIs(t, expectRow(pgconn.NewCommandTag("UPDATE 0"), nil, "ledger", "l1", "update"), apperrors.ErrNotFound)
	assert.ErrorIs(t, expectRow(pgconn.NewCommandTag("DELETE 0"), nil, "transaction", "t1", "delete"), apperrors.ErrNotFound)
	assert.ErrorIs(t,
		expectRow(pgconn.CommandTag{}, &pgconn.PgError{Code: "40P01"}, "ledger", "l1", "update"),
		apperrors.ErrConflict)
}
