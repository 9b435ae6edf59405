package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db DBTX
}

// mapError translates a driver error into the application error taxonomy.
func mapError(err error, entity, id, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s with ID %s already exists", apperrors.ErrDuplicate, entity, id)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s %s references a missing row (%s)", apperrors.ErrValidation, entity, id, pgErr.ConstraintName)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: concurrent update of %s %s, retry", apperrors.ErrConflict, entity, id)
		}
	}
	return apperrors.NewPersistenceError(fmt.Sprintf("failed to %s %s %s", op, entity, id), err)
}

// expectRow turns an UPDATE or DELETE that touched nothing into ErrNotFound.
func expectRow(tag pgconn.CommandTag, err error, entity, id, op string) error {
	if err != nil {
		return mapError(err, entity, id, op)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
	}
	return nil
}

// queryOne runs a single-row query and maps its columns onto T by db tag.
func queryOne[T any](ctx context.Context, db DBTX, entity, id, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, entity, id, "find")
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, mapError(err, entity, id, "find")
	}
	return &m, nil
}

// queryAll runs a query and maps every row onto T by db tag.
func queryAll[T any](ctx context.Context, db DBTX, entity, id, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, entity, id, "list")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, mapError(err, entity, id, "list")
	}
	return ms, nil
}
