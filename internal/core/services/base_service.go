package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/finance_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	uow   portsrepo.UnitOfWork
	clock func() time.Time
	newID func() string
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock used for "today", audit stamps and back-dated plans.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithIDGenerator replaces the generator of new entity IDs.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *BaseService) {
		s.newID = newID
	}
}

func newBaseService(uow portsrepo.UnitOfWork, options ...ServiceOption) BaseService {
	base := BaseService{
		uow:   uow,
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// now returns the current time in UTC.
func (s *BaseService) now() time.Time {
	return s.clock().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
