package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
	"github.com/SscSPs/wallet_ledger/internal/platform/metrics"
)

// ServiceOption configures the optional collaborators shared by all services.
type ServiceOption func(*BaseService)

// WithEventPublisher sets the publisher that receives committed ledger events.
func WithEventPublisher(publisher portssvc.LedgerEventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.publisher = publisher
	}
}

// WithMetrics sets the collector that records ledger operation outcomes.
func WithMetrics(collector *metrics.Collector) ServiceOption {
	return func(s *BaseService) {
		s.metrics = collector
	}
}

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = now
	}
}

// BaseService provides common functionality for all services
type BaseService struct {
	publisher portssvc.LedgerEventPublisher
	metrics   *metrics.Collector
	clock     func() time.Time
}

func newBaseService(opts ...ServiceOption) BaseService {
	s := BaseService{}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// now returns the current UTC time from the configured clock.
func (s *BaseService) now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
}

// publish hands a committed event to the publisher. The change is already
// durable, so a delivery failure is logged and not returned.
func (s *BaseService) publish(ctx context.Context, event domain.LedgerEvent) {
	if s.publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event", slog.String("event_type", string(event.EventType)))
	}
}

// observe records the outcome of a ledger operation started at start.
func (s *BaseService) observe(operation string, start time.Time, err error) {
	s.metrics.ObserveOperation(operation, time.Since(start), err)
}
