package services

import (
	"context"
	"log/slog"
	"time"

	"transaction-explorer/internal/models"
)

type contextKey string

// RequestIDKey is the context key carrying the request trace id
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying the trace id for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// QueryLogger provides structured logging for ledger read operations
type QueryLogger struct {
	logger *slog.Logger
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(logger *slog.Logger) QueryLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{
		logger: logger,
	}
}

// LogPageServed logs a successfully served listing page
func (ql *QueryLogger) LogPageServed(ctx context.Context, mode string, page, rows int, duration time.Duration) {
	ql.logger.DebugContext(ctx, "transaction page served",
		slog.String("event_type", "page_served"),
		slog.String("mode", mode),
		slog.Int("page", page),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogQueryFailed logs a store failure
func (ql *QueryLogger) LogQueryFailed(ctx context.Context, operation string, err error, duration time.Duration) {
	ql.logger.ErrorContext(ctx, "transaction query failed",
		slog.String("event_type", "query_failed"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSweepStarted logs the start of an export sweep
func (ql *QueryLogger) LogSweepStarted(ctx context.Context, criteria models.FilterCriteria) {
	attrs := []any{
		slog.String("event_type", "sweep_started"),
		slog.Bool("has_merchant", criteria.HasMerchant()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	}
	if criteria.DateFrom != nil {
		attrs = append(attrs, slog.Time("from", *criteria.DateFrom))
	}
	if criteria.DateTo != nil {
		attrs = append(attrs, slog.Time("to", *criteria.DateTo))
	}

	ql.logger.InfoContext(ctx, "export sweep started", attrs...)
}

// LogSweepCompleted logs a finished export sweep
func (ql *QueryLogger) LogSweepCompleted(ctx context.Context, pages, rows int, duration time.Duration) {
	ql.logger.InfoContext(ctx, "export sweep completed",
		slog.String("event_type", "sweep_completed"),
		slog.Int("pages", pages),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSweepFailed logs an aborted export sweep
func (ql *QueryLogger) LogSweepFailed(ctx context.Context, page int, err error, duration time.Duration) {
	ql.logger.ErrorContext(ctx, "export sweep failed",
		slog.String("event_type", "sweep_failed"),
		slog.Int("page", page),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
