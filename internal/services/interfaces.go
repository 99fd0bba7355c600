package services

import (
	"context"
	"time"

	"transaction-explorer/internal/models"
)

// OffsetPagerInterface serves numbered pages with total-count metadata
type OffsetPagerInterface interface {
	GetPage(ctx context.Context, criteria models.FilterCriteria, page int) (*models.PageResult, error)
}

// CursorPagerInterface serves continuation-token pages for infinite scroll.
// Only the date bounds of criteria are applied.
type CursorPagerInterface interface {
	GetPage(ctx context.Context, criteria models.FilterCriteria, cursor string) (*models.CursorResult, error)
}

// DailyAggregatorInterface computes per-day spend for calendar rendering
type DailyAggregatorInterface interface {
	GetDailyTotals(ctx context.Context, month, year int, scope models.FilterCriteria) (models.DailyTotals, error)
	GetDailyTotalsForMonths(ctx context.Context, months []models.CalendarMonth, scope models.FilterCriteria) ([]models.DailyTotals, error)
}

// ExportSweepInterface materializes every row matching the criteria
type ExportSweepInterface interface {
	Collect(ctx context.Context, criteria models.FilterCriteria) ([]models.Transaction, error)
}

// MetricsRecorderInterface defines metrics recording operations
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// QueryLoggerInterface emits structured events for ledger reads
type QueryLoggerInterface interface {
	LogPageServed(ctx context.Context, mode string, page, rows int, duration time.Duration)
	LogQueryFailed(ctx context.Context, operation string, err error, duration time.Duration)
	LogSweepStarted(ctx context.Context, criteria models.FilterCriteria)
	LogSweepCompleted(ctx context.Context, pages, rows int, duration time.Duration)
	LogSweepFailed(ctx context.Context, page int, err error, duration time.Duration)
}
