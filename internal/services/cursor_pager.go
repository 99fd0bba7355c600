package services

import (
	"context"
	"fmt"
	"time"

	"transaction-explorer/internal/models"
	"transaction-explorer/internal/repositories"
)

// DefaultCursorPageSize is the page size of the infinite-scroll listing
const DefaultCursorPageSize = 500

type cursorPager struct {
	repo     repositories.TransactionRepositoryInterface
	pageSize int
	codec    CursorCodec
	metrics  MetricsRecorderInterface
	logger   QueryLoggerInterface
}

// NewCursorPager creates a continuation-token listing service
func NewCursorPager(
	repo repositories.TransactionRepositoryInterface,
	pageSize int,
	codec CursorCodec,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) CursorPagerInterface {
	if pageSize < 1 {
		pageSize = DefaultCursorPageSize
	}
	return &cursorPager{
		repo:     repo,
		pageSize: pageSize,
		codec:    codec,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetPage returns up to pageSize rows older than the cursor. NextCursor is set only for full pages.
func (p *cursorPager) GetPage(ctx context.Context, criteria models.FilterCriteria, cursor string) (*models.CursorResult, error) {
	position, err := p.codec.Decode(cursor)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	items, err := p.repo.ListAfterCursor(ctx, criteria.DateScope(), position, p.pageSize)
	recordQuery(p.metrics, "cursor_page", start, err)
	if err != nil {
		p.logger.LogQueryFailed(ctx, "cursor_page", err, time.Since(start))
		return nil, fmt.Errorf("failed to load transactions after cursor: %w", err)
	}

	if items == nil {
		items = []models.Transaction{}
	}

	result := &models.CursorResult{Items: items}
	if len(items) == p.pageSize {
		next := p.codec.Encode(items[len(items)-1])
		result.NextCursor = &next
	}

	p.metrics.RecordGauge(MetricPageRows, float64(len(items)), map[string]string{"mode": "cursor"})
	p.logger.LogPageServed(ctx, "cursor", 0, len(items), time.Since(start))

	return result, nil
}
