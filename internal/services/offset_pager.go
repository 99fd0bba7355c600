package services

import (
	"context"
	"fmt"
	"time"

	"transaction-explorer/internal/models"
	"transaction-explorer/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// DefaultOffsetPageSize is the page size of the numbered listing
const DefaultOffsetPageSize = 50

type offsetPager struct {
	repo     repositories.TransactionRepositoryInterface
	pageSize int
	metrics  MetricsRecorderInterface
	logger   QueryLoggerInterface
}

// NewOffsetPager creates a numbered-page listing service
func NewOffsetPager(
	repo repositories.TransactionRepositoryInterface,
	pageSize int,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) OffsetPagerInterface {
	if pageSize < 1 {
		pageSize = DefaultOffsetPageSize
	}
	return &offsetPager{
		repo:     repo,
		pageSize: pageSize,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetPage loads the items, the total count and the merchant list concurrently.
// Any failure fails the whole page. A page past totalPages has no items.
func (p *offsetPager) GetPage(ctx context.Context, criteria models.FilterCriteria, page int) (*models.PageResult, error) {
	start := time.Now()
	if page < 1 {
		page = 1
	}

	var (
		items     []models.Transaction
		total     int64
		merchants []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = p.repo.List(gctx, criteria, models.PageOffset(page, p.pageSize), p.pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = p.repo.Count(gctx, criteria)
		return err
	})
	g.Go(func() error {
		var err error
		merchants, err = p.repo.DistinctMerchants(gctx, criteria)
		return err
	})

	err := g.Wait()
	recordQuery(p.metrics, "offset_page", start, err)
	if err != nil {
		p.logger.LogQueryFailed(ctx, "offset_page", err, time.Since(start))
		return nil, fmt.Errorf("failed to load transaction page %d: %w", page, err)
	}

	totalPages := models.TotalPagesFor(total, p.pageSize)

	// Pages past the end are empty even if the rows shifted since the count
	if items == nil || page > totalPages {
		items = []models.Transaction{}
	}
	if merchants == nil {
		merchants = []string{}
	}

	p.metrics.RecordGauge(MetricPageRows, float64(len(items)), map[string]string{"mode": "offset"})
	p.logger.LogPageServed(ctx, "offset", page, len(items), time.Since(start))

	return &models.PageResult{
		Items:        items,
		CurrentPage:  page,
		TotalPages:   totalPages,
		HasNextPage:  page < totalPages,
		TotalCount:   total,
		AllMerchants: merchants,
	}, nil
}

func recordQuery(metrics MetricsRecorderInterface, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.IncrementCounter(MetricQuery, map[string]string{"operation": operation, "status": status})
	metrics.RecordProcessingTime(MetricQueryDuration+":"+operation, time.Since(start))
}
