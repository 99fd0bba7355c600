package services

import (
	"context"
	"fmt"
	"time"

	"transaction-explorer/internal/models"
	"transaction-explorer/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentMonths bounds how many month aggregates run at once
const maxConcurrentMonths = 4

type dailyAggregator struct {
	repo    repositories.TransactionRepositoryInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
}

// NewDailyAggregator creates the calendar aggregation service
func NewDailyAggregator(
	repo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) DailyAggregatorInterface {
	return &dailyAggregator{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// GetDailyTotals validates month and year before touching the store
func (a *dailyAggregator) GetDailyTotals(ctx context.Context, month, year int, scope models.FilterCriteria) (models.DailyTotals, error) {
	calendarMonth, err := models.NewCalendarMonth(month, year)
	if err != nil {
		return nil, err
	}
	return a.aggregate(ctx, calendarMonth, scope.DateScope())
}

// GetDailyTotalsForMonths aggregates several months concurrently. Results follow the order of months.
func (a *dailyAggregator) GetDailyTotalsForMonths(ctx context.Context, months []models.CalendarMonth, scope models.FilterCriteria) ([]models.DailyTotals, error) {
	for _, m := range months {
		if _, err := models.NewCalendarMonth(m.Month, m.Year); err != nil {
			return nil, fmt.Errorf("%s: %w", m, err)
		}
	}

	results := make([]models.DailyTotals, len(months))
	dateScope := scope.DateScope()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMonths)
	for i, m := range months {
		g.Go(func() error {
			totals, err := a.aggregate(gctx, m, dateScope)
			if err != nil {
				return err
			}
			results[i] = totals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *dailyAggregator) aggregate(ctx context.Context, month models.CalendarMonth, scope models.FilterCriteria) (models.DailyTotals, error) {
	start := time.Now()
	totals, err := a.repo.DailyTotals(ctx, month, scope)
	recordQuery(a.metrics, "daily_totals", start, err)
	if err != nil {
		a.logger.LogQueryFailed(ctx, "daily_totals", err, time.Since(start))
		return nil, fmt.Errorf("failed to get daily totals for %s: %w", month, err)
	}

	if totals == nil {
		totals = models.DailyTotals{}
	}
	return totals, nil
}
