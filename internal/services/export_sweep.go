package services

import (
	"context"
	"fmt"
	"time"

	"transaction-explorer/internal/models"
)

type exportSweep struct {
	pager   OffsetPagerInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
}

// NewExportSweep creates a service that pages through the offset listing until exhaustion
func NewExportSweep(pager OffsetPagerInterface, metrics MetricsRecorderInterface, logger QueryLoggerInterface) ExportSweepInterface {
	return &exportSweep{
		pager:   pager,
		metrics: metrics,
		logger:  logger,
	}
}

// Collect fetches pages serially from page 1 and returns every row, or nothing if any page fails.
// Rows inserted or deleted between page fetches can shift page boundaries.
func (s *exportSweep) Collect(ctx context.Context, criteria models.FilterCriteria) ([]models.Transaction, error) {
	start := time.Now()
	s.logger.LogSweepStarted(ctx, criteria)

	collected := []models.Transaction{}
	page := 1
	for {
		result, err := s.pager.GetPage(ctx, criteria, page)
		if err != nil {
			s.metrics.IncrementCounter(MetricSweep, map[string]string{"status": "failed"})
			s.logger.LogSweepFailed(ctx, page, err, time.Since(start))
			return nil, fmt.Errorf("%w: page %d: %w", ErrExportFailed, page, err)
		}
		s.metrics.IncrementCounter(MetricSweepPage, nil)

		collected = append(collected, result.Items...)

		if !result.HasNextPage || len(result.Items) == 0 {
			break
		}
		page++
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricSweep, map[string]string{"status": "completed"})
	s.metrics.RecordProcessingTime(MetricSweepDuration, duration)
	s.metrics.RecordGauge(MetricSweepRows, float64(len(collected)), nil)
	s.logger.LogSweepCompleted(ctx, page, len(collected), duration)

	return collected, nil
}
