package services

import (
	"transaction-explorer/internal/config"
	"transaction-explorer/internal/repositories"
)

// Ledger groups the read services built over one transaction repository
type Ledger struct {
	OffsetPager     OffsetPagerInterface
	CursorPager     CursorPagerInterface
	DailyAggregator DailyAggregatorInterface
	ExportSweep     ExportSweepInterface
}

// NewLedger wires the pagers, the aggregator and the export sweep. The sweep drives the offset pager.
func NewLedger(
	repo repositories.TransactionRepositoryInterface,
	cfg config.PaginationConfig,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) *Ledger {
	offsetPager := NewOffsetPager(repo, cfg.OffsetPageSize, metrics, logger)
	return &Ledger{
		OffsetPager:     offsetPager,
		CursorPager:     NewCursorPager(repo, cfg.CursorPageSize, NewCursorCodec(cfg.CompoundCursor), metrics, logger),
		DailyAggregator: NewDailyAggregator(repo, metrics, logger),
		ExportSweep:     NewExportSweep(offsetPager, metrics, logger),
	}
}
