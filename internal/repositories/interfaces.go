package repositories

import (
	"context"

	"transaction-explorer/internal/models"
)

// TransactionRepositoryInterface defines the read operations over the transaction ledger
type TransactionRepositoryInterface interface {
	// List returns one newest-first slice of rows matching every filter bound
	List(ctx context.Context, criteria models.FilterCriteria, offset, limit int) ([]models.Transaction, error)
	Count(ctx context.Context, criteria models.FilterCriteria) (int64, error)
	// DistinctMerchants applies only the date bounds of criteria
	DistinctMerchants(ctx context.Context, criteria models.FilterCriteria) ([]string, error)
	ListAfterCursor(ctx context.Context, criteria models.FilterCriteria, position *models.CursorPosition, limit int) ([]models.Transaction, error)
	DailyTotals(ctx context.Context, month models.CalendarMonth, scope models.FilterCriteria) (models.DailyTotals, error)
}
