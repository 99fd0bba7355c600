package repositories

import (
	"context"
	"fmt"

	"transaction-explorer/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// List retrieves one page of filtered transactions, newest first
func (r *transactionRepository) List(ctx context.Context, criteria models.FilterCriteria, offset, limit int) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, limit)
	if err := r.db.WithContext(ctx).
		Scopes(FilterScope(criteria), OrderNewestFirst).
		Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Count returns the number of transactions matching the criteria
func (r *transactionRepository) Count(ctx context.Context, criteria models.FilterCriteria) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(FilterScope(criteria)).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// DistinctMerchants lists merchant names alphabetically within the date bounds
func (r *transactionRepository) DistinctMerchants(ctx context.Context, criteria models.FilterCriteria) ([]string, error) {
	merchants := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Scopes(DateScope(criteria)).
		Distinct("merchant_name").
		Order("merchant_name ASC").
		Pluck("merchant_name", &merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}

// ListAfterCursor retrieves up to limit rows older than position within the date bounds
func (r *transactionRepository) ListAfterCursor(ctx context.Context, criteria models.FilterCriteria, position *models.CursorPosition, limit int) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, limit)
	if err := r.db.WithContext(ctx).
		Scopes(DateScope(criteria), CursorScope(position), OrderNewestFirst).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions after cursor: %w", err)
	}
	return transactions, nil
}

type dailyTotalRow struct {
	Day              string
	TotalAmountCents int64
	TransactionCount int64
}

// DailyTotals sums amounts per UTC calendar day of the month, intersected with the date scope
func (r *transactionRepository) DailyTotals(ctx context.Context, month models.CalendarMonth, scope models.FilterCriteria) (models.DailyTotals, error) {
	db := r.db.WithContext(ctx)
	day := dayExpression(db)

	var rows []dailyTotalRow
	if err := db.Model(&models.Transaction{}).
		Select(day+" AS day, CAST(SUM(amount_cents) AS BIGINT) AS total_amount_cents, COUNT(*) AS transaction_count").
		Scopes(MonthScope(month), DateScope(scope)).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate daily totals for %s: %w", month, err)
	}

	totals := make(models.DailyTotals, len(rows))
	for _, row := range rows {
		totals[row.Day] = models.DailyTotal{
			Day:              row.Day,
			TotalAmountCents: row.TotalAmountCents,
			TransactionCount: row.TransactionCount,
		}
	}

	return totals, nil
}
