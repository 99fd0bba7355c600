package repositories

import (
	"transaction-explorer/internal/models"

	"gorm.io/gorm"
)

// Scope is a reusable gorm query fragment
type Scope func(*gorm.DB) *gorm.DB

// FilterScope applies every active bound of the criteria. All bounds are inclusive.
func FilterScope(criteria models.FilterCriteria) Scope {
	return func(db *gorm.DB) *gorm.DB {
		db = DateScope(criteria)(db)

		if criteria.HasMerchant() {
			db = db.Where("merchant_name = ?", criteria.Merchant)
		}
		if criteria.MinAmountCents != nil {
			db = db.Where("amount_cents >= ?", *criteria.MinAmountCents)
		}
		if criteria.MaxAmountCents != nil {
			db = db.Where("amount_cents <= ?", *criteria.MaxAmountCents)
		}
		return db
	}
}

// DateScope applies only the date bounds of the criteria
func DateScope(criteria models.FilterCriteria) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if criteria.DateFrom != nil {
			db = db.Where("date >= ?", criteria.DateFrom.UTC())
		}
		if criteria.DateTo != nil {
			db = db.Where("date <= ?", criteria.DateTo.UTC())
		}
		return db
	}
}

// OrderNewestFirst orders by date descending with id as tie-break
func OrderNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("id DESC")
}

// CursorScope restricts to rows strictly after the position in newest-first order
func CursorScope(position *models.CursorPosition) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if position == nil {
			return db
		}

		date := position.Date.UTC()
		if position.ID == nil {
			return db.Where("date < ?", date)
		}
		return db.Where("(date < ? OR (date = ? AND id < ?))", date, date, *position.ID)
	}
}

// MonthScope restricts to [first instant of month, first instant of next month)
func MonthScope(month models.CalendarMonth) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date >= ? AND date < ?", month.Start(), month.End())
	}
}

// dayExpression renders the UTC calendar day of the date column for the active dialect
func dayExpression(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "TO_CHAR(date AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', date)"
}
