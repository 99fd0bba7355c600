package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PageResult is one page of an offset-paginated listing
type PageResult struct {
	Items        []Transaction
	CurrentPage  int
	TotalPages   int
	HasNextPage  bool
	TotalCount   int64
	AllMerchants []string
}

// CursorResult is one page of a cursor-paginated listing.
// NextCursor is nil when the page was not full, which signals exhaustion.
type CursorResult struct {
	Items      []Transaction
	NextCursor *string
}

// TotalPagesFor returns ceil(totalCount / pageSize), or 0 for an empty set
func TotalPagesFor(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// PageOffset returns the zero-based row offset of a 1-based page.
// Offsets that would overflow saturate at math.MaxInt, which lies past any table.
func PageOffset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// CursorPosition marks the last row a cursor page returned.
// A nil ID means only the timestamp is known and rows sharing it are skipped.
type CursorPosition struct {
	Date time.Time
	ID   *uuid.UUID
}
