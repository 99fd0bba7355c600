package dto

import (
	"strconv"
	"strings"
	"time"

	"transaction-explorer/internal/models"

	"github.com/google/uuid"
)

// TransactionQuery contains the filter and page parameters of the offset listing and the export.
// Values stay strings so that malformed input reaches the validator instead of failing binding.
type TransactionQuery struct {
	Page      string `query:"page" validate:"omitempty,page_number"`
	From      string `query:"from" validate:"omitempty,date_bound"`
	To        string `query:"to" validate:"omitempty,date_bound"`
	Merchant  string `query:"merchant" validate:"omitempty,max=255"`
	MinAmount string `query:"minAmount" validate:"omitempty,amount_bound"`
	MaxAmount string `query:"maxAmount" validate:"omitempty,amount_bound"`
}

// FilterParams returns the raw filter values; amounts are minor units on the HTTP API
func (q TransactionQuery) FilterParams() models.FilterParams {
	return models.FilterParams{
		From:       q.From,
		To:         q.To,
		Merchant:   q.Merchant,
		MinAmount:  q.MinAmount,
		MaxAmount:  q.MaxAmount,
		AmountUnit: models.AmountUnitMinor,
	}
}

// PageNumber returns the requested page, defaulting to 1
func (q TransactionQuery) PageNumber() int {
	page, err := strconv.Atoi(strings.TrimSpace(q.Page))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// CursorQuery contains the parameters of the infinite-scroll listing
type CursorQuery struct {
	Cursor string `query:"cursor" validate:"omitempty,max=512"`
	From   string `query:"from" validate:"omitempty,date_bound"`
	To     string `query:"to" validate:"omitempty,date_bound"`
}

func (q CursorQuery) FilterParams() models.FilterParams {
	return models.FilterParams{From: q.From, To: q.To}
}

// DailyTotalsQuery contains the parameters of the calendar aggregate
type DailyTotalsQuery struct {
	Month string `query:"month" validate:"required,calendar_month"`
	Year  string `query:"year" validate:"required,calendar_year"`
	From  string `query:"from" validate:"omitempty,date_bound"`
	To    string `query:"to" validate:"omitempty,date_bound"`
}

// MonthYear returns the parsed month and year; call only after validation
func (q DailyTotalsQuery) MonthYear() (int, int) {
	month, _ := strconv.Atoi(strings.TrimSpace(q.Month))
	year, _ := strconv.Atoi(strings.TrimSpace(q.Year))
	return month, year
}

func (q DailyTotalsQuery) FilterParams() models.FilterParams {
	return models.FilterParams{From: q.From, To: q.To}
}

// TransactionItem is the wire representation of a ledger row
type TransactionItem struct {
	ID            uuid.UUID `json:"id"`
	AmountCents   int64     `json:"amountCents"`
	MerchantName  string    `json:"merchantName"`
	MerchantImage string    `json:"merchantImage"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

// PaginationInfo contains offset pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	TotalCount  int64 `json:"totalCount"`
}

// ListTransactionsResponse represents the response for the offset listing
type ListTransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
	AllMerchants []string          `json:"allMerchants"`
	Pagination   PaginationInfo    `json:"pagination"`
}

// CursorTransactionsResponse represents the response for the infinite-scroll listing.
// NextCursor is null once the sequence is exhausted.
type CursorTransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
	NextCursor   *string           `json:"nextCursor"`
}

// DailyTotalItem is one day of the calendar aggregate; amounts are cents
type DailyTotalItem struct {
	TotalAmount      int64 `json:"totalAmount"`
	TransactionCount int64 `json:"transactionCount"`
}

// DailyTotalsResponse maps YYYY-MM-DD to the day's aggregate
type DailyTotalsResponse struct {
	DailyTotals map[string]DailyTotalItem `json:"dailyTotals"`
}

// NewTransactionItems converts ledger rows to wire items, never returning nil
func NewTransactionItems(transactions []models.Transaction) []TransactionItem {
	items := make([]TransactionItem, len(transactions))
	for i, t := range transactions {
		items[i] = TransactionItem{
			ID:            t.ID,
			AmountCents:   t.AmountCents,
			MerchantName:  t.MerchantName,
			MerchantImage: t.MerchantImage,
			Date:          t.Date.UTC(),
			Status:        t.Status,
		}
	}
	return items
}

// NewListTransactionsResponse shapes an offset page
func NewListTransactionsResponse(page *models.PageResult) ListTransactionsResponse {
	merchants := page.AllMerchants
	if merchants == nil {
		merchants = []string{}
	}
	return ListTransactionsResponse{
		Transactions: NewTransactionItems(page.Items),
		AllMerchants: merchants,
		Pagination: PaginationInfo{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			HasNextPage: page.HasNextPage,
			TotalCount:  page.TotalCount,
		},
	}
}

// NewCursorTransactionsResponse shapes a cursor page
func NewCursorTransactionsResponse(page *models.CursorResult) CursorTransactionsResponse {
	return CursorTransactionsResponse{
		Transactions: NewTransactionItems(page.Items),
		NextCursor:   page.NextCursor,
	}
}

// NewDailyTotalsResponse shapes the calendar aggregate
func NewDailyTotalsResponse(totals models.DailyTotals) DailyTotalsResponse {
	days := make(map[string]DailyTotalItem, len(totals))
	for day, total := range totals {
		days[day] = DailyTotalItem{
			TotalAmount:      total.TotalAmountCents,
			TransactionCount: total.TransactionCount,
		}
	}
	return DailyTotalsResponse{DailyTotals: days}
}
