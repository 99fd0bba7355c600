package handlers

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"transaction-explorer/internal/dto"
	"transaction-explorer/internal/errors"
	"transaction-explorer/internal/export"
	"transaction-explorer/internal/models"
	"transaction-explorer/internal/services"
	"transaction-explorer/internal/validation"

	"github.com/labstack/echo/v4"
)

const cacheTTL = 5 * time.Minute

// TransactionHandler handles ledger browsing, calendar and export requests
type TransactionHandler struct {
	offsetPager     services.OffsetPagerInterface
	cursorPager     services.CursorPagerInterface
	dailyAggregator services.DailyAggregatorInterface
	exportSweep     services.ExportSweepInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	offsetPager services.OffsetPagerInterface,
	cursorPager services.CursorPagerInterface,
	dailyAggregator services.DailyAggregatorInterface,
	exportSweep services.ExportSweepInterface,
) *TransactionHandler {
	return &TransactionHandler{
		offsetPager:     offsetPager,
		cursorPager:     cursorPager,
		dailyAggregator: dailyAggregator,
		exportSweep:     exportSweep,
	}
}

// ListTransactions returns one numbered page of the filtered ledger
// @Summary List transactions
// @Description Offset-paginated ledger listing, newest first, with total count and merchant list
// @Tags Transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param from query string false "Start date (RFC 3339 or YYYY-MM-DD), inclusive"
// @Param to query string false "End date (RFC 3339 or YYYY-MM-DD), inclusive"
// @Param merchant query string false "Merchant name or 'all'"
// @Param minAmount query number false "Minimum amount in cents, inclusive"
// @Param maxAmount query number false "Maximum amount in cents, inclusive"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filter or page"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transaction [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return sendFieldErrors(c, asFieldErrors(err))
	}

	criteria, err := models.ParseFilterCriteria(query.FilterParams())
	if err != nil {
		return sendFilterError(c, err)
	}

	page, err := h.offsetPager.GetPage(c.Request().Context(), criteria, query.PageNumber())
	if err != nil {
		return SendSystemError(c, err)
	}

	setCacheControl(c)
	return c.JSON(http.StatusOK, dto.NewListTransactionsResponse(page))
}

// ListTransactionsCursor returns the next infinite-scroll page older than the cursor
// @Summary List transactions by cursor
// @Description Continuation-token listing, newest first. Only the date range filter applies.
// @Tags Transactions
// @Produce json
// @Param cursor query string false "Continuation token from the previous page"
// @Param from query string false "Start date, inclusive"
// @Param to query string false "End date, inclusive"
// @Success 200 {object} dto.CursorTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_007 - Invalid cursor"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transaction/cursor [get]
func (h *TransactionHandler) ListTransactionsCursor(c echo.Context) error {
	var query dto.CursorQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return sendFieldErrors(c, asFieldErrors(err))
	}

	criteria, err := models.ParseFilterCriteria(query.FilterParams())
	if err != nil {
		return sendFilterError(c, err)
	}

	page, err := h.cursorPager.GetPage(c.Request().Context(), criteria, query.Cursor)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCursor) {
			return SendError(c, errors.TransactionInvalidCursor, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	setCacheControl(c)
	return c.JSON(http.StatusOK, dto.NewCursorTransactionsResponse(page))
}

// GetDailyTotals returns per-day spend for one calendar month
// @Summary Daily totals
// @Description Sum and count of transactions per UTC day of the month, optionally narrowed by a date range
// @Tags Transactions
// @Produce json
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param from query string false "Start date, inclusive"
// @Param to query string false "End date, inclusive"
// @Success 200 {object} dto.DailyTotalsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002/004 - Missing or invalid month or year"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transaction/daily-totals [get]
func (h *TransactionHandler) GetDailyTotals(c echo.Context) error {
	var query dto.DailyTotalsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return sendFieldErrors(c, asFieldErrors(err))
	}

	scope, err := models.ParseFilterCriteria(query.FilterParams())
	if err != nil {
		return sendFilterError(c, err)
	}

	month, year := query.MonthYear()
	totals, err := h.dailyAggregator.GetDailyTotals(c.Request().Context(), month, year, scope)
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidMonth) || stderrors.Is(err, models.ErrInvalidYear) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	setCacheControl(c)
	return c.JSON(http.StatusOK, dto.NewDailyTotalsResponse(totals))
}

// ExportTransactions streams every row matching the filters as a CSV attachment
// @Summary Export transactions
// @Description Full filtered result set as CSV. Any page failure fails the whole export.
// @Tags Transactions
// @Produce text/csv
// @Param from query string false "Start date, inclusive"
// @Param to query string false "End date, inclusive"
// @Param merchant query string false "Merchant name or 'all'"
// @Param minAmount query number false "Minimum amount in cents, inclusive"
// @Param maxAmount query number false "Maximum amount in cents, inclusive"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid filter"
// @Failure 500 {object} errors.ErrorResponse "TRANSACTION_008 - Export failed"
// @Router /transaction/export [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	var query dto.TransactionQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return sendFieldErrors(c, asFieldErrors(err))
	}

	criteria, err := models.ParseFilterCriteria(query.FilterParams())
	if err != nil {
		return sendFilterError(c, err)
	}

	rows, err := h.exportSweep.Collect(c.Request().Context(), criteria)
	if err != nil {
		logSystemError(c, err)
		return SendError(c, errors.TransactionExportFailed)
	}

	// Serialize fully before writing so a failure never leaves a truncated body
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		logSystemError(c, err)
		return SendError(c, errors.TransactionExportFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.FileName(time.Now())))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func setCacheControl(c echo.Context) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))
}

// sendFieldErrors picks the most specific code for the first rejected field
func sendFieldErrors(c echo.Context, fieldErrors FieldErrors) error {
	code := errors.ValidationGeneral
	switch first := fieldErrors[0]; {
	case first.Tag == "required":
		code = errors.ValidationRequiredField
	case first.Tag == "page_number":
		code = errors.ValidationInvalidPage
	case first.Tag == "date_bound":
		code = errors.ValidationInvalidDate
	case first.Tag == "amount_bound":
		code = errors.ValidationInvalidAmount
	case first.Tag == "calendar_month" || first.Tag == "calendar_year":
		code = errors.ValidationOutOfRange
	}
	return SendError(c, code, errors.WithDetails(validation.Details(fieldErrors)...))
}

func sendFilterError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidDateBound), stderrors.Is(err, models.ErrInvertedDateRange):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidAmountBound), stderrors.Is(err, models.ErrInvertedAmountRange):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	default:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
}
