package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be between 1 and 9999")
)

// DayKeyLayout is the ISO calendar-day layout used as the daily totals map key
const DayKeyLayout = "2006-01-02"

// DailyTotal contains aggregated spend for one calendar day
type DailyTotal struct {
	Day              string `json:"day"`
	TotalAmountCents int64  `json:"totalAmountCents"`
	TransactionCount int64  `json:"transactionCount"`
}

// DailyTotals maps YYYY-MM-DD to the day's aggregate. Missing days had no transactions.
type DailyTotals map[string]DailyTotal

// Sum returns the total cents and count across every day
func (d DailyTotals) Sum() (totalCents, count int64) {
	for _, day := range d {
		totalCents += day.TotalAmountCents
		count += day.TransactionCount
	}
	return totalCents, count
}

// CalendarMonth identifies a month of a given year
type CalendarMonth struct {
	Year  int
	Month int
}

// NewCalendarMonth validates and builds a CalendarMonth
func NewCalendarMonth(month, year int) (CalendarMonth, error) {
	if month < 1 || month > 12 {
		return CalendarMonth{}, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return CalendarMonth{}, ErrInvalidYear
	}
	return CalendarMonth{Year: year, Month: month}, nil
}

// Start returns the first instant of the month in UTC
func (m CalendarMonth) Start() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month in UTC (exclusive bound)
func (m CalendarMonth) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Next returns the following calendar month
func (m CalendarMonth) Next() CalendarMonth {
	next := m.End()
	return CalendarMonth{Year: next.Year(), Month: int(next.Month())}
}

// String formats the month as YYYY-MM
func (m CalendarMonth) String() string {
	return m.Start().Format("2006-01")
}
