package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MerchantFilterAll is the merchant selector value meaning "no merchant constraint"
const MerchantFilterAll = "all"

const dateOnlyLayout = "2006-01-02"

var (
	ErrInvalidDateBound    = errors.New("invalid date bound")
	ErrInvalidAmountBound  = errors.New("invalid amount bound")
	ErrInvertedDateRange   = errors.New("date range start is after its end")
	ErrInvertedAmountRange = errors.New("minimum amount is greater than maximum amount")
)

// AmountUnit tells the parser how raw amount bounds are expressed
type AmountUnit int

const (
	// AmountUnitMinor means bounds are already integer cents (HTTP API)
	AmountUnitMinor AmountUnit = iota
	// AmountUnitMajor means bounds are dollars and must be converted to cents
	AmountUnitMajor
)

// FilterParams holds the raw, untrusted filter values of a request
type FilterParams struct {
	From       string
	To         string
	Merchant   string
	MinAmount  string
	MaxAmount  string
	AmountUnit AmountUnit
}

// FilterCriteria is the validated query over the transaction ledger.
// Nil bounds and an empty merchant impose no constraint.
type FilterCriteria struct {
	DateFrom       *time.Time
	DateTo         *time.Time
	Merchant       string
	MinAmountCents *int64
	MaxAmountCents *int64
}

// HasMerchant reports whether a merchant constraint is active
func (f FilterCriteria) HasMerchant() bool {
	return f.Merchant != ""
}

// DateScope returns a copy of the criteria keeping only the date bounds
func (f FilterCriteria) DateScope() FilterCriteria {
	return FilterCriteria{
		DateFrom: f.DateFrom,
		DateTo:   f.DateTo,
	}
}

// ParseFilterCriteria converts raw request values into FilterCriteria.
// Malformed values are rejected rather than ignored so that every entry point behaves the same way.
func ParseFilterCriteria(params FilterParams) (FilterCriteria, error) {
	var criteria FilterCriteria

	if raw := strings.TrimSpace(params.From); raw != "" {
		from, err := parseDateBound(raw, false)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("%w: from %q", ErrInvalidDateBound, raw)
		}
		criteria.DateFrom = &from
	}

	if raw := strings.TrimSpace(params.To); raw != "" {
		to, err := parseDateBound(raw, true)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("%w: to %q", ErrInvalidDateBound, raw)
		}
		criteria.DateTo = &to
	}

	if criteria.DateFrom != nil && criteria.DateTo != nil && criteria.DateFrom.After(*criteria.DateTo) {
		return FilterCriteria{}, ErrInvertedDateRange
	}

	criteria.Merchant = NormalizeMerchant(params.Merchant)

	if raw := strings.TrimSpace(params.MinAmount); raw != "" {
		cents, err := parseAmountBound(raw, params.AmountUnit)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("%w: minAmount %q", ErrInvalidAmountBound, raw)
		}
		criteria.MinAmountCents = &cents
	}

	if raw := strings.TrimSpace(params.MaxAmount); raw != "" {
		cents, err := parseAmountBound(raw, params.AmountUnit)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("%w: maxAmount %q", ErrInvalidAmountBound, raw)
		}
		criteria.MaxAmountCents = &cents
	}

	if criteria.MinAmountCents != nil && criteria.MaxAmountCents != nil &&
		*criteria.MinAmountCents > *criteria.MaxAmountCents {
		return FilterCriteria{}, ErrInvertedAmountRange
	}

	return criteria, nil
}

// NormalizeMerchant maps the "all" selector and blank input to the empty (unconstrained) merchant
func NormalizeMerchant(merchant string) string {
	merchant = strings.TrimSpace(merchant)
	if strings.EqualFold(merchant, MerchantFilterAll) {
		return ""
	}
	return merchant
}

// ParseTimestamp parses an RFC 3339 timestamp (fractional seconds optional) into UTC
func ParseTimestamp(raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}
	return ts.UTC(), nil
}

// CentsFromMajor converts a major-unit amount ("12.345") to cents, rounding half away from zero
func CentsFromMajor(raw string) (int64, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func parseDateBound(raw string, endOfDay bool) (time.Time, error) {
	if ts, err := ParseTimestamp(raw); err == nil {
		return ts, nil
	}

	day, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}

// parseAmountBound accepts decimal strings in minor units too, since browsers
// produce values like "1050.0000000001" when multiplying dollars by 100.
func parseAmountBound(raw string, unit AmountUnit) (int64, error) {
	if unit == AmountUnitMajor {
		return CentsFromMajor(raw)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	return amount.Round(0).IntPart(), nil
}
