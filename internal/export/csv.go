// Package export serializes ledger rows for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"transaction-explorer/internal/models"

	"github.com/shopspring/decimal"
)

// ContentType is the media type of WriteCSV output
const ContentType = "text/csv; charset=utf-8"

// Header is the first record written by WriteCSV
var Header = []string{"id", "date", "merchant_name", "amount_cents", "amount", "status", "merchant_image"}

// WriteCSV writes the header followed by one record per transaction, in the given order.
// Dates are RFC 3339 UTC and amount is the major-unit value with two decimals.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			t.ID.String(),
			t.Date.UTC().Format(time.RFC3339Nano),
			t.MerchantName,
			strconv.FormatInt(t.AmountCents, 10),
			MajorAmount(t.AmountCents),
			t.Status,
			t.MerchantImage,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record %s: %w", t.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// MajorAmount formats cents as a fixed two-decimal major-unit string
func MajorAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FileName returns the attachment name for an export generated at the given time
func FileName(at time.Time) string {
	return fmt.Sprintf("transactions-%s.csv", at.UTC().Format("20060102-150405"))
}
