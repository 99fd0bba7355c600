package services

import (
	"io"
	"log/slog"
	"time"

	"transaction-explorer/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// fakeTransactions returns count rows ordered newest first, one minute apart
func fakeTransactions(count int, newest time.Time) []models.Transaction {
	txns := make([]models.Transaction, count)
	for i := range txns {
		txns[i] = models.Transaction{
			ID:            uuid.New(),
			AmountCents:   int64(gofakeit.Number(100, 250000)),
			MerchantName:  gofakeit.Company(),
			MerchantImage: gofakeit.URL(),
			Date:          newest.Add(-time.Duration(i) * time.Minute).UTC(),
			Status:        models.TransactionStatusCompleted,
		}
	}
	return txns
}

func testObservers() (MetricsRecorderInterface, QueryLoggerInterface) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	logger := NewQueryLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return metrics, logger
}

func int64Ptr(v int64) *int64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
