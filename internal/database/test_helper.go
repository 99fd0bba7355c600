package database

import (
	"testing"
	"time"

	"transaction-explorer/internal/config"
	"transaction-explorer/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory sqlite database with the transactions schema.
// The pool is pinned to one connection because every new :memory: connection is a new database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.CreateIndexes(); err != nil {
		t.Fatalf("failed to create test indexes: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestTransaction inserts one completed transaction
func CreateTestTransaction(t *testing.T, db *DB, merchant string, amountCents int64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AmountCents:   amountCents,
		MerchantName:  merchant,
		MerchantImage: gofakeit.URL(),
		Date:          date.UTC(),
		Status:        models.TransactionStatusCompleted,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

// SeedTestTransactions inserts count transactions spaced one minute apart going back from newest,
// with fake merchants and amounts.
func SeedTestTransactions(t *testing.T, db *DB, count int, newest time.Time) []models.Transaction {
	t.Helper()

	txns := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, models.Transaction{
			AmountCents:   int64(gofakeit.IntRange(1, 500000)),
			MerchantName:  gofakeit.Company(),
			MerchantImage: gofakeit.URL(),
			Date:          newest.Add(-time.Duration(i) * time.Minute).UTC(),
			Status:        models.TransactionStatusCompleted,
		})
	}

	if err := db.CreateInBatches(&txns, 100).Error; err != nil {
		t.Fatalf("failed to seed test transactions: %v", err)
	}

	return txns
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup table transactions: %v", err)
	}
}
