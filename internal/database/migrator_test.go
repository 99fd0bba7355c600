package database

import (
	"database/sql"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetries shrinks the readiness loop for the duration of the test
func fastRetries(t *testing.T, retries int) {
	t.Helper()
	prevRetries, prevInterval := maxRetries, retryInterval
	maxRetries, retryInterval = retries, 50*time.Millisecond
	t.Cleanup(func() {
		maxRetries, retryInterval = prevRetries, prevInterval
	})
}

func pingMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func writeSeeds(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestNewMigrationRunner_SeedingFollowsEnvironment(t *testing.T) {
	db, _ := pingMock(t)

	t.Setenv("SEED_DATABASE", "true")
	assert.True(t, NewMigrationRunner(db).seed)

	t.Setenv("SEED_DATABASE", "")
	runner := NewMigrationRunner(db)
	assert.False(t, runner.seed)
	assert.Equal(t, seedsPath, runner.seedsPath)

	runner.WithSeeds("/tmp/ledger-seeds")
	assert.True(t, runner.seed)
	assert.Equal(t, "/tmp/ledger-seeds", runner.seedsPath)
}

func TestMigrationSource_EmbedsTransactionsSchema(t *testing.T) {
	src, err := migrationSource()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "create_transactions", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS transactions")
	assert.Contains(t, string(body), "idx_transactions_date_desc ON transactions (date DESC, id DESC)")

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestRollbackMigrations_RejectsNonPositiveSteps(t *testing.T) {
	db, _ := pingMock(t)

	for _, steps := range []int{0, -3} {
		err := NewMigrationRunner(db).RollbackMigrations(steps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rollback steps must be at least 1")
	}
}

func TestWaitForDatabase(t *testing.T) {
	refused := errors.New("connection refused")

	tests := []struct {
		name      string
		pings     []error
		expectErr string
	}{
		{name: "ready immediately", pings: []error{nil}},
		{name: "ready after restarts", pings: []error{refused, refused, nil}},
		{name: "never ready", pings: []error{refused, refused, refused}, expectErr: "database not ready after 3 attempts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fastRetries(t, 3)
			db, mock := pingMock(t)
			for _, pingErr := range tt.pings {
				mock.ExpectPing().WillReturnError(pingErr)
			}

			err := NewMigrationRunner(db).WaitForDatabase()

			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitForDatabase_SleepsBetweenAttempts(t *testing.T) {
	fastRetries(t, 3)
	db, mock := pingMock(t)
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing().WillReturnError(errors.New("starting"))
	mock.ExpectPing()

	start := time.Now()
	require.NoError(t, NewMigrationRunner(db).WaitForDatabase())

	assert.GreaterOrEqual(t, time.Since(start), 2*retryInterval)
}

func TestLoadSeeds(t *testing.T) {
	t.Run("disabled by environment", func(t *testing.T) {
		t.Setenv("SEED_DATABASE", "false")
		db, mock := pingMock(t)

		require.NoError(t, NewMigrationRunner(db).LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing directory is skipped", func(t *testing.T) {
		db, _ := pingMock(t)
		assert.NoError(t, NewMigrationRunner(db).WithSeeds(filepath.Join(t.TempDir(), "absent")).LoadSeeds())
	})

	t.Run("runs seed files in name order", func(t *testing.T) {
		db, mock := pingMock(t)
		dir := writeSeeds(t, map[string]string{
			"002_march.sql": "INSERT INTO transactions (id, amount_cents, merchant_name, merchant_image, date) VALUES ('a0000000-0000-0000-0000-000000000002', 899, 'Bakery', '', '2024-03-02T08:00:00Z');",
			"001_feb.sql":   "INSERT INTO transactions (id, amount_cents, merchant_name, merchant_image, date) VALUES ('a0000000-0000-0000-0000-000000000001', 1050, 'Coffee Shop', '', '2024-02-29T09:30:00Z');",
			"notes.txt":     "ignored",
		})
		mock.ExpectExec("2024-02-29").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("2024-03-02").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMigrationRunner(db).WithSeeds(dir).LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failing file does not stop the rest", func(t *testing.T) {
		db, mock := pingMock(t)
		dir := writeSeeds(t, map[string]string{
			"001_bad.sql":  "INSERT INTO missing_table VALUES (1);",
			"002_good.sql": "INSERT INTO transactions VALUES ('x');",
		})
		mock.ExpectExec("missing_table").WillReturnError(errors.New("relation does not exist"))
		mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMigrationRunner(db).WithSeeds(dir).LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreadable file fails", func(t *testing.T) {
		db, _ := pingMock(t)
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "001_dir.sql"), 0o755))

		err := NewMigrationRunner(db).WithSeeds(dir).LoadSeeds()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read seed file")
	})
}

func TestRunMigrationsIfEnabled(t *testing.T) {
	t.Run("disabled does nothing", func(t *testing.T) {
		db, mock := pingMock(t)
		require.NoError(t, RunMigrationsIfEnabled(db, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable database fails readiness", func(t *testing.T) {
		fastRetries(t, 2)
		db, mock := pingMock(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err := RunMigrationsIfEnabled(db, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database readiness check failed")
	})
}
