// Package testutil provides database helpers shared by repository tests.
package testutil

import (
	migration "Recipe-Hub/cmd/database/migrate"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
)

// DB opens and migrates the database named by TEST_POSTGRES_DSN, skipping the test when unset.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			dbErr = err
			return
		}
		dbErr = migration.Migrate(db)
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

// Tx starts a transaction that is rolled back when the test ends.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

// DryRunDB returns a postgres-dialect gorm handle that renders SQL without executing it.
func DryRunDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, _ := openMock(tb, true)
	return gdb
}

// MockDB returns a postgres-dialect gorm handle whose statements must match the sqlmock
// expectations in order.
func MockDB(tb testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	tb.Helper()
	return openMock(tb, false)
}

func openMock(tb testing.TB, dryRun bool) (*gorm.DB, sqlmock.Sqlmock) {
	tb.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		tb.Fatalf("sqlmock: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 dryRun,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open mock gorm: %v", err)
	}
	return gdb, mock
}

// Savepoint runs fn in a nested transaction so an expected constraint violation does not
// abort the surrounding test transaction.
func Savepoint(tx *gorm.DB, fn func(tx *gorm.DB) error) error {
	return tx.Transaction(fn)
}
