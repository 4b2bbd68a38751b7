package utils

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a throwaway sqlite database migrated to the current
// schema. The file lives in the test's temp dir, so cleanup is automatic.
// A single connection is enforced: sqlite handles one writer at a time and
// the tests exercise concurrent store calls.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("cannot open test DB: ", err)
	}

	conn, err := db.DB()
	if err != nil {
		t.Fatal("cannot get underlying connection: ", err)
	}
	conn.SetMaxOpenConns(1)

	DatabaseSetupAndMigration(db)
	return db
}
