package store

import (
	"path/filepath"
	"testing"

	"github.com/germangodoy93/FinanzasBackend/internal/config"
	"github.com/germangodoy93/FinanzasBackend/internal/database"

	"gorm.io/gorm"
)

// setupTestDB opens a fresh sqlite database in a per-test temp dir and applies
// the schema. The file is removed with the temp dir on cleanup.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() { _ = database.Close(db) })

	return db
}
