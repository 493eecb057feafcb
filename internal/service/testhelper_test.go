package service

import (
	"path/filepath"
	"testing"

	"github.com/germangodoy93/FinanzasBackend/internal/config"
	"github.com/germangodoy93/FinanzasBackend/internal/database"

	"gorm.io/gorm"
)

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
