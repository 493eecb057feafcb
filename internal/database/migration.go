package database

import (
	"fmt"

	"github.com/germangodoy93/FinanzasBackend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates the schema when absent. Running it again is a no-op.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Credential{},
		&models.Transaction{},
		&models.ProfileSlot{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
