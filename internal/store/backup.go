package store

import (
	"context"

	"github.com/germangodoy93/FinanzasBackend/internal/models"

	"gorm.io/gorm"
)

// Backups persists snapshot descriptors. The snapshot bytes live on disk.
type Backups struct {
	db *gorm.DB
}

func NewBackups(db *gorm.DB) *Backups {
	return &Backups{db: db}
}

func (s *Backups) Insert(ctx context.Context, b *models.Backup) error {
	return wrap(s.db.WithContext(ctx).Create(b).Error)
}

// List returns descriptors, newest first.
func (s *Backups) List(ctx context.Context) ([]models.Backup, error) {
	backups := make([]models.Backup, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&backups).Error; err != nil {
		return nil, wrap(err)
	}
	return backups, nil
}

func (s *Backups) GetByID(ctx context.Context, id string) (*models.Backup, error) {
	var b models.Backup
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, wrap(err)
	}
	return &b, nil
}

func (s *Backups) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Backup{}, "id = ?", id)
	if res.Error != nil {
		return 0, wrap(res.Error)
	}
	return res.RowsAffected, nil
}
