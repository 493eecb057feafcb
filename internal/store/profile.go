package store

import (
	"context"

	"github.com/germangodoy93/FinanzasBackend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profiles persists the single profile document under the fixed slot key.
type Profiles struct {
	db *gorm.DB
}

func NewProfiles(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

// Get returns the stored document. ErrNotFound when nothing was ever saved.
func (s *Profiles) Get(ctx context.Context) (datatypes.JSON, error) {
	var slot models.ProfileSlot
	if err := s.db.WithContext(ctx).First(&slot, "key = ?", models.ProfileSlotKey).Error; err != nil {
		return nil, wrap(err)
	}
	return slot.Value, nil
}

// Upsert replaces whatever is in the slot with doc.
func (s *Profiles) Upsert(ctx context.Context, doc datatypes.JSON) error {
	slot := models.ProfileSlot{Key: models.ProfileSlotKey, Value: doc}
	return wrap(s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&slot).Error)
}
