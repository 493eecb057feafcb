package store

import (
	"context"

	"github.com/germangodoy93/FinanzasBackend/internal/models"

	"gorm.io/gorm"
)

// Credentials persists registered users, keyed by email.
type Credentials struct {
	db *gorm.DB
}

func NewCredentials(db *gorm.DB) *Credentials {
	return &Credentials{db: db}
}

// Insert stores a new credential. ErrDuplicateKey when the email is taken.
func (s *Credentials) Insert(ctx context.Context, cred *models.Credential) error {
	return wrap(s.db.WithContext(ctx).Create(cred).Error)
}

// GetByEmail looks up a credential. ErrNotFound when the email is unknown.
func (s *Credentials) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	if err := s.db.WithContext(ctx).First(&cred, "email = ?", email).Error; err != nil {
		return nil, wrap(err)
	}
	return &cred, nil
}
