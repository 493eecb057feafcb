package models

import "time"

// Credential is one registered user, keyed by email.
type Credential struct {
	Email      string    `gorm:"primaryKey;size:255" json:"email"`
	SecretHash string    `gorm:"size:255;not null" json:"-"` // pbkdf2 "salt$hash", never the raw secret
	CreatedAt  time.Time `json:"-"`
}

func (Credential) TableName() string { return "users" }
