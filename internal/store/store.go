// Package store is the row store: keyed insert/get/list/delete/upsert over the
// shared database handle. Services above it see only the three sentinel errors.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey reports a primary-key collision on insert.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound reports a missing row on keyed lookup.
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable wraps any other fault of the underlying database.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// wrap maps a gorm error onto the store taxonomy.
func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
}
