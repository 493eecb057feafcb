package service

import (
	"context"
	"errors"

	"github.com/germangodoy93/FinanzasBackend/internal/store"

	"gorm.io/datatypes"
)

// ProfileService reads and replaces the single profile document. The document
// is opaque: no shape validation, stored and returned verbatim.
type ProfileService struct {
	profiles *store.Profiles
}

func NewProfileService(profiles *store.Profiles) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the stored document. found is false (with nil error) when no
// profile was ever saved.
func (s *ProfileService) Get(ctx context.Context) (doc datatypes.JSON, found bool, err error) {
	doc, err = s.profiles.Get(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Save replaces the slot content with doc.
func (s *ProfileService) Save(ctx context.Context, doc datatypes.JSON) error {
	return s.profiles.Upsert(ctx, doc)
}
