package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/store"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrBackupNotFound reports an unknown backup id.
var ErrBackupNotFound = errors.New("backup not found")

// snapshot is the on-disk backup file content.
type snapshot struct {
	Created      time.Time            `json:"created"`
	Transactions []models.Transaction `json:"txns"`
	Profile      datatypes.JSON       `json:"profile,omitempty"`
}

// BackupService writes and restores JSON snapshots of the whole ledger plus
// the profile slot.
type BackupService struct {
	backups  *store.Backups
	txns     *store.Transactions
	profiles *store.Profiles
	dir      string
}

func NewBackupService(backups *store.Backups, txns *store.Transactions, profiles *store.Profiles, dir string) *BackupService {
	return &BackupService{backups: backups, txns: txns, profiles: profiles, dir: dir}
}

// Create snapshots the current ledger and profile into a new file.
func (s *BackupService) Create(ctx context.Context) (*models.Backup, error) {
	txns, err := s.txns.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	snap := snapshot{Created: time.Now().UTC(), Transactions: txns}
	if doc, err := s.profiles.Get(ctx); err == nil {
		snap.Profile = doc
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	id := uuid.NewString()
	fileName := id + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o600); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	b := &models.Backup{
		ID:       id,
		FileName: fileName,
		Size:     int64(len(data)),
		TxnCount: len(txns),
	}
	if err := s.backups.Insert(ctx, b); err != nil {
		// keep descriptor and file consistent
		_ = os.Remove(filepath.Join(s.dir, fileName))
		return nil, err
	}
	return b, nil
}

// List returns snapshot descriptors, newest first.
func (s *BackupService) List(ctx context.Context) ([]models.Backup, error) {
	return s.backups.List(ctx)
}

// FilePath resolves a backup id to its snapshot file on disk.
func (s *BackupService) FilePath(ctx context.Context, id string) (string, error) {
	b, err := s.backups.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrBackupNotFound
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, b.FileName)
	if _, err := os.Stat(path); err != nil {
		return "", ErrBackupNotFound
	}
	return path, nil
}

// Restore replaces the ledger and profile slot with the snapshot content.
func (s *BackupService) Restore(ctx context.Context, id string) error {
	path, err := s.FilePath(ctx, id)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if err := s.txns.ReplaceAll(ctx, snap.Transactions); err != nil {
		return err
	}
	if len(snap.Profile) > 0 {
		if err := s.profiles.Upsert(ctx, snap.Profile); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the snapshot file and its descriptor.
func (s *BackupService) Delete(ctx context.Context, id string) error {
	b, err := s.backups.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrBackupNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.backups.DeleteByID(ctx, id); err != nil {
		return err
	}
	// file removal is best effort once the row is gone
	_ = os.Remove(filepath.Join(s.dir, b.FileName))
	return nil
}
