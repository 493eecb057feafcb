package service

import (
	"context"
	"os"
	"testing"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newBackupFixture(t *testing.T) (*BackupService, *LedgerService, *ProfileService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	txns := store.NewTransactions(db)
	profiles := store.NewProfiles(db)
	backups := store.NewBackups(db)
	dir := t.TempDir()
	return NewBackupService(backups, txns, profiles, dir),
		NewLedgerService(txns),
		NewProfileService(profiles),
		db
}

func TestBackupCreateAndList(t *testing.T) {
	backupSvc, ledger, profile, _ := newBackupFixture(t)
	ctx := context.Background()

	_, err := ledger.Create(ctx, models.Transaction{Description: "rent", Amount: amount(850)})
	require.NoError(t, err)
	require.NoError(t, profile.Save(ctx, datatypes.JSON(`{"name":"Ana"}`)))

	b, err := backupSvc.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 1, b.TxnCount)
	assert.Greater(t, b.Size, int64(0))

	path, err := backupSvc.FilePath(ctx, b.ID)
	require.NoError(t, err)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	list, err := backupSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	backupSvc, ledger, profile, _ := newBackupFixture(t)
	ctx := context.Background()

	created, err := ledger.Create(ctx, models.Transaction{Description: "groceries", Amount: amount(42.9)})
	require.NoError(t, err)
	require.NoError(t, profile.Save(ctx, datatypes.JSON(`{"currency":"COP"}`)))

	b, err := backupSvc.Create(ctx)
	require.NoError(t, err)

	// mutate state after the snapshot
	_, err = ledger.Create(ctx, models.Transaction{Description: "noise"})
	require.NoError(t, err)
	_, err = ledger.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, profile.Save(ctx, datatypes.JSON(`{"currency":"USD"}`)))

	require.NoError(t, backupSvc.Restore(ctx, b.ID))

	txns, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, created.ID, txns[0].ID)
	assert.Equal(t, "groceries", txns[0].Description)

	doc, found, err := profile.Get(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"currency":"COP"}`, string(doc))
}

func TestBackupDeleteAndUnknownID(t *testing.T) {
	backupSvc, _, _, _ := newBackupFixture(t)
	ctx := context.Background()

	b, err := backupSvc.Create(ctx)
	require.NoError(t, err)

	path, err := backupSvc.FilePath(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, backupSvc.Delete(ctx, b.ID))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	assert.ErrorIs(t, backupSvc.Delete(ctx, b.ID), ErrBackupNotFound)
	assert.ErrorIs(t, backupSvc.Restore(ctx, "no-such-backup"), ErrBackupNotFound)
	_, err = backupSvc.FilePath(ctx, "no-such-backup")
	assert.ErrorIs(t, err, ErrBackupNotFound)
}
