package store

import (
	"context"

	"github.com/germangodoy93/FinanzasBackend/internal/models"

	"gorm.io/gorm"
)

// Transactions persists ledger rows, keyed by generated id.
type Transactions struct {
	db *gorm.DB
}

func NewTransactions(db *gorm.DB) *Transactions {
	return &Transactions{db: db}
}

// Insert stores a new transaction. ErrDuplicateKey on id collision.
func (s *Transactions) Insert(ctx context.Context, txn *models.Transaction) error {
	return wrap(s.db.WithContext(ctx).Create(txn).Error)
}

// ListNewestFirst returns every transaction, most recently inserted first.
// Order is the physical insertion sequence (rowid), not the date field: a row
// with an old supplied date still comes first if it was inserted last.
func (s *Transactions) ListNewestFirst(ctx context.Context) ([]models.Transaction, error) {
	txns := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).Order("rowid DESC").Find(&txns).Error; err != nil {
		return nil, wrap(err)
	}
	return txns, nil
}

// DeleteByID removes the row with the given id and reports how many rows
// matched. Zero matches is not an error.
func (s *Transactions) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return 0, wrap(res.Error)
	}
	return res.RowsAffected, nil
}

// ReplaceAll wipes the ledger and inserts the given rows. Used by restore.
func (s *Transactions) ReplaceAll(ctx context.Context, txns []models.Transaction) error {
	return wrap(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if len(txns) == 0 {
			return nil
		}
		return tx.Create(&txns).Error
	}))
}
