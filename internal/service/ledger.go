package service

import (
	"context"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/store"
	"github.com/germangodoy93/FinanzasBackend/internal/util"
)

// LedgerService owns the flat transaction ledger.
type LedgerService struct {
	txns *store.Transactions
}

func NewLedgerService(txns *store.Transactions) *LedgerService {
	return &LedgerService{txns: txns}
}

// List returns every transaction, most recently inserted first.
func (s *LedgerService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.txns.ListNewestFirst(ctx)
}

// Create persists a transaction. The id is always server-assigned (a caller
// supplied id is discarded); the date defaults to today (UTC) when empty.
// Returns the row as stored.
func (s *LedgerService) Create(ctx context.Context, in models.Transaction) (models.Transaction, error) {
	in.ID = util.NewTransactionID()
	if in.Date == "" {
		in.Date = util.TodayDate()
	}
	if err := s.txns.Insert(ctx, &in); err != nil {
		return models.Transaction{}, err
	}
	return in, nil
}

// Delete removes a transaction by id. Deleting an absent id is not an error
// (deliberately permissive); found reports whether a row actually matched so
// callers that care can distinguish.
func (s *LedgerService) Delete(ctx context.Context, id string) (found bool, err error) {
	n, err := s.txns.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
