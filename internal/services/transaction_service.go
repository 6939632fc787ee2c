package services

import (
	"cfcs/internal/ledger"
	"cfcs/internal/logger"
	"cfcs/internal/models"
	"cfcs/internal/pagination"
	"cfcs/internal/report"
)

// transactionService owns the live ledger and mirrors it to the persister.
type transactionService struct {
	store     *ledger.Store
	persister Persister
}

// NewTransactionService creates a new TransactionServicer. A nil persister
// selects NopPersister.
func NewTransactionService(store *ledger.Store, persister Persister) TransactionServicer {
	if persister == nil {
		persister = NopPersister{}
	}
	return &transactionService{store: store, persister: persister}
}

// AddTransaction validates and appends a transaction. Storage failures are
// logged and never fail the add: the in-memory ledger is authoritative.
func (s *transactionService) AddTransaction(req ledger.AddRequest) (*models.Transaction, error) {
	tx, err := s.store.Add(req)
	if err != nil {
		return nil, err
	}

	if err := s.persister.Save(s.store.All()); err != nil {
		logger.Get().Errorw("failed to persist ledger",
			"error", err,
			"transaction_id", tx.ID,
		)
	}
	return &tx, nil
}

// ListTransactions returns transactions newest first, optionally filtered by flow.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	sorted := report.SortByDateDesc(s.store.All())
	if filter.Flow != nil {
		kept := sorted[:0]
		for _, tx := range sorted {
			if tx.Flow == *filter.Flow {
				kept = append(kept, tx)
			}
		}
		sorted = kept
	}
	resp := pagination.Slice(sorted, page)
	return &resp, nil
}

// AllTransactions returns the ledger in insertion order.
func (s *transactionService) AllTransactions() []models.Transaction {
	return s.store.All()
}

// Snapshot returns a value copy of the ledger.
func (s *transactionService) Snapshot() ledger.Snapshot {
	return s.store.Snapshot()
}

// Restore loads the persisted ledger into the store and reports how many
// records were restored. A load failure leaves the store empty and is
// returned so the caller can decide whether to continue.
func (s *transactionService) Restore() (int, error) {
	ts, err := s.persister.Load()
	if err != nil {
		return 0, err
	}
	if err := s.store.Restore(ts); err != nil {
		return 0, err
	}
	return len(ts), nil
}
