package database

import (
	"fmt"

	"cfcs/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionStore persists the ledger in the transactions table.
type TransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore creates a TransactionStore on db.
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Save writes every transaction of ts that is not stored yet. The ledger is
// append-only, so rows already present (matched by transaction id) are left
// alone and a repeated Save is a no-op.
func (s *TransactionStore) Save(ts []models.Transaction) error {
	if len(ts) == 0 {
		return nil
	}
	rows := make([]models.StoredTransaction, len(ts))
	for i, tx := range ts {
		rows[i] = tx.ToStored(i)
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoNothing: true,
	}).CreateInBatches(&rows, 100).Error
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// Load returns all stored transactions in their original order.
func (s *TransactionStore) Load() ([]models.Transaction, error) {
	var rows []models.StoredTransaction
	if err := s.db.Order("position ASC").Order("transaction_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	out := make([]models.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.Transaction()
	}
	return out, nil
}

// Count returns the number of stored transactions.
func (s *TransactionStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.StoredTransaction{}).Count(&n).Error
	return n, err
}
