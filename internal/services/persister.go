package services

import "cfcs/internal/models"

// NopPersister stores nothing. It is used when no storage is configured.
type NopPersister struct{}

// Save discards ts.
func (NopPersister) Save([]models.Transaction) error { return nil }

// Load returns an empty ledger.
func (NopPersister) Load() ([]models.Transaction, error) { return nil, nil }
