package testutil

import (
	"testing"

	"cfcs/internal/models"

	"gorm.io/gorm"
)

// Tx builds a transaction with its flow derived from the catalog. Unknown
// types get an empty flow, which lets tests build invalid records on purpose.
func Tx(id int64, date, typ string, amount int64) models.Transaction {
	flow, _ := models.FlowOf(typ)
	return models.Transaction{ID: id, Date: date, Type: typ, Flow: flow, Amount: amount}
}

// SampleTransactions returns a small mixed ledger in insertion order:
// income 1000+2500+1500, expense 400+1600.
func SampleTransactions() []models.Transaction {
	return []models.Transaction{
		Tx(1, "2024-03-01", "Tithes", 1000),
		Tx(2, "2024-02-10", "Rent/Mortgage", 400),
		Tx(3, "2024-03-05", "Offering", 2500),
		Tx(4, "2024-03-01", "Tithes", 1500),
		Tx(5, "2024-01-20", "Main Pastor Upkeep", 1600),
	}
}

// CreateTestStoredTransactions persists ts in order, positions starting at 0.
func CreateTestStoredTransactions(t *testing.T, db *gorm.DB, ts []models.Transaction) []models.StoredTransaction {
	t.Helper()

	rows := make([]models.StoredTransaction, 0, len(ts))
	for i, tx := range ts {
		row := tx.ToStored(i)
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to create stored transaction: %v", err)
		}
		rows = append(rows, row)
	}
	return rows
}

// IDs returns the IDs of ts in order.
func IDs(ts []models.Transaction) []int64 {
	ids := make([]int64, len(ts))
	for i, tx := range ts {
		ids[i] = tx.ID
	}
	return ids
}
