package models

// Flow is the direction of a transaction.
type Flow string

const (
	FlowIncome  Flow = "Income"
	FlowExpense Flow = "Expense"

	// FlowSeparator marks the disabled divider entry in the category catalog.
	// It is never a valid flow for a stored transaction.
	FlowSeparator Flow = "Separator"
)

// Valid reports whether f is a flow a transaction may carry.
func (f Flow) Valid() bool {
	return f == FlowIncome || f == FlowExpense
}

// Transaction is a single income or expense record. Records are created once
// and never edited.
type Transaction struct {
	ID     int64  `json:"id" yaml:"id,omitempty"`
	Date   string `json:"date" yaml:"date"`
	Type   string `json:"type" yaml:"type"`
	Flow   Flow   `json:"flow" yaml:"flow,omitempty"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// StoredTransaction is the persisted form of a Transaction. Position keeps
// the insertion order so a reload restores the session exactly.
type StoredTransaction struct {
	Base
	TransactionID int64  `gorm:"uniqueIndex;not null" json:"transaction_id"`
	Position      int    `gorm:"not null;index" json:"position"`
	Date          string `gorm:"size:10;not null" json:"date"`
	Type          string `gorm:"not null" json:"type"`
	Flow          Flow   `gorm:"size:16;not null" json:"flow"`
	Amount        int64  `gorm:"type:bigint;not null" json:"amount"`
}

// TableName pins the table name shared with the SQL migrations.
func (StoredTransaction) TableName() string { return "transactions" }

// ToStored converts t into its persisted form at the given position.
func (t Transaction) ToStored(position int) StoredTransaction {
	return StoredTransaction{
		TransactionID: t.ID,
		Position:      position,
		Date:          t.Date,
		Type:          t.Type,
		Flow:          t.Flow,
		Amount:        t.Amount,
	}
}

// Transaction converts a persisted row back into the domain value.
func (s StoredTransaction) Transaction() Transaction {
	return Transaction{
		ID:     s.TransactionID,
		Date:   s.Date,
		Type:   s.Type,
		Flow:   s.Flow,
		Amount: s.Amount,
	}
}
