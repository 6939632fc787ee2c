// Package ledger holds the session's append-only transaction store.
package ledger

import (
	"sync"
	"time"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/models"
)

// AddRequest is an add-transaction intent as entered by a user. Amount is
// kept as text so string and numeric inputs go through one parser.
type AddRequest struct {
	Date   string `json:"date" yaml:"date"`
	Type   string `json:"type" yaml:"type"`
	Amount string `json:"amount" yaml:"amount"`
}

// Snapshot is a point-in-time value copy of the store.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	TakenAt      time.Time            `json:"taken_at"`
}

// Len returns the number of transactions in the snapshot.
func (s Snapshot) Len() int { return len(s.Transactions) }

var errLedgerFull = apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount would push the ledger total out of range")

// Store is an ordered, append-only collection of transactions. Appends are
// serialized; readers always get copies.
type Store struct {
	mu     sync.RWMutex
	txs    []models.Transaction
	total  int64
	lastID int64
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for IDs and snapshot times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates req, assigns an ID and appends the transaction. On any
// rejection the store is left untouched.
func (s *Store) Add(req AddRequest) (models.Transaction, error) {
	tx, err := Validate(req)
	if err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.Amount > MaxLedgerTotal-s.total {
		return models.Transaction{}, errLedgerFull
	}
	tx.ID = s.nextID()
	s.txs = append(s.txs, tx)
	s.total += tx.Amount
	return tx, nil
}

// nextID returns the creation time in Unix milliseconds, bumped past the
// previous ID when needed so IDs stay strictly increasing. Caller holds mu.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Restore replaces the store contents with ts, keeping their order and IDs.
// It is meant for loading a persisted session at startup.
func (s *Store) Restore(ts []models.Transaction) error {
	seen := make(map[int64]struct{}, len(ts))
	var last, total int64
	for _, tx := range ts {
		if err := Check(tx); err != nil {
			return err
		}
		if tx.Amount > MaxLedgerTotal-total {
			return errLedgerFull
		}
		total += tx.Amount
		if _, dup := seen[tx.ID]; dup {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Duplicate transaction id")
		}
		seen[tx.ID] = struct{}{}
		if tx.ID > last {
			last = tx.ID
		}
	}

	cp := make([]models.Transaction, len(ts))
	copy(cp, ts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = cp
	s.total = total
	if last > s.lastID {
		s.lastID = last
	}
	return nil
}

// All returns a copy of every transaction in insertion order.
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}

// Snapshot returns a value copy of the current contents. Later appends are
// never visible through it.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Transactions: s.All(), TakenAt: s.now()}
}
