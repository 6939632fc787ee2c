package ledger

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/models"
)

// DateLayout is the only accepted transaction date format.
const DateLayout = "2006-01-02"

// MaxAmount is the largest single amount accepted, in whole XAF.
const MaxAmount int64 = 1_000_000_000_000_000

// MaxLedgerTotal bounds the sum of every amount in a ledger so that totals,
// net balances and running balances never leave the int64 range.
const MaxLedgerTotal int64 = math.MaxInt64

var maxAmount = decimal.NewFromInt(MaxAmount)

// ParseAmount converts user input such as "5000" or "5000.00" into whole
// currency units. Fractional, non-positive and non-numeric values are rejected.
func ParseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.ErrMissingFields
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidAmount, err)
	}
	if !d.IsPositive() {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must be greater than zero")
	}
	if !d.IsInteger() {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must not have fractional units")
	}
	if d.GreaterThan(maxAmount) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount is too large")
	}
	return d.IntPart(), nil
}

// ParseDate checks that raw is a real calendar date in YYYY-MM-DD form and
// returns it normalized.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", apperrors.ErrMissingFields
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return d.Format(DateLayout), nil
}

// ResolveType maps a category label to its flow. The separator placeholder
// and labels outside the catalog are rejected.
func ResolveType(typ string) (models.Flow, error) {
	flow, ok := models.FlowOf(typ)
	if !ok || !flow.Valid() {
		return "", apperrors.ErrInvalidCategory
	}
	return flow, nil
}

// Validate checks an add request and returns the transaction it describes,
// without an ID. Missing fields are reported before malformed ones.
func Validate(req AddRequest) (models.Transaction, error) {
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Amount) == "" {
		return models.Transaction{}, apperrors.ErrMissingFields
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	flow, err := ResolveType(req.Type)
	if err != nil {
		return models.Transaction{}, err
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		Date:   date,
		Type:   req.Type,
		Flow:   flow,
		Amount: amount,
	}, nil
}

// Check validates an already-built transaction, for example one loaded from
// storage or an import file.
func Check(tx models.Transaction) error {
	if tx.ID <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction id must be positive")
	}
	if _, err := ParseDate(tx.Date); err != nil {
		return err
	}
	flow, err := ResolveType(tx.Type)
	if err != nil {
		return err
	}
	if tx.Flow != flow {
		return apperrors.WithMessage(apperrors.ErrInvalidCategory, "Flow does not match the category of "+tx.Type)
	}
	if tx.Amount <= 0 || tx.Amount > MaxAmount {
		return apperrors.ErrInvalidAmount
	}
	return nil
}
