// Package money formats whole-unit amounts in the single currency the ledger
// records: the Central African CFA franc, displayed with the fr-CM locale.
package money

import (
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	// CurrencyCode is the ISO 4217 code of every amount.
	CurrencyCode = "XAF"
	// Locale is the display locale used for grouping and symbol placement.
	Locale = "fr-CM"
	// Symbol is the locale's currency symbol for XAF.
	Symbol = "FCFA"
	// Decimals is the number of fractional digits shown. XAF has no subunits.
	Decimals = 0

	groupSeparator  = "\u202f" // narrow no-break space
	symbolSeparator = "\u00a0" // no-break space
)

// Format renders amount the way fr-CM displays XAF, e.g. "1 250 000 FCFA"
// with narrow no-break spaces between digit groups.
func Format(amount int64) string {
	return Group(amount) + symbolSeparator + Symbol
}

// Group renders amount with fr-CM digit grouping and no symbol.
func Group(amount int64) string {
	return strings.ReplaceAll(humanize.Comma(amount), ",", groupSeparator)
}

// Plain is Format with the currency symbol and all whitespace removed,
// e.g. "1250000". It is used in the compact text table of shared reports.
func Plain(amount int64) string {
	s := strings.ReplaceAll(Format(amount), Symbol, "")
	s = strings.ReplaceAll(s, CurrencyCode, "")
	return strings.Join(strings.Fields(s), "")
}
