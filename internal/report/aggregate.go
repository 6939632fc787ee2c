// Package report aggregates transactions into totals, breakdowns and trends,
// and renders them as structured reports or shareable text.
//
// Every function here is pure and accepts an empty slice.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"cfcs/internal/models"
)

// CategoryTotal is the sum of one (flow, type) group.
type CategoryTotal struct {
	Flow  models.Flow `json:"flow"`
	Type  string      `json:"type"`
	Total int64       `json:"total"`
}

// BalancePoint is the cumulative balance after one transaction.
type BalancePoint struct {
	Date    string `json:"date"`
	Balance int64  `json:"balance"`
}

// Share is one transaction's percentage of the summed amounts.
type Share struct {
	ID      int64   `json:"id"`
	Percent float64 `json:"percent"`
}

// TotalByFlow sums the amounts of all transactions with the given flow.
func TotalByFlow(ts []models.Transaction, flow models.Flow) int64 {
	var sum int64
	for _, t := range ts {
		if t.Flow == flow {
			sum += t.Amount
		}
	}
	return sum
}

// NetBalance is total income minus total expense. It may be negative.
func NetBalance(ts []models.Transaction) int64 {
	return TotalByFlow(ts, models.FlowIncome) - TotalByFlow(ts, models.FlowExpense)
}

// CategoryBreakdown groups by (flow, type) and orders groups by total,
// largest first. Equal totals keep the order in which groups were first seen.
func CategoryBreakdown(ts []models.Transaction) []CategoryTotal {
	type key struct {
		flow models.Flow
		typ  string
	}
	index := make(map[key]int)
	out := []CategoryTotal{}
	for _, t := range ts {
		k := key{t.Flow, t.Type}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, CategoryTotal{Flow: t.Flow, Type: t.Type})
		}
		out[i].Total += t.Amount
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// IncomeBySource totals income transactions per type.
func IncomeBySource(ts []models.Transaction) map[string]int64 {
	out := make(map[string]int64)
	for _, t := range ts {
		if t.Flow == models.FlowIncome {
			out[t.Type] += t.Amount
		}
	}
	return out
}

// RunningBalanceSeries orders transactions by ascending date (ties keep
// their relative order) and returns the balance after each one.
func RunningBalanceSeries(ts []models.Transaction) []BalancePoint {
	sorted := sortByDate(ts, func(a, b string) bool { return a < b })
	out := make([]BalancePoint, 0, len(sorted))
	var balance int64
	for _, t := range sorted {
		switch t.Flow {
		case models.FlowIncome:
			balance += t.Amount
		case models.FlowExpense:
			balance -= t.Amount
		}
		out = append(out, BalancePoint{Date: t.Date, Balance: balance})
	}
	return out
}

// PercentageShare is t's amount as a percentage of the summed amounts of ts,
// rounded half away from zero to two places. It is 0 when the sum is 0.
func PercentageShare(t models.Transaction, ts []models.Transaction) float64 {
	return percentOf(t.Amount, totalAmount(ts))
}

// Shares returns PercentageShare for every transaction of ts, in order.
func Shares(ts []models.Transaction) []Share {
	total := totalAmount(ts)
	out := make([]Share, 0, len(ts))
	for _, t := range ts {
		out = append(out, Share{ID: t.ID, Percent: percentOf(t.Amount, total)})
	}
	return out
}

// SortByDateDesc returns a copy of ts ordered newest first. Transactions on
// the same date keep their insertion order.
func SortByDateDesc(ts []models.Transaction) []models.Transaction {
	return sortByDate(ts, func(a, b string) bool { return a > b })
}

func sortByDate(ts []models.Transaction, less func(a, b string) bool) []models.Transaction {
	out := make([]models.Transaction, len(ts))
	copy(out, ts)
	// YYYY-MM-DD compares correctly as a string.
	sort.SliceStable(out, func(i, j int) bool { return less(out[i].Date, out[j].Date) })
	return out
}

func totalAmount(ts []models.Transaction) int64 {
	var sum int64
	for _, t := range ts {
		sum += t.Amount
	}
	return sum
}

func percentOf(amount, total int64) float64 {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 8).
		Round(2)
	f, _ := pct.Float64()
	return f
}
