package report

import (
	"time"

	"cfcs/internal/models"
	"cfcs/internal/money"
)

// TimestampLayout renders generation times, e.g. "March 1, 2024, 09:05 AM".
const TimestampLayout = "January 2, 2006, 03:04 PM"

// Totals bundles the three headline figures with their display strings.
type Totals struct {
	Income            int64  `json:"total_income"`
	Expense           int64  `json:"total_expense"`
	NetBalance        int64  `json:"net_balance"`
	IncomeDisplay     string `json:"total_income_display"`
	ExpenseDisplay    string `json:"total_expense_display"`
	NetBalanceDisplay string `json:"net_balance_display"`
}

// Summary is the structured report behind the summary cards and tables.
type Summary struct {
	Totals
	Categories     []CategoryTotal  `json:"categories"`
	IncomeBySource map[string]int64 `json:"income_by_source"`
	Trend          []BalancePoint   `json:"trend"`
	RecordCount    int              `json:"record_count"`
	Currency       string           `json:"currency"`
	GeneratedAt    time.Time        `json:"generated_at"`
	GeneratedLabel string           `json:"generated_label"`
}

// DetailRow is one line of the full transaction table.
type DetailRow struct {
	ID            int64       `json:"id"`
	Date          string      `json:"date"`
	Type          string      `json:"type"`
	Flow          models.Flow `json:"flow"`
	Amount        int64       `json:"amount"`
	AmountDisplay string      `json:"amount_display"`
	Share         float64     `json:"share"`
}

// Details is the full transaction table, newest first.
type Details struct {
	Totals
	Rows           []DetailRow `json:"rows"`
	RecordCount    int         `json:"record_count"`
	Currency       string      `json:"currency"`
	GeneratedAt    time.Time   `json:"generated_at"`
	GeneratedLabel string      `json:"generated_label"`
}

// BuildTotals computes the headline figures of ts.
func BuildTotals(ts []models.Transaction) Totals {
	income := TotalByFlow(ts, models.FlowIncome)
	expense := TotalByFlow(ts, models.FlowExpense)
	net := income - expense
	return Totals{
		Income:            income,
		Expense:           expense,
		NetBalance:        net,
		IncomeDisplay:     money.Format(income),
		ExpenseDisplay:    money.Format(expense),
		NetBalanceDisplay: money.Format(net),
	}
}

// BuildSummary assembles the structured report for ts as of now.
func BuildSummary(ts []models.Transaction, now time.Time) Summary {
	return Summary{
		Totals:         BuildTotals(ts),
		Categories:     CategoryBreakdown(ts),
		IncomeBySource: IncomeBySource(ts),
		Trend:          RunningBalanceSeries(ts),
		RecordCount:    len(ts),
		Currency:       money.CurrencyCode,
		GeneratedAt:    now,
		GeneratedLabel: FormatTimestamp(now),
	}
}

// BuildDetails assembles the detail table for ts as of now.
func BuildDetails(ts []models.Transaction, now time.Time) Details {
	total := totalAmount(ts)
	rows := make([]DetailRow, 0, len(ts))
	for _, t := range SortByDateDesc(ts) {
		rows = append(rows, DetailRow{
			ID:            t.ID,
			Date:          t.Date,
			Type:          t.Type,
			Flow:          t.Flow,
			Amount:        t.Amount,
			AmountDisplay: money.Format(t.Amount),
			Share:         percentOf(t.Amount, total),
		})
	}
	return Details{
		Totals:         BuildTotals(ts),
		Rows:           rows,
		RecordCount:    len(ts),
		Currency:       money.CurrencyCode,
		GeneratedAt:    now,
		GeneratedLabel: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
