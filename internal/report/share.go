package report

import (
	"fmt"
	"strings"
	"time"

	apperrors "cfcs/internal/errors"
	"cfcs/internal/models"
	"cfcs/internal/money"
)

// EmptyPlaceholder replaces the detail table when there is nothing to list.
const EmptyPlaceholder = "(No transactions recorded.)"

const tableRule = "-------------------------------------------------"

// Target is a messaging app that can receive shared text through a deep link.
type Target string

const (
	TargetWhatsApp Target = "whatsapp"
	TargetTelegram Target = "telegram"
)

// ParseTarget resolves a target name; an empty name selects WhatsApp.
func ParseTarget(name string) (Target, error) {
	switch t := Target(strings.ToLower(strings.TrimSpace(name))); t {
	case "":
		return TargetWhatsApp, nil
	case TargetWhatsApp, TargetTelegram:
		return t, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidShareTarget, fmt.Sprintf("Unsupported share target %q", name))
}

// ShareMessage is the rendered share payload for one target.
type ShareMessage struct {
	Target      Target    `json:"target"`
	Text        string    `json:"text"`
	Encoded     string    `json:"encoded"`
	Link        string    `json:"link"`
	RecordCount int       `json:"record_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ShareText renders the plain-text snapshot of ts for messaging apps.
// viewerURL is appended verbatim as the last line.
func ShareText(ts []models.Transaction, generatedAt time.Time, viewerURL string) string {
	totals := BuildTotals(ts)

	var b strings.Builder
	b.WriteString("*-- ⛪ Church Financial Record Snapshot --*\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Date Generated: %s\n", FormatTimestamp(generatedAt))
	b.WriteString("\n")
	b.WriteString("*--- Summary ---*\n")
	fmt.Fprintf(&b, "💰 Total Income: %s\n", totals.IncomeDisplay)
	fmt.Fprintf(&b, "💸 Total Expense: %s\n", totals.ExpenseDisplay)
	fmt.Fprintf(&b, "*📊 NET BALANCE: %s*\n", totals.NetBalanceDisplay)

	if len(ts) > 0 {
		fmt.Fprintf(&b, "\n*--- Detailed History (%d Records) ---*\n", len(ts))
		b.WriteString("\n")
		b.WriteString("Date | Flow | Amount | Type\n")
		b.WriteString(tableRule + "\n")
		for _, t := range SortByDateDesc(ts) {
			fmt.Fprintf(&b, "%s | %s | %s | %s\n", t.Date, shortFlow(t.Flow), money.Plain(t.Amount), t.Type)
		}
	} else {
		b.WriteString("\n" + EmptyPlaceholder)
	}

	b.WriteString("\n\n_Data provided by CFCS_")
	b.WriteString("\n\n*View this live record:*\n" + viewerURL)
	return b.String()
}

// EncodeShareText is ShareText percent-encoded for a URL query value.
func EncodeShareText(ts []models.Transaction, generatedAt time.Time, viewerURL string) string {
	return EncodeURIComponent(ShareText(ts, generatedAt, viewerURL))
}

// ShareLink wraps already-encoded text in the deep link of target.
func ShareLink(target Target, viewerURL, encoded string) (string, error) {
	switch target {
	case TargetWhatsApp:
		return "https://api.whatsapp.com/send?text=" + encoded, nil
	case TargetTelegram:
		return "https://t.me/share/url?url=" + EncodeURIComponent(viewerURL) + "&text=" + encoded, nil
	}
	return "", apperrors.ErrInvalidShareTarget
}

// BuildShare renders text, encoding and deep link in one go.
func BuildShare(ts []models.Transaction, generatedAt time.Time, viewerURL string, target Target) (ShareMessage, error) {
	text := ShareText(ts, generatedAt, viewerURL)
	encoded := EncodeURIComponent(text)
	link, err := ShareLink(target, viewerURL, encoded)
	if err != nil {
		return ShareMessage{}, err
	}
	return ShareMessage{
		Target:      target,
		Text:        text,
		Encoded:     encoded,
		Link:        link,
		RecordCount: len(ts),
		GeneratedAt: generatedAt,
	}, nil
}

// shortFlow truncates a flow label to four characters ("Inco", "Expe").
func shortFlow(f models.Flow) string {
	r := []rune(string(f))
	if len(r) > 4 {
		r = r[:4]
	}
	return string(r)
}
