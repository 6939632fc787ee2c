package services

import (
	"time"

	"cfcs/internal/ledger"
	"cfcs/internal/models"
	"cfcs/internal/pagination"
	"cfcs/internal/report"
)

// Persister is the optional storage port for the ledger.
type Persister interface {
	Save(ts []models.Transaction) error
	Load() ([]models.Transaction, error)
}

// AuthServicer defines the contract for logging in.
type AuthServicer interface {
	Login(username, password string) (*models.User, error)
}

// CategoryServicer defines the contract for reading the category catalog.
type CategoryServicer interface {
	ListCategories(flow *models.Flow) []models.Category
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Flow *models.Flow
}

// TransactionServicer defines the contract for the live ledger.
type TransactionServicer interface {
	AddTransaction(req ledger.AddRequest) (*models.Transaction, error)
	ListTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	AllTransactions() []models.Transaction
	Snapshot() ledger.Snapshot
	Restore() (int, error)
}

// ReportServicer defines the contract for reports over the live ledger.
type ReportServicer interface {
	Summary() report.Summary
	Details() report.Details
	IncomeBySource() IncomeSources
	Trend() []report.BalancePoint
}

// IncomeSources is income per type together with its total.
type IncomeSources struct {
	Sources      map[string]int64 `json:"sources"`
	Total        int64            `json:"total"`
	TotalDisplay string           `json:"total_display"`
}

// ViewerReport is what the read-only viewer shows for the published snapshot.
type ViewerReport struct {
	Published bool           `json:"published"`
	TakenAt   *time.Time     `json:"taken_at,omitempty"`
	Summary   report.Summary `json:"summary"`
	Details   report.Details `json:"details"`
}

// ViewerServicer defines the contract for the read-only viewer snapshot.
type ViewerServicer interface {
	PublishSnapshot() ledger.Snapshot
	CurrentSnapshot() (ledger.Snapshot, bool)
	Report() ViewerReport
	Share(target string) (*report.ShareMessage, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(user models.User, action, resourceType string, resourceID int64, ipAddress string, changes map[string]interface{})
}

// Audit actions.
const (
	ActionLogin           = "LOGIN"
	ActionLoginFailed     = "LOGIN_FAILED"
	ActionCreate          = "CREATE_TRANSACTION"
	ActionPublishSnapshot = "PUBLISH_SNAPSHOT"
)
