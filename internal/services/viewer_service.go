package services

import (
	"sync"
	"time"

	"cfcs/internal/ledger"
	"cfcs/internal/models"
	"cfcs/internal/report"
)

// viewerService holds the snapshot published for read-only viewers.
type viewerService struct {
	transactions  TransactionServicer
	viewerURL     string
	defaultTarget report.Target
	now           func() time.Time

	mu        sync.RWMutex
	snapshot  ledger.Snapshot
	published bool
}

// ViewerConfig configures the viewer service.
type ViewerConfig struct {
	ViewerURL     string
	DefaultTarget string
	Now           func() time.Time
}

// NewViewerService creates a new ViewerServicer. An invalid default target
// is an error so misconfiguration shows up at startup.
func NewViewerService(transactions TransactionServicer, cfg ViewerConfig) (ViewerServicer, error) {
	target, err := report.ParseTarget(cfg.DefaultTarget)
	if err != nil {
		return nil, err
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &viewerService{
		transactions:  transactions,
		viewerURL:     cfg.ViewerURL,
		defaultTarget: target,
		now:           now,
	}, nil
}

// PublishSnapshot copies the live ledger into the viewer slot, replacing
// any earlier snapshot.
func (s *viewerService) PublishSnapshot() ledger.Snapshot {
	snap := s.transactions.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.published = true
	return copySnapshot(snap)
}

// CurrentSnapshot returns the published snapshot. Before anything is
// published it returns an empty snapshot and false.
func (s *viewerService) CurrentSnapshot() (ledger.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.published {
		return ledger.Snapshot{Transactions: []models.Transaction{}}, false
	}
	return copySnapshot(s.snapshot), true
}

// Report renders the summary and details of the published snapshot.
func (s *viewerService) Report() ViewerReport {
	snap, ok := s.CurrentSnapshot()
	now := s.now()
	r := ViewerReport{
		Published: ok,
		Summary:   report.BuildSummary(snap.Transactions, now),
		Details:   report.BuildDetails(snap.Transactions, now),
	}
	if ok {
		taken := snap.TakenAt
		r.TakenAt = &taken
	}
	return r
}

// Share renders the share message of the published snapshot for target,
// or for the configured default target when target is empty.
func (s *viewerService) Share(target string) (*report.ShareMessage, error) {
	t := s.defaultTarget
	if target != "" {
		var err error
		if t, err = report.ParseTarget(target); err != nil {
			return nil, err
		}
	}
	snap, _ := s.CurrentSnapshot()
	msg, err := report.BuildShare(snap.Transactions, s.now(), s.viewerURL, t)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func copySnapshot(snap ledger.Snapshot) ledger.Snapshot {
	ts := make([]models.Transaction, len(snap.Transactions))
	copy(ts, snap.Transactions)
	return ledger.Snapshot{Transactions: ts, TakenAt: snap.TakenAt}
}
