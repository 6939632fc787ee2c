package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cfcs/internal/ledger"
	"cfcs/internal/models"
	"cfcs/internal/report"
	"cfcs/internal/services"
	"cfcs/internal/testutil"
)

const viewerTestURL = "https://cfcs.example.org/viewer"

// mockViewerService renders shares with the real report package over a
// fixed snapshot so the handler output can be checked end to end.
type mockViewerService struct {
	live      []models.Transaction
	published  *ledger.Snapshot
	now        time.Time
	shareCalls int
}

var _ services.ViewerServicer = (*mockViewerService)(nil)

func (m *mockViewerService) PublishSnapshot() ledger.Snapshot {
	snap := ledger.Snapshot{Transactions: append([]models.Transaction(nil), m.live...), TakenAt: m.now}
	m.published = &snap
	return snap
}

func (m *mockViewerService) CurrentSnapshot() (ledger.Snapshot, bool) {
	if m.published == nil {
		return ledger.Snapshot{Transactions: []models.Transaction{}}, false
	}
	return *m.published, true
}

func (m *mockViewerService) Report() services.ViewerReport {
	snap, ok := m.CurrentSnapshot()
	return services.ViewerReport{
		Published: ok,
		Summary:   report.BuildSummary(snap.Transactions, m.now),
		Details:   report.BuildDetails(snap.Transactions, m.now),
	}
}

func (m *mockViewerService) Share(target string) (*report.ShareMessage, error) {
	m.shareCalls++
	t, err := report.ParseTarget(target)
	if err != nil {
		return nil, err
	}
	snap, _ := m.CurrentSnapshot()
	msg, err := report.BuildShare(snap.Transactions, m.now, viewerTestURL, t)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func setupViewerRouter(handler *ViewerHandler) *gin.Engine {
	r := gin.New()
	r.POST("/viewer/snapshot", injectUser("Kate", models.RoleAdmin), handler.PublishSnapshot)
	r.GET("/viewer/report", handler.GetReport)
	r.GET("/viewer/share", handler.GetShare)
	r.GET("/export/share", handler.ExportShare)
	return r
}

func newTestViewer() *mockViewerService {
	return &mockViewerService{
		live: testutil.SampleTransactions(),
		now:  time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestViewerHandler_PublishSnapshot(t *testing.T) {
	t.Run("returns 201 and audits the publish", func(t *testing.T) {
		viewer := newTestViewer()
		audit := &mockAuditService{}
		r := setupViewerRouter(NewViewerHandler(viewer, audit))

		rec := doRequest(r, http.MethodPost, "/viewer/snapshot", "")
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseJSON(t, rec)["record_count"]; got != float64(5) {
			t.Errorf("expected record_count 5, got %v", got)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.ActionPublishSnapshot {
			t.Fatalf("expected one PUBLISH_SNAPSHOT audit entry, got %+v", audit.entries)
		}
		if audit.entries[0].changes["record_count"] != 5 {
			t.Errorf("expected record_count 5 in audit changes, got %v", audit.entries[0].changes)
		}
	})
}

func TestViewerHandler_GetReport(t *testing.T) {
	t.Run("unpublished report is empty", func(t *testing.T) {
		r := setupViewerRouter(NewViewerHandler(newTestViewer(), &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/report", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["published"] != false {
			t.Errorf("expected published false, got %v", result["published"])
		}
		details := result["details"].(map[string]interface{})
		if details["record_count"] != float64(0) {
			t.Errorf("expected no records, got %v", details["record_count"])
		}
	})

	t.Run("published report carries the snapshot", func(t *testing.T) {
		viewer := newTestViewer()
		viewer.PublishSnapshot()
		r := setupViewerRouter(NewViewerHandler(viewer, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/report", "")
		result := parseJSON(t, rec)
		if result["published"] != true {
			t.Errorf("expected published true, got %v", result["published"])
		}
		summary := result["summary"].(map[string]interface{})
		if summary["net_balance"] != float64(3000) {
			t.Errorf("expected net_balance 3000, got %v", summary["net_balance"])
		}
	})
}

func TestViewerHandler_Share(t *testing.T) {
	t.Run("json payload with whatsapp link", func(t *testing.T) {
		viewer := newTestViewer()
		viewer.PublishSnapshot()
		r := setupViewerRouter(NewViewerHandler(viewer, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/share", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		link, _ := result["link"].(string)
		if !strings.HasPrefix(link, "https://api.whatsapp.com/send?text=") {
			t.Errorf("unexpected link: %s", link)
		}
		text, _ := result["text"].(string)
		if !strings.Contains(text, "Detailed History (5 Records)") {
			t.Errorf("expected detail header in text, got:\n%s", text)
		}
	})

	t.Run("text format returns the plain message", func(t *testing.T) {
		viewer := newTestViewer()
		viewer.PublishSnapshot()
		r := setupViewerRouter(NewViewerHandler(viewer, &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/share?format=text", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Errorf("expected text/plain, got %q", ct)
		}
		if !strings.HasSuffix(rec.Body.String(), viewerTestURL) {
			t.Errorf("expected viewer URL as last line, got:\n%s", rec.Body.String())
		}
	})

	t.Run("empty snapshot shows placeholder", func(t *testing.T) {
		r := setupViewerRouter(NewViewerHandler(newTestViewer(), &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/export/share?format=text", "")
		body := rec.Body.String()
		if !strings.Contains(body, report.EmptyPlaceholder) {
			t.Errorf("expected placeholder, got:\n%s", body)
		}
		if strings.Contains(body, "Date | Flow | Amount | Type") {
			t.Errorf("expected no table header on empty snapshot")
		}
	})

	t.Run("telegram target", func(t *testing.T) {
		r := setupViewerRouter(NewViewerHandler(newTestViewer(), &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/share?target=telegram", "")
		link, _ := parseJSON(t, rec)["link"].(string)
		if !strings.HasPrefix(link, "https://t.me/share/url?url=") {
			t.Errorf("unexpected link: %s", link)
		}
	})

	t.Run("returns 400 on unknown target", func(t *testing.T) {
		r := setupViewerRouter(NewViewerHandler(newTestViewer(), &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/share?target=signal", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_SHARE_TARGET")
	})

	t.Run("rejects target in the query binding", func(t *testing.T) {
		viewer := newTestViewer()
		r := setupViewerRouter(NewViewerHandler(viewer, &mockAuditService{}))

		for _, target := range []string{"signal", "WhatsApp", "sms"} {
			rec := doRequest(r, http.MethodGet, "/export/share?target="+target, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", target, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_SHARE_TARGET")
		}
		if viewer.shareCalls != 0 {
			t.Errorf("service reached with an invalid target %d time(s)", viewer.shareCalls)
		}
	})

	t.Run("returns 400 on unknown format", func(t *testing.T) {
		r := setupViewerRouter(NewViewerHandler(newTestViewer(), &mockAuditService{}))

		rec := doRequest(r, http.MethodGet, "/viewer/share?format=xml", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
