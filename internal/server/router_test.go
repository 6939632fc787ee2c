package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cfcs/internal/auth"
	"cfcs/internal/ledger"
	"cfcs/internal/logger"
	"cfcs/internal/middleware"
	"cfcs/internal/models"
	"cfcs/internal/report"
	"cfcs/internal/services"
	"cfcs/internal/testutil"
	"cfcs/internal/validator"
)

const (
	testAPIKey    = "export-key"
	testViewerURL = "https://cfcs.example.org/viewer"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

type testApp struct {
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	admin, err := auth.NewCredential("Kate", "Admin123", "", models.RoleAdmin)
	testutil.AssertNoError(t, err)
	viewer, err := auth.NewCredential("church", "Viewer123", "", models.RoleViewer)
	testutil.AssertNoError(t, err)

	now := func() time.Time { return time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC) }
	txs := services.NewTransactionService(ledger.NewStore(), nil)
	viewerSvc, err := services.NewViewerService(txs, services.ViewerConfig{ViewerURL: testViewerURL, Now: now})
	testutil.AssertNoError(t, err)

	router := NewRouter(Deps{
		Auth:         services.NewAuthService(auth.NewStaticProvider(admin, viewer)),
		Categories:   services.NewCategoryService(),
		Transactions: txs,
		Reports:      services.NewReportService(txs, now),
		Viewer:       viewerSvc,
		Audit:        services.NewAuditService(nil),
		Tokens:       middleware.NewTokenManager("router-test-secret", time.Hour),
		ExportAPIKey: testAPIKey,
	})
	return &testApp{router: router}
}

func (a *testApp) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, username, password string) (string, map[string]interface{}) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	return body["token"].(string), body["user"].(map[string]interface{})
}

func (a *testApp) add(t *testing.T, token, date, typ, amount string) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/transactions", token,
		`{"date":"`+date+`","type":"`+typ+`","amount":"`+amount+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, _ := decode(t, rec)["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodGet, "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_LoginViewModes(t *testing.T) {
	app := newTestApp(t)

	t.Run("admin lands on main app", func(t *testing.T) {
		_, user := app.login(t, "Kate", "Admin123")
		if user["view"] != string(models.ViewMainApp) {
			t.Errorf("expected main_app, got %v", user["view"])
		}
	})

	t.Run("viewer lands on viewer", func(t *testing.T) {
		_, user := app.login(t, "church", "Viewer123")
		if user["view"] != string(models.ViewViewer) {
			t.Errorf("expected viewer, got %v", user["view"])
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"Kate","password":"admin123"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_CREDENTIALS" {
			t.Errorf("expected INVALID_CREDENTIALS, got %s", code)
		}
	})
}

func TestRouter_RoleGuards(t *testing.T) {
	app := newTestApp(t)
	viewerToken, _ := app.login(t, "church", "Viewer123")

	adminOnly := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/transactions"},
		{http.MethodGet, "/api/v1/transactions"},
		{http.MethodGet, "/api/v1/reports/summary"},
		{http.MethodGet, "/api/v1/reports/details"},
		{http.MethodGet, "/api/v1/reports/income-sources"},
		{http.MethodGet, "/api/v1/reports/trend"},
		{http.MethodPost, "/api/v1/viewer/snapshot"},
	}
	for _, r := range adminOnly {
		t.Run("viewer forbidden "+r.method+" "+r.path, func(t *testing.T) {
			rec := app.do(t, r.method, r.path, viewerToken, `{}`)
			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}

	t.Run("viewer reads report and share", func(t *testing.T) {
		for _, path := range []string{"/api/v1/viewer/report", "/api/v1/viewer/share", "/api/v1/categories", "/api/v1/profile"} {
			rec := app.do(t, http.MethodGet, path, viewerToken, "")
			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, rec.Code)
			}
		}
	})

	t.Run("anonymous requests are unauthorized", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/v1/viewer/report", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestRouter_SnapshotIsolation(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.login(t, "Kate", "Admin123")
	viewerToken, _ := app.login(t, "church", "Viewer123")

	app.add(t, adminToken, "2024-03-01", "Tithes", "1000")
	app.add(t, adminToken, "2024-03-02", "Rent/Mortgage", "400")

	rec := app.do(t, http.MethodPost, "/api/v1/viewer/snapshot", adminToken, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("publish: expected 201, got %d", rec.Code)
	}

	app.add(t, adminToken, "2024-03-03", "Offering", "700")

	rec = app.do(t, http.MethodGet, "/api/v1/viewer/report", viewerToken, "")
	body := decode(t, rec)
	summary := body["summary"].(map[string]interface{})
	if summary["record_count"] != float64(2) {
		t.Errorf("expected 2 records in viewer snapshot, got %v", summary["record_count"])
	}
	if summary["net_balance"] != float64(600) {
		t.Errorf("expected net balance 600, got %v", summary["net_balance"])
	}

	rec = app.do(t, http.MethodGet, "/api/v1/reports/summary", adminToken, "")
	if live := decode(t, rec); live["record_count"] != float64(3) {
		t.Errorf("expected 3 live records, got %v", live["record_count"])
	}
}

func TestRouter_AddTransactionValidation(t *testing.T) {
	app := newTestApp(t)
	adminToken, _ := app.login(t, "Kate", "Admin123")

	tests := []struct {
		name string
		body string
		code string
	}{
		{"missing_amount", `{"date":"2024-03-01","type":"Tithes"}`, "MISSING_FIELDS"},
		{"bad_date", `{"date":"01/03/2024","type":"Tithes","amount":"10"}`, "INVALID_DATE"},
		{"separator_type", `{"date":"2024-03-01","type":"--- EXPENSES ---","amount":"10"}`, "INVALID_CATEGORY"},
		{"negative_amount", `{"date":"2024-03-01","type":"Tithes","amount":"-5"}`, "INVALID_AMOUNT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/v1/transactions", adminToken, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if code := errorCode(t, rec); code != tt.code {
				t.Errorf("expected %s, got %s", tt.code, code)
			}
		})
	}

	rec := app.do(t, http.MethodGet, "/api/v1/transactions", adminToken, "")
	if total := decode(t, rec)["total_items"]; total != float64(0) {
		t.Errorf("rejected adds must not be stored, got %v items", total)
	}
}

func TestRouter_ExportShare(t *testing.T) {
	app := newTestApp(t)

	t.Run("requires api key", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/api/v1/export/share", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("empty snapshot shares placeholder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/share?format=text", nil)
		req.Header.Set(middleware.APIKeyHeader, testAPIKey)
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		text := rec.Body.String()
		if !strings.Contains(text, report.EmptyPlaceholder) {
			t.Errorf("expected placeholder in:\n%s", text)
		}
		if strings.Contains(text, "Date | Flow | Amount | Type") {
			t.Error("empty share must not carry a table header")
		}
		if !strings.HasSuffix(text, testViewerURL) {
			t.Errorf("expected viewer URL last, got:\n%s", text)
		}
	})
}
