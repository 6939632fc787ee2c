package services

import (
	"testing"
	"time"

	"cfcs/internal/testutil"
)

var fixedNow = time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seededTransactions(t *testing.T) TransactionServicer {
	t.Helper()
	svc := newTestTransactionService(&recordingPersister{loaded: testutil.SampleTransactions()})
	if _, err := svc.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	return svc
}

func TestReportService(t *testing.T) {
	svc := NewReportService(seededTransactions(t), clockAt(fixedNow))

	t.Run("summary", func(t *testing.T) {
		s := svc.Summary()
		if s.Income != 5000 || s.Expense != 2000 || s.NetBalance != 3000 {
			t.Errorf("unexpected totals %+v", s.Totals)
		}
		if !s.GeneratedAt.Equal(fixedNow) {
			t.Errorf("generated at %v", s.GeneratedAt)
		}
	})

	t.Run("details", func(t *testing.T) {
		d := svc.Details()
		if len(d.Rows) != 5 || d.Rows[0].ID != 3 {
			t.Errorf("unexpected rows %+v", d.Rows)
		}
	})

	t.Run("income_by_source", func(t *testing.T) {
		got := svc.IncomeBySource()
		if got.Total != 5000 || got.Sources["Tithes"] != 2500 {
			t.Errorf("unexpected sources %+v", got)
		}
	})

	t.Run("trend", func(t *testing.T) {
		trend := svc.Trend()
		if len(trend) != 5 || trend[4].Balance != 3000 {
			t.Errorf("unexpected trend %+v", trend)
		}
	})
}

func TestReportService_Empty(t *testing.T) {
	svc := NewReportService(newTestTransactionService(nil), nil)

	if s := svc.Summary(); s.RecordCount != 0 || s.NetBalance != 0 {
		t.Errorf("unexpected empty summary %+v", s)
	}
	if got := svc.IncomeBySource(); got.Total != 0 || len(got.Sources) != 0 {
		t.Errorf("unexpected empty sources %+v", got)
	}
	if got := svc.Trend(); len(got) != 0 {
		t.Errorf("unexpected empty trend %+v", got)
	}
}
