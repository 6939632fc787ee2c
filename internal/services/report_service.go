package services

import (
	"time"

	"cfcs/internal/models"
	"cfcs/internal/money"
	"cfcs/internal/report"
)

// reportService renders reports over the live ledger.
type reportService struct {
	transactions TransactionServicer
	now          func() time.Time
}

// NewReportService creates a new ReportServicer. A nil clock uses time.Now.
func NewReportService(transactions TransactionServicer, now func() time.Time) ReportServicer {
	if now == nil {
		now = time.Now
	}
	return &reportService{transactions: transactions, now: now}
}

func (s *reportService) Summary() report.Summary {
	return report.BuildSummary(s.transactions.AllTransactions(), s.now())
}

func (s *reportService) Details() report.Details {
	return report.BuildDetails(s.transactions.AllTransactions(), s.now())
}

func (s *reportService) IncomeBySource() IncomeSources {
	ts := s.transactions.AllTransactions()
	total := report.TotalByFlow(ts, models.FlowIncome)
	return IncomeSources{
		Sources:      report.IncomeBySource(ts),
		Total:        total,
		TotalDisplay: money.Format(total),
	}
}

func (s *reportService) Trend() []report.BalancePoint {
	return report.RunningBalanceSeries(s.transactions.AllTransactions())
}
