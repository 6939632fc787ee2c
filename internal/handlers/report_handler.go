package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cfcs/internal/report"
	"cfcs/internal/services"
)

// ReportHandler serves reports over the live ledger.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TrendResponse wraps the running balance series.
type TrendResponse struct {
	Points []report.BalancePoint `json:"points"`
}

// GetSummary returns the structured summary report
// @Summary     Summary report
// @Description Totals, category breakdown, income by source and balance trend of the live ledger
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.Summary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Summary())
}

// GetDetails returns the detail table
// @Summary     Full details
// @Description Every transaction, newest first, with its percentage of all money moved
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.Details
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /reports/details [get]
func (h *ReportHandler) GetDetails(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.Details())
}

// GetIncomeSources returns income per type
// @Summary     Income by source
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.IncomeSources
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /reports/income-sources [get]
func (h *ReportHandler) GetIncomeSources(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.IncomeBySource())
}

// GetTrend returns the running balance series
// @Summary     Balance trend
// @Description Net balance after each record in chronological order
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} TrendResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin only"
// @Router      /reports/trend [get]
func (h *ReportHandler) GetTrend(c *gin.Context) {
	points := h.reportService.Trend()
	if points == nil {
		points = []report.BalancePoint{}
	}
	c.JSON(http.StatusOK, TrendResponse{Points: points})
}
