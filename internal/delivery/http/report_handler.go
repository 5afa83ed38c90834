package http

import (
	"net/http"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/logger"
	"github.com/smartpark/garage/internal/usecase/report"
)

// ReportHandler обрабатывает запросы отчетов
type ReportHandler struct {
	reportService *report.Service
	logger        logger.Logger
}

// NewReportHandler создает новый handler
func NewReportHandler(reportService *report.Service, logger logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// GetSummary возвращает сводку по всем данным
// GET /api/v1/reports/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.BuildSummary(r.Context())
	if err != nil {
		h.logger.Error("Failed to build summary", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}

// GetDailyReport возвращает отчет за день
// GET /api/v1/reports/daily?date=2024-01-15
func (h *ReportHandler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !domain.ValidDate(date) {
		respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	dailyReport, err := h.reportService.BuildDailyReport(r.Context(), date)
	if err != nil {
		h.logger.Error("Failed to build daily report", map[string]interface{}{
			"date":  date,
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to build daily report")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    dailyReport,
	})
}
