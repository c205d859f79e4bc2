package handler

import (
	"net/http"

	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Daily handles GET /api/v1/reports/daily — today's sales total and profit.
func (h *ReportHandler) Daily(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.DailyProfit(c.Request.Context()))
}

// Monthly handles GET /api/v1/reports/monthly — the current calendar month.
func (h *ReportHandler) Monthly(c *gin.Context) {
	c.JSON(http.StatusOK, h.reports.MonthlyProfit(c.Request.Context()))
}
