package handlers

import (
	"net/http"
	"time"

	"github.com/bekzodm/dayplan/internal/apierror"
	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/observability"
	"github.com/bekzodm/dayplan/internal/service"
	"github.com/gin-gonic/gin"
)

const dateQueryLayout = "2006-01-02"

type AnalyticsHandler struct {
	scores    service.DisciplineService
	analytics service.AnalyticsService
	finance   service.FinanceService
	review    service.ReviewService
	clock     service.Clock
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	scores service.DisciplineService,
	analytics service.AnalyticsService,
	finance service.FinanceService,
	review service.ReviewService,
	clock service.Clock,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		scores:    scores,
		analytics: analytics,
		finance:   finance,
		review:    review,
		clock:     clock,
	}
}

// GetDiscipline handles GET /api/v1/analytics/discipline
// An optional ?date=YYYY-MM-DD query scores a past day; the default is
// today.
func (h *AnalyticsHandler) GetDiscipline(c *gin.Context) {
	ownerID := middleware.OwnerID(c)

	date := h.clock.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
				"invalid date query parameter", "Date must look like 2024-05-20"))
			return
		}
		date = parsed
	}

	score, err := h.scores.DailyScore(c.Request.Context(), ownerID, date)
	if err != nil {
		writeInternal(c, "failed to compute discipline score", err)
		return
	}
	observability.RecordDisciplineScore(score.Score)

	c.JSON(http.StatusOK, score)
}

// GetWorkStats handles GET /api/v1/analytics/stats/work
func (h *AnalyticsHandler) GetWorkStats(c *gin.Context) {
	stats, err := h.analytics.WorkStats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute work stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetHealthStats handles GET /api/v1/analytics/stats/health
func (h *AnalyticsHandler) GetHealthStats(c *gin.Context) {
	stats, err := h.analytics.HealthStats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute health stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMindStats handles GET /api/v1/analytics/stats/mind
func (h *AnalyticsHandler) GetMindStats(c *gin.Context) {
	stats, err := h.analytics.MindStats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute mind stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetHistory handles GET /api/v1/analytics/history/:metric
func (h *AnalyticsHandler) GetHistory(c *gin.Context) {
	metric, ok := models.ParseMetric(c.Param("metric"))
	if !ok {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID,
			"unknown metric "+c.Param("metric"),
			"Metric must be one of: work, health_sleep, mind_tasks, health_sport, finance_expense"))
		return
	}

	stats, err := h.analytics.DetailedStats(c.Request.Context(), middleware.OwnerID(c), metric)
	if err != nil {
		writeInternal(c, "failed to build metric history", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCorrelations handles GET /api/v1/analytics/correlations
func (h *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	report, err := h.analytics.Correlations(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute correlations", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetFinanceHealth handles GET /api/v1/analytics/finance-health
func (h *AnalyticsHandler) GetFinanceHealth(c *gin.Context) {
	report, err := h.finance.HealthReport(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute finance health", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetWeeklySummary handles GET /api/v1/analytics/weekly-summary
func (h *AnalyticsHandler) GetWeeklySummary(c *gin.Context) {
	summary, err := h.review.WeeklySummary(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to build weekly summary", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

