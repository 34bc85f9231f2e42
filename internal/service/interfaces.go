package service

import (
	"context"
	"time"

	"github.com/bekzodm/dayplan/internal/models"
)

// DisciplineService computes the composite daily discipline score.
type DisciplineService interface {
	DailyScore(ctx context.Context, ownerID string, date time.Time) (*models.DisciplineScore, error)
}

// AnalyticsService derives streaks, weekly stats, metric histories and
// cross-domain correlations from the raw logs.
type AnalyticsService interface {
	WorkStats(ctx context.Context, ownerID string) (*models.WorkStats, error)
	HealthStats(ctx context.Context, ownerID string) (*models.HealthStats, error)
	MindStats(ctx context.Context, ownerID string) (*models.MindStats, error)
	DetailedStats(ctx context.Context, ownerID string, metric models.Metric) (*models.DetailedStats, error)
	Correlations(ctx context.Context, ownerID string) (*models.CorrelationReport, error)
}

// FinanceService computes the trailing-month finance health report and
// plain income/expense rollups.
type FinanceService interface {
	HealthReport(ctx context.Context, ownerID string) (*models.FinanceHealth, error)
	DailyStats(ctx context.Context, ownerID string) (*models.DailyFinanceStat, error)
	MonthlyStats(ctx context.Context, ownerID string) ([]models.MonthlyFinanceStat, error)
}

// ReviewService renders the weekly discipline summary.
type ReviewService interface {
	WeeklySummary(ctx context.Context, ownerID string) (*models.WeeklyReview, error)
}
