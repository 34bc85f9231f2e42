package service

import (
	"context"
	"fmt"

	"github.com/bekzodm/dayplan/internal/models"
)

const (
	reviewWindowDays = 7
	goodScoreCutoff  = 70.0
)

type reviewService struct {
	scores DisciplineService
	clock  Clock
}

// NewReviewService creates the weekly discipline reviewer.
func NewReviewService(scores DisciplineService, clock Clock) ReviewService {
	return &reviewService{scores: scores, clock: clock}
}

// WeeklySummary scores each of the trailing 7 days independently,
// averages them and renders the fixed summary template.
func (s *reviewService) WeeklySummary(ctx context.Context, ownerID string) (*models.WeeklyReview, error) {
	today := dayStart(s.clock.Now())

	var sum float64
	for i := reviewWindowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		score, err := s.scores.DailyScore(ctx, ownerID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", dateKey(day), err)
		}
		sum += score.Score
	}
	avg := round1(sum / reviewWindowDays)

	status := "o'rtacha"
	if avg > goodScoreCutoff {
		status = "yaxshi"
	}

	summary := fmt.Sprintf(
		"Haftalik Xulosa:\nO'rtacha intizom: %.1f/100.\nSiz bu hafta %s natija ko'rsatdingiz.",
		avg, status,
	)

	return &models.WeeklyReview{AverageScore: avg, Summary: summary}, nil
}
