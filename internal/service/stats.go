package service

import (
	"context"
	"fmt"

	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
)

const (
	statsWindowDays  = 30
	weeklyWindowDays = 7

	// Two habit points per day (hygiene + meals) over a week.
	habitMaxWeeklyPoints = weeklyWindowDays * 2
)

type analyticsService struct {
	repo  repository.DailyDataRepository
	clock Clock
}

// NewAnalyticsService creates the streak/stats/history/correlation
// analyzer. The clock anchors every trailing window.
func NewAnalyticsService(repo repository.DailyDataRepository, clock Clock) AnalyticsService {
	return &analyticsService{repo: repo, clock: clock}
}

func (s *analyticsService) WorkStats(ctx context.Context, ownerID string) (*models.WorkStats, error) {
	today := dayStart(s.clock.Now())
	start := today.AddDate(0, 0, -statsWindowDays)

	works, err := s.repo.WorkItems(ctx, ownerID, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get work items: %w", err)
	}

	// Days with at least one completed item.
	completedDays := make(map[string]bool)
	totalCompleted := 0
	for _, w := range works {
		if w.Completed {
			completedDays[dateKey(w.Date)] = true
			totalCompleted++
		}
	}

	// Walk backward from today; today only counts if it is already
	// done, and the first gap (no items or none completed) ends the
	// streak.
	streak := 0
	for d := today; completedDays[dateKey(d)]; d = d.AddDate(0, 0, -1) {
		streak++
	}

	weekStart := today.AddDate(0, 0, -(weeklyWindowDays - 1))
	weekTotal, weekCompleted := 0, 0
	for _, w := range works {
		if dayStart(w.Date).Before(weekStart) {
			continue
		}
		weekTotal++
		if w.Completed {
			weekCompleted++
		}
	}
	rate := 0.0
	if weekTotal > 0 {
		rate = float64(weekCompleted) / float64(weekTotal) * 100
	}

	msg := msgWorkStart
	if streak > 3 {
		msg = msgWorkUnstoppable
	}
	if streak > 7 {
		msg = msgWorkMachine
	}
	if rate < 30 && weekTotal > 0 {
		msg = msgWorkSmallSteps
	}

	return &models.WorkStats{
		StreakDays:           streak,
		WeeklyCompletionRate: round1(rate),
		TotalCompleted:       totalCompleted,
		MotivationMessage:    msg,
	}, nil
}

func (s *analyticsService) HealthStats(ctx context.Context, ownerID string) (*models.HealthStats, error) {
	today := dayStart(s.clock.Now())
	weekStart := today.AddDate(0, 0, -(weeklyWindowDays - 1))

	// Reach one extra day back so intervals that started before the
	// window but ended inside it are seen.
	sleeps, err := s.repo.SleepIntervals(ctx, ownerID, weekStart.AddDate(0, 0, -1), today)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep intervals: %w", err)
	}
	sports, err := s.repo.SportSessions(ctx, ownerID, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport sessions: %w", err)
	}
	habits, err := s.repo.HabitRecords(ctx, ownerID, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit records: %w", err)
	}

	var totalHours float64
	nights := 0
	for _, iv := range sleeps {
		if iv.End == nil {
			continue
		}
		endDay := dayStart(*iv.End)
		if endDay.Before(weekStart) || endDay.After(today) {
			continue
		}
		totalHours += iv.Hours()
		nights++
	}
	avgSleep := 0.0
	if nights > 0 {
		avgSleep = round1(totalHours / float64(nights))
	}

	sportDays := make(map[string]bool)
	for _, sp := range sports {
		if sp.Completed {
			sportDays[dateKey(sp.Date)] = true
		}
	}

	// One record per day by convention; extras on the same day are
	// ignored.
	seen := make(map[string]bool)
	points := 0
	for _, h := range habits {
		key := dateKey(h.Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		if h.MorningHygieneDone {
			points++
		}
		if h.MealCount >= 3 {
			points++
		}
	}
	consistency := round1(float64(points) / habitMaxWeeklyPoints * 100)

	msg := msgHealthBase
	if len(sportDays) >= 3 {
		msg = msgHealthChampion
	}
	if avgSleep < 6 && nights > 0 {
		msg = msgHealthSleepWarn
	}

	return &models.HealthStats{
		AvgSleepHours:     avgSleep,
		SportDaysWeekly:   len(sportDays),
		HabitConsistency:  consistency,
		MotivationMessage: msg,
	}, nil
}

func (s *analyticsService) MindStats(ctx context.Context, ownerID string) (*models.MindStats, error) {
	today := dayStart(s.clock.Now())
	weekStart := today.AddDate(0, 0, -(weeklyWindowDays - 1))

	tasks, err := s.repo.MindTasks(ctx, ownerID, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get mind tasks: %w", err)
	}

	completed := 0
	countsByType := make(map[string]int)
	for _, t := range tasks {
		if t.Completed {
			completed++
			countsByType[t.TaskTypeID]++
		}
	}

	topFocus := topFocusFallback
	if len(countsByType) > 0 {
		types, err := s.repo.MindTaskTypes(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to get mind task types: %w", err)
		}
		best := 0
		for _, tt := range types {
			if c := countsByType[tt.ID]; c > best {
				best = c
				topFocus = tt.Title
			}
		}
	}

	msg := msgMindBase
	if completed > 5 {
		msg = msgMindSharp
	}

	return &models.MindStats{
		TasksWeekly:       completed,
		TopFocusArea:      topFocus,
		MotivationMessage: msg,
	}, nil
}
