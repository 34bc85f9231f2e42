package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
)

// Discipline score weights. They must sum to 1.0; anyone changing a
// weight has to re-verify the sum.
const (
	weightSleep  = 0.20
	weightWork   = 0.30
	weightMind   = 0.25
	weightSport  = 0.15
	weightHabits = 0.10

	sleepTargetHours = 8.0
	mealTarget       = 3.0
)

type disciplineService struct {
	repo repository.DailyDataRepository
}

// NewDisciplineService creates the daily discipline score calculator.
func NewDisciplineService(repo repository.DailyDataRepository) DisciplineService {
	return &disciplineService{repo: repo}
}

// dayRecords bundles one calendar day's raw logs.
type dayRecords struct {
	sleeps []models.SleepInterval
	works  []models.WorkItem
	minds  []models.MindTask
	sports []models.SportSession
	habits []models.HabitRecord
}

// dayMetrics holds the five normalized 0-100 sub-scores for one day.
type dayMetrics struct {
	sleep  float64
	work   float64
	mind   float64
	sport  float64
	habits float64
}

func (s *disciplineService) DailyScore(ctx context.Context, ownerID string, date time.Time) (*models.DisciplineScore, error) {
	day := dayStart(date)

	// Sleep usually starts the previous evening, so the fetch reaches
	// one day back; the aggregator keys intervals by their end date.
	sleeps, err := s.repo.SleepIntervals(ctx, ownerID, day.AddDate(0, 0, -1), day)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep intervals: %w", err)
	}
	works, err := s.repo.WorkItems(ctx, ownerID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get work items: %w", err)
	}
	minds, err := s.repo.MindTasks(ctx, ownerID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get mind tasks: %w", err)
	}
	sports, err := s.repo.SportSessions(ctx, ownerID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get sport sessions: %w", err)
	}
	habits, err := s.repo.HabitRecords(ctx, ownerID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get habit records: %w", err)
	}

	m := aggregateDay(day, dayRecords{
		sleeps: sleeps,
		works:  works,
		minds:  minds,
		sports: sports,
		habits: habits,
	})

	score := round1(m.sleep*weightSleep +
		m.work*weightWork +
		m.mind*weightMind +
		m.sport*weightSport +
		m.habits*weightHabits)

	return &models.DisciplineScore{Date: dateKey(day), Score: score}, nil
}

// aggregateDay reduces one day's records into the five sub-metrics.
// Absent records score zero; no rule here raises an error.
func aggregateDay(day time.Time, recs dayRecords) dayMetrics {
	var m dayMetrics

	// Sleep: hours of every interval ending this day, linear up to the
	// 8h target. Open intervals contribute nothing.
	var hours float64
	for _, iv := range recs.sleeps {
		if iv.End != nil && sameDay(*iv.End, day) {
			hours += iv.Hours()
		}
	}
	if hours > 0 {
		m.sleep = minFloat(hours/sleepTargetHours, 1) * 100
	}

	// Work: completion ratio. No planned work scores 0, not neutral.
	total, done := 0, 0
	for _, w := range recs.works {
		if !sameDay(w.Date, day) {
			continue
		}
		total++
		if w.Completed {
			done++
		}
	}
	m.work = completionRatio(total, done)

	// Mind: same ratio rule as work.
	total, done = 0, 0
	for _, t := range recs.minds {
		if !sameDay(t.Date, day) {
			continue
		}
		total++
		if t.Completed {
			done++
		}
	}
	m.mind = completionRatio(total, done)

	// Sport: binary, any completed session counts once.
	for _, sp := range recs.sports {
		if sameDay(sp.Date, day) && sp.Completed {
			m.sport = 100
			break
		}
	}

	// Habits: hygiene is half the score, meals the other half. Only the
	// first record is consulted when more than one exists.
	for _, h := range recs.habits {
		if !sameDay(h.Date, day) {
			continue
		}
		if h.MorningHygieneDone {
			m.habits += 50
		}
		m.habits += minFloat(float64(h.MealCount)/mealTarget, 1) * 50
		break
	}

	return m
}

// completionRatio returns done/total as a 0-100 score, 0 when nothing
// was planned.
func completionRatio(total, done int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
