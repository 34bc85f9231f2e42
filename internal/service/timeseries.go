package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bekzodm/dayplan/internal/models"
)

const (
	historyWindowDays = 30
	growthChangePct   = 5.0
)

// DetailedStats builds the day-bucketed series for one metric over the
// trailing 60 days, split into a previous and a current 30-day
// sub-window, and compares their averages.
func (s *analyticsService) DetailedStats(ctx context.Context, ownerID string, metric models.Metric) (*models.DetailedStats, error) {
	today := dayStart(s.clock.Now())
	totalDays := historyWindowDays * 2
	start := today.AddDate(0, 0, -(totalDays - 1))

	values, err := s.dailyValues(ctx, ownerID, metric, start, today)
	if err != nil {
		return nil, err
	}

	var history []models.HistoryPoint
	var prevSum, currSum float64
	for i := 0; i < totalDays; i++ {
		day := start.AddDate(0, 0, i)
		val := values[dateKey(day)]
		if i < historyWindowDays {
			prevSum += val
		} else {
			currSum += val
			history = append(history, models.HistoryPoint{
				Date:  dateKey(day),
				Value: round2(val),
			})
		}
	}

	prevAvg := prevSum / historyWindowDays
	currAvg := currSum / historyWindowDays

	growth := 0.0
	if prevAvg > 0 {
		growth = (currAvg - prevAvg) / prevAvg * 100
	}

	text := noChangeText
	if growth > growthChangePct {
		text = fmt.Sprintf(growthUpFormat, round1(growth))
	} else if growth < -growthChangePct {
		text = fmt.Sprintf(growthDownFormat, math.Abs(round1(growth)))
	}

	return &models.DetailedStats{
		History:        history,
		GrowthPct:      round1(growth),
		AverageValue:   round1(currAvg),
		TotalValue:     math.Round(currSum),
		ComparisonText: text,
	}, nil
}

const (
	noChangeText     = "O'zgarish yo'q"
	growthUpFormat   = "O'tgan oyga nisbatan %v%% o'sish!"
	growthDownFormat = "O'tgan oyga nisbatan %v%% pasayish."
)

// dailyValues computes the metric's per-day value map for [start, end].
// Days with no records are simply absent and read back as zero.
func (s *analyticsService) dailyValues(ctx context.Context, ownerID string, metric models.Metric, start, end time.Time) (map[string]float64, error) {
	values := make(map[string]float64)

	switch metric {
	case models.MetricWork:
		works, err := s.repo.WorkItems(ctx, ownerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get work items: %w", err)
		}
		total := make(map[string]int)
		done := make(map[string]int)
		for _, w := range works {
			key := dateKey(w.Date)
			total[key]++
			if w.Completed {
				done[key]++
			}
		}
		for key, n := range total {
			values[key] = float64(done[key]) / float64(n) * 100
		}

	case models.MetricHealthSleep:
		sleeps, err := s.repo.SleepIntervals(ctx, ownerID, start.AddDate(0, 0, -1), end)
		if err != nil {
			return nil, fmt.Errorf("failed to get sleep intervals: %w", err)
		}
		for _, iv := range sleeps {
			if iv.End != nil {
				values[dateKey(*iv.End)] += iv.Hours()
			}
		}

	case models.MetricMindTasks:
		tasks, err := s.repo.MindTasks(ctx, ownerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get mind tasks: %w", err)
		}
		for _, t := range tasks {
			if t.Completed {
				values[dateKey(t.Date)]++
			}
		}

	case models.MetricHealthSport:
		sessions, err := s.repo.SportSessions(ctx, ownerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get sport sessions: %w", err)
		}
		for _, sp := range sessions {
			if sp.Completed {
				values[dateKey(sp.Date)]++
			}
		}

	case models.MetricFinanceExpense:
		txs, err := s.repo.FinanceTransactions(ctx, ownerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get finance transactions: %w", err)
		}
		for _, tx := range txs {
			if tx.Kind == models.FinanceExpense {
				values[dateKey(tx.Date)] += tx.Amount
			}
		}

	default:
		return nil, fmt.Errorf("unknown metric %q", metric)
	}

	return values, nil
}
