package service

import (
	"context"
	"fmt"
	"math"

	"github.com/bekzodm/dayplan/internal/models"
)

const (
	correlationWindowDays = 30

	// Minimum days with any data before correlating.
	minCorrelationRows = 5

	sleepWorkPositive = 0.5
	sleepWorkNegative = -0.3
	stressSpending    = -0.4
)

// dailyRow is one day of the correlation table.
type dailyRow struct {
	sleepHours float64
	workPerf   float64
	expense    float64
}

// Correlations builds the trailing-month daily table (sleep hours,
// work performance, expense) and translates pairwise Pearson
// coefficients into qualitative insights.
func (s *analyticsService) Correlations(ctx context.Context, ownerID string) (*models.CorrelationReport, error) {
	today := dayStart(s.clock.Now())
	start := today.AddDate(0, 0, -correlationWindowDays)

	sleeps, err := s.repo.SleepIntervals(ctx, ownerID, start.AddDate(0, 0, -1), today)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep intervals: %w", err)
	}
	works, err := s.repo.WorkItems(ctx, ownerID, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get work items: %w", err)
	}
	txs, err := s.repo.FinanceTransactions(ctx, ownerID, start, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get finance transactions: %w", err)
	}

	// Sleep is keyed by the wake date: a night ending on a day is
	// associated with that day's performance.
	sleepByDay := make(map[string]float64)
	for _, iv := range sleeps {
		if iv.End != nil {
			sleepByDay[dateKey(*iv.End)] += iv.Hours()
		}
	}
	workTotal := make(map[string]int)
	workDone := make(map[string]int)
	for _, w := range works {
		key := dateKey(w.Date)
		workTotal[key]++
		if w.Completed {
			workDone[key]++
		}
	}
	expenseByDay := make(map[string]float64)
	for _, tx := range txs {
		if tx.Kind == models.FinanceExpense {
			expenseByDay[dateKey(tx.Date)] += tx.Amount
		}
	}

	// Only days with data in at least one column enter the table;
	// a fully empty day carries no signal.
	var rows []dailyRow
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := dateKey(d)
		_, hasSleep := sleepByDay[key]
		_, hasWork := workTotal[key]
		_, hasExpense := expenseByDay[key]
		if !hasSleep && !hasWork && !hasExpense {
			continue
		}
		perf := 0.0
		if workTotal[key] > 0 {
			perf = float64(workDone[key]) / float64(workTotal[key]) * 100
		}
		rows = append(rows, dailyRow{
			sleepHours: sleepByDay[key],
			workPerf:   perf,
			expense:    expenseByDay[key],
		})
	}

	insights := make(map[models.InsightKey]string)
	if len(rows) < minCorrelationRows {
		insights[models.InsightInsufficientData] = msgInsufficientData
		return &models.CorrelationReport{Insights: insights}, nil
	}

	sleep := make([]float64, len(rows))
	perf := make([]float64, len(rows))
	expense := make([]float64, len(rows))
	for i, r := range rows {
		sleep[i] = r.sleepHours
		perf[i] = r.workPerf
		expense[i] = r.expense
	}

	switch corrSleepWork := pearson(sleep, perf); {
	case corrSleepWork > sleepWorkPositive:
		insights[models.InsightSleepWork] = msgSleepBoostsWork
	case corrSleepWork < sleepWorkNegative:
		insights[models.InsightSleepWork] = msgLessSleepStillWork
	default:
		insights[models.InsightSleepWork] = msgNoStrongLink
	}

	if pearson(perf, expense) < stressSpending {
		insights[models.InsightWorkExpense] = msgStressSpending
	}

	return &models.CorrelationReport{Insights: insights}, nil
}

// pearson computes the Pearson correlation coefficient. A series with
// zero variance yields 0.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}
	if denomX == 0 || denomY == 0 {
		return 0
	}
	return numerator / math.Sqrt(denomX*denomY)
}
