package service

import (
	"context"
	"testing"

	"github.com/bekzodm/dayplan/internal/models"
)

func TestCorrelationsInsufficientData(t *testing.T) {
	repo := &mockDailyDataRepository{
		sleeps: []models.SleepInterval{sleepEndingOn(day(0), 7)},
		works:  []models.WorkItem{workOn(day(-1), true)},
		txs:    []models.FinanceTransaction{expenseOn(day(-2), 40)},
	}
	svc := NewAnalyticsService(repo, fixedClock{testToday})

	got, err := svc.Correlations(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("Correlations() error = %v", err)
	}
	if len(got.Insights) != 1 {
		t.Fatalf("len(Insights) = %d, want exactly 1", len(got.Insights))
	}
	if msg := got.Insights[models.InsightInsufficientData]; msg != msgInsufficientData {
		t.Errorf("insufficient_data = %q, want %q", msg, msgInsufficientData)
	}
}

func TestCorrelationsSleepBoostsWork(t *testing.T) {
	// Six days where more sleep tracks completed work: strongly positive.
	hours := []float64{4, 5, 6, 7, 8, 9}
	repo := &mockDailyDataRepository{}
	for i, h := range hours {
		d := day(-i)
		repo.sleeps = append(repo.sleeps, sleepEndingOn(d, h))
		repo.works = append(repo.works, workOn(d, h >= 7))
	}
	svc := NewAnalyticsService(repo, fixedClock{testToday})

	got, err := svc.Correlations(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("Correlations() error = %v", err)
	}
	if msg := got.Insights[models.InsightSleepWork]; msg != msgSleepBoostsWork {
		t.Errorf("sleep_work = %q, want %q", msg, msgSleepBoostsWork)
	}
	if _, ok := got.Insights[models.InsightWorkExpense]; ok {
		t.Error("work_expense insight fired with no expense variance")
	}
	if _, ok := got.Insights[models.InsightInsufficientData]; ok {
		t.Error("insufficient_data fired with 6 rows")
	}
}

func TestCorrelationsLessSleepStillWork(t *testing.T) {
	// Inverted: the short-sleep days are the productive ones.
	hours := []float64{9, 8, 7, 6, 5, 4}
	repo := &mockDailyDataRepository{}
	for i, h := range hours {
		d := day(-i)
		repo.sleeps = append(repo.sleeps, sleepEndingOn(d, h))
		repo.works = append(repo.works, workOn(d, h <= 6))
	}
	svc := NewAnalyticsService(repo, fixedClock{testToday})

	got, err := svc.Correlations(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("Correlations() error = %v", err)
	}
	if msg := got.Insights[models.InsightSleepWork]; msg != msgLessSleepStillWork {
		t.Errorf("sleep_work = %q, want %q", msg, msgLessSleepStillWork)
	}
}

func TestCorrelationsStressSpending(t *testing.T) {
	// Constant sleep kills the sleep/work signal (zero variance reads
	// as 0), while spending spikes exactly on the unproductive days.
	repo := &mockDailyDataRepository{}
	for i := 0; i < 6; i++ {
		d := day(-i)
		productive := i >= 3
		repo.sleeps = append(repo.sleeps, sleepEndingOn(d, 7))
		repo.works = append(repo.works, workOn(d, productive))
		if !productive {
			repo.txs = append(repo.txs, expenseOn(d, 100))
		}
	}
	svc := NewAnalyticsService(repo, fixedClock{testToday})

	got, err := svc.Correlations(context.Background(), testOwner)
	if err != nil {
		t.Fatalf("Correlations() error = %v", err)
	}
	if msg := got.Insights[models.InsightSleepWork]; msg != msgNoStrongLink {
		t.Errorf("sleep_work = %q, want %q", msg, msgNoStrongLink)
	}
	if msg := got.Insights[models.InsightWorkExpense]; msg != msgStressSpending {
		t.Errorf("work_expense = %q, want %q", msg, msgStressSpending)
	}
}

func TestPearson(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"perfect negative", []float64{1, 2, 3}, []float64{6, 4, 2}, -1},
		{"zero variance", []float64{5, 5, 5}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
		{"length mismatch", []float64{1, 2}, []float64{1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pearson(tc.xs, tc.ys); got != tc.want {
				t.Errorf("pearson() = %v, want %v", got, tc.want)
			}
		})
	}
}
