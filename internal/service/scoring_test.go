package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/bekzodm/dayplan/internal/models"
)

func TestDailyScoreFullDay(t *testing.T) {
	today := testToday
	repo := &mockDailyDataRepository{
		sleeps: []models.SleepInterval{sleepEndingOn(today, 8)},
		works:  []models.WorkItem{workOn(today, true), workOn(today, true)},
		minds: []models.MindTask{
			mindOn(today, "tt-1", true),
			mindOn(today, "tt-1", true),
			mindOn(today, "tt-2", false),
			mindOn(today, "tt-2", false),
		},
		sports: []models.SportSession{sportOn(today, true)},
		habits: []models.HabitRecord{habitOn(today, 3, true)},
	}
	svc := NewDisciplineService(repo)

	got, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	// 100*0.20 + 100*0.30 + 50*0.25 + 100*0.15 + 100*0.10
	if got.Score != 92.5 {
		t.Errorf("Score = %v, want 92.5", got.Score)
	}
	if got.Date != "2024-05-20" {
		t.Errorf("Date = %q, want 2024-05-20", got.Date)
	}
}

func TestDailyScoreEmptyDay(t *testing.T) {
	svc := NewDisciplineService(&mockDailyDataRepository{})

	got, err := svc.DailyScore(context.Background(), testOwner, testToday)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	if got.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", got.Score)
	}
}

func TestDailyScoreRange(t *testing.T) {
	today := testToday
	cases := []struct {
		name string
		repo *mockDailyDataRepository
	}{
		{"everything done", &mockDailyDataRepository{
			sleeps: []models.SleepInterval{sleepEndingOn(today, 12)},
			works:  []models.WorkItem{workOn(today, true)},
			minds:  []models.MindTask{mindOn(today, "tt-1", true)},
			sports: []models.SportSession{sportOn(today, true)},
			habits: []models.HabitRecord{habitOn(today, 5, true)},
		}},
		{"nothing done", &mockDailyDataRepository{
			works:  []models.WorkItem{workOn(today, false), workOn(today, false)},
			minds:  []models.MindTask{mindOn(today, "tt-1", false)},
			sports: []models.SportSession{sportOn(today, false)},
			habits: []models.HabitRecord{habitOn(today, 0, false)},
		}},
		{"partial", &mockDailyDataRepository{
			sleeps: []models.SleepInterval{sleepEndingOn(today, 5.5)},
			works:  []models.WorkItem{workOn(today, true), workOn(today, false), workOn(today, false)},
			habits: []models.HabitRecord{habitOn(today, 2, true)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewDisciplineService(tc.repo)
			got, err := svc.DailyScore(context.Background(), testOwner, today)
			if err != nil {
				t.Fatalf("DailyScore() error = %v", err)
			}
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("Score = %v, want within [0,100]", got.Score)
			}
		})
	}
}

func TestDailyScoreOvershootCapped(t *testing.T) {
	today := testToday
	repo := &mockDailyDataRepository{
		// 12h of sleep and 6 meals must not push sub-scores past 100.
		sleeps: []models.SleepInterval{sleepEndingOn(today, 12)},
		works:  []models.WorkItem{workOn(today, true)},
		minds:  []models.MindTask{mindOn(today, "tt-1", true)},
		sports: []models.SportSession{sportOn(today, true)},
		habits: []models.HabitRecord{habitOn(today, 6, true)},
	}
	svc := NewDisciplineService(repo)

	got, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	if got.Score != 100.0 {
		t.Errorf("Score = %v, want 100.0", got.Score)
	}
}

func TestDailyScoreOpenSleepInterval(t *testing.T) {
	today := testToday
	repo := &mockDailyDataRepository{
		sleeps: []models.SleepInterval{{OwnerID: testOwner, Start: at(today, 0)}},
		works:  []models.WorkItem{workOn(today, true)},
	}
	svc := NewDisciplineService(repo)

	got, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	// Only the work weight fires; the open interval contributes nothing.
	if got.Score != 30.0 {
		t.Errorf("Score = %v, want 30.0", got.Score)
	}
}

func TestDailyScoreIgnoresOtherOwners(t *testing.T) {
	today := testToday
	other := workOn(today, true)
	other.OwnerID = "someone-else"
	svc := NewDisciplineService(&mockDailyDataRepository{works: []models.WorkItem{other}})

	got, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	if got.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", got.Score)
	}
}

func TestDailyScoreRepoError(t *testing.T) {
	wantErr := errors.New("storage unavailable")
	svc := NewDisciplineService(&mockDailyDataRepository{err: wantErr})

	if _, err := svc.DailyScore(context.Background(), testOwner, testToday); !errors.Is(err, wantErr) {
		t.Errorf("DailyScore() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestDailyScoreIdempotent(t *testing.T) {
	today := testToday
	repo := &mockDailyDataRepository{
		sleeps: []models.SleepInterval{sleepEndingOn(today, 6.5)},
		works:  []models.WorkItem{workOn(today, true), workOn(today, false)},
		habits: []models.HabitRecord{habitOn(today, 2, false)},
	}
	svc := NewDisciplineService(repo)

	first, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	second, err := svc.DailyScore(context.Background(), testOwner, today)
	if err != nil {
		t.Fatalf("DailyScore() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated call diverged: %+v vs %+v", first, second)
	}
}
