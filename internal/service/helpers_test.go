package service

import (
	"context"
	"time"

	"github.com/bekzodm/dayplan/internal/models"
)

const testOwner = "owner-1"

// testToday is the fixed "today" every test clock reports.
var testToday = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// day returns testToday shifted by the given number of days.
func day(offset int) time.Time {
	return testToday.AddDate(0, 0, offset)
}

// at returns a clock-time on the given day.
func at(d time.Time, hour int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

// mockDailyDataRepository is an in-memory stand-in for the analytics
// read side. Records are filtered by owner and date range the same way
// the real store does.
type mockDailyDataRepository struct {
	sleeps []models.SleepInterval
	works  []models.WorkItem
	minds  []models.MindTask
	sports []models.SportSession
	habits []models.HabitRecord
	txs    []models.FinanceTransaction
	types  []models.MindTaskType

	err error // returned by every method when set
}

func rangeContains(t, start, end time.Time) bool {
	lo := dayStart(start)
	hi := dayStart(end).AddDate(0, 0, 1)
	return !t.Before(lo) && t.Before(hi)
}

func (m *mockDailyDataRepository) SleepIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]models.SleepInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.SleepInterval
	for _, v := range m.sleeps {
		if v.OwnerID == ownerID && rangeContains(v.Start, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) WorkItems(ctx context.Context, ownerID string, start, end time.Time) ([]models.WorkItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.WorkItem
	for _, v := range m.works {
		if v.OwnerID == ownerID && rangeContains(v.Date, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) MindTasks(ctx context.Context, ownerID string, start, end time.Time) ([]models.MindTask, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.MindTask
	for _, v := range m.minds {
		if v.OwnerID == ownerID && rangeContains(v.Date, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) SportSessions(ctx context.Context, ownerID string, start, end time.Time) ([]models.SportSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.SportSession
	for _, v := range m.sports {
		if v.OwnerID == ownerID && rangeContains(v.Date, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) HabitRecords(ctx context.Context, ownerID string, start, end time.Time) ([]models.HabitRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.HabitRecord
	for _, v := range m.habits {
		if v.OwnerID == ownerID && rangeContains(v.Date, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) FinanceTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]models.FinanceTransaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.FinanceTransaction
	for _, v := range m.txs {
		if v.OwnerID == ownerID && rangeContains(v.Date, start, end) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockDailyDataRepository) MindTaskTypes(ctx context.Context, ownerID string) ([]models.MindTaskType, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.MindTaskType
	for _, v := range m.types {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

// Record builders.

func sleepEndingOn(d time.Time, hours float64) models.SleepInterval {
	end := at(d, 8)
	start := end.Add(-time.Duration(hours * float64(time.Hour)))
	return models.SleepInterval{OwnerID: testOwner, Start: start, End: &end}
}

func workOn(d time.Time, completed bool) models.WorkItem {
	return models.WorkItem{OwnerID: testOwner, Kind: models.WorkActive, Completed: completed, Date: at(d, 10)}
}

func mindOn(d time.Time, typeID string, completed bool) models.MindTask {
	return models.MindTask{OwnerID: testOwner, TaskTypeID: typeID, Completed: completed, Date: at(d, 12)}
}

func sportOn(d time.Time, completed bool) models.SportSession {
	return models.SportSession{OwnerID: testOwner, ExerciseTypeID: "ex-1", Completed: completed, Date: at(d, 18)}
}

func habitOn(d time.Time, meals int, hygiene bool) models.HabitRecord {
	return models.HabitRecord{OwnerID: testOwner, Date: at(d, 9), MealCount: meals, MorningHygieneDone: hygiene}
}

func expenseOn(d time.Time, amount float64) models.FinanceTransaction {
	return models.FinanceTransaction{OwnerID: testOwner, Kind: models.FinanceExpense, Amount: amount, Date: at(d, 14)}
}

func incomeOn(d time.Time, kind models.FinanceKind, amount float64) models.FinanceTransaction {
	return models.FinanceTransaction{OwnerID: testOwner, Kind: kind, Amount: amount, Date: at(d, 14)}
}
