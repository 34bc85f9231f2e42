package repository

import (
	"context"
	"time"

	"github.com/bekzodm/dayplan/internal/models"
)

// DailyDataRepository is the read side the analytics engine consumes.
// start and end are calendar dates; implementations must return every
// record whose date falls on or after start's midnight and strictly
// before the midnight following end, i.e. the end date is fully
// included regardless of time of day. Sleep intervals are ranged by
// their start instant. Ordering is unspecified; callers group by date
// themselves.
type DailyDataRepository interface {
	SleepIntervals(ctx context.Context, ownerID string, start, end time.Time) ([]models.SleepInterval, error)
	WorkItems(ctx context.Context, ownerID string, start, end time.Time) ([]models.WorkItem, error)
	MindTasks(ctx context.Context, ownerID string, start, end time.Time) ([]models.MindTask, error)
	SportSessions(ctx context.Context, ownerID string, start, end time.Time) ([]models.SportSession, error)
	HabitRecords(ctx context.Context, ownerID string, start, end time.Time) ([]models.HabitRecord, error)
	FinanceTransactions(ctx context.Context, ownerID string, start, end time.Time) ([]models.FinanceTransaction, error)

	// MindTaskTypes resolves focus-area titles for the top-focus ranking.
	MindTaskTypes(ctx context.Context, ownerID string) ([]models.MindTaskType, error)
}

// FinanceRepository is the write/CRUD side of the finance domain.
type FinanceRepository interface {
	CreateCategory(ctx context.Context, cat *models.FinanceCategory) (*models.FinanceCategory, error)
	Categories(ctx context.Context, ownerID string) ([]models.FinanceCategory, error)
	CreateTransaction(ctx context.Context, tx *models.FinanceTransaction) (*models.FinanceTransaction, error)
	Transactions(ctx context.Context, ownerID string, limit, offset int) ([]models.FinanceTransaction, error)
	UpdateTransaction(ctx context.Context, id string, tx *models.FinanceTransaction) (*models.FinanceTransaction, error)
	AllTransactions(ctx context.Context, ownerID string) ([]models.FinanceTransaction, error)
}

// WorkRepository is the write/CRUD side of the work domain.
type WorkRepository interface {
	ItemsOnDay(ctx context.Context, ownerID string, day time.Time) ([]models.WorkItem, error)
	Create(ctx context.Context, item *models.WorkItem) (*models.WorkItem, error)
	Delete(ctx context.Context, id string) error
}

// HealthRepository is the write/CRUD side of sleep, sport and habits.
type HealthRepository interface {
	CreateExerciseType(ctx context.Context, et *models.ExerciseType) (*models.ExerciseType, error)
	ExerciseTypes(ctx context.Context, ownerID string) ([]models.ExerciseType, error)
	UpdateExerciseType(ctx context.Context, id string, et *models.ExerciseType) (*models.ExerciseType, error)

	CreateSportSession(ctx context.Context, s *models.SportSession) (*models.SportSession, error)
	UpdateSportSession(ctx context.Context, id string, s *models.SportSession) (*models.SportSession, error)
	SetSportSessionCompleted(ctx context.Context, id string, completed bool) (*models.SportSession, error)
	SportSessionHistory(ctx context.Context, ownerID string, limit int) ([]models.SportSession, error)

	LastSleepInterval(ctx context.Context, ownerID string) (*models.SleepInterval, error)
	CreateSleepInterval(ctx context.Context, s *models.SleepInterval) (*models.SleepInterval, error)
	CloseSleepInterval(ctx context.Context, id string, end time.Time) (*models.SleepInterval, error)
	SleepHistory(ctx context.Context, ownerID string, limit int) ([]models.SleepInterval, error)

	HabitOnDay(ctx context.Context, ownerID string, day time.Time) (*models.HabitRecord, error)
	UpsertHabit(ctx context.Context, h *models.HabitRecord) (*models.HabitRecord, error)
	HabitHistory(ctx context.Context, ownerID string, limit int) ([]models.HabitRecord, error)
}

// MindRepository is the write/CRUD side of the mind domain.
type MindRepository interface {
	CreateTaskType(ctx context.Context, tt *models.MindTaskType) (*models.MindTaskType, error)
	TaskTypes(ctx context.Context, ownerID string) ([]models.MindTaskType, error)
	UpdateTaskType(ctx context.Context, id string, tt *models.MindTaskType) (*models.MindTaskType, error)

	CreateTask(ctx context.Context, t *models.MindTask) (*models.MindTask, error)
	Tasks(ctx context.Context, ownerID string) ([]models.MindTask, error)
	UpdateTask(ctx context.Context, id string, t *models.MindTask) (*models.MindTask, error)
	SetTaskCompleted(ctx context.Context, id string, completed bool) (*models.MindTask, error)
}
