package models

import "time"

// FinanceKind classifies a finance transaction. The sign of a
// transaction's contribution to balance is derived from the kind;
// the stored amount is always a non-negative magnitude.
type FinanceKind string

const (
	FinanceActiveIncome  FinanceKind = "active_income"
	FinancePassiveIncome FinanceKind = "passive_income"
	FinanceExpense       FinanceKind = "expense"
)

// IsIncome reports whether the kind contributes positively to balance.
func (k FinanceKind) IsIncome() bool {
	return k == FinanceActiveIncome || k == FinancePassiveIncome
}

// WorkKind distinguishes active work from passive (recurring) work.
type WorkKind string

const (
	WorkActive  WorkKind = "active"
	WorkPassive WorkKind = "passive"
)

// ExpenseFrequency is only meaningful on expense transactions.
type ExpenseFrequency string

const (
	FrequencyWeekly  ExpenseFrequency = "weekly"
	FrequencyMonthly ExpenseFrequency = "monthly"
	FrequencyYearly  ExpenseFrequency = "yearly"
	FrequencyOneTime ExpenseFrequency = "one_time"
)

// User represents the account owning all tracked records.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// FinanceCategory groups transactions (e.g. "Oziq-ovqat", "Maosh").
type FinanceCategory struct {
	ID      string      `json:"id"`
	OwnerID string      `json:"owner_id"`
	Name    string      `json:"name"`
	Kind    FinanceKind `json:"kind"`
}

// FinanceTransaction is a single dated money movement.
type FinanceTransaction struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	Amount      float64           `json:"amount"`
	Kind        FinanceKind       `json:"kind"`
	Frequency   *ExpenseFrequency `json:"expense_frequency,omitempty"`
	CategoryID  *string           `json:"category_id,omitempty"`
	Description *string           `json:"description,omitempty"`
	Date        time.Time         `json:"date"`
}

// WorkItem is a planned piece of work for a day. Multiple per day
// are allowed.
type WorkItem struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Kind      WorkKind  `json:"kind"`
	Completed bool      `json:"is_completed"`
	Date      time.Time `json:"date"`
}

// ExerciseType is a user-defined exercise the sport sessions refer to.
type ExerciseType struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Active      bool    `json:"is_active"`
}

// SportSession is one planned workout on a day.
type SportSession struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	ExerciseTypeID string    `json:"exercise_type_id"`
	Completed      bool      `json:"is_completed"`
	Date           time.Time `json:"date"`
}

// SleepInterval is one sleep session. End is nil while the owner is
// still asleep; duration is undefined until the interval is closed.
type SleepInterval struct {
	ID      string     `json:"id"`
	OwnerID string     `json:"owner_id"`
	Start   time.Time  `json:"start_time"`
	End     *time.Time `json:"end_time,omitempty"`
}

// Hours returns the interval duration in hours, or 0 while open.
func (s SleepInterval) Hours() float64 {
	if s.End == nil {
		return 0
	}
	return s.End.Sub(s.Start).Hours()
}

// HabitRecord tracks the day's meal count and morning hygiene. By
// convention there is at most one per owner per day.
type HabitRecord struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"owner_id"`
	Date               time.Time `json:"date"`
	MealCount          int       `json:"meal_count"`
	MorningHygieneDone bool      `json:"morning_hygiene_done"`
}

// MindTaskType is a user-defined focus area ("Kitob", "Til o'rganish").
type MindTaskType struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"is_active"`
}

// MindTask is one planned mental-focus task on a day.
type MindTask struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	TaskTypeID string    `json:"task_type_id"`
	Completed  bool      `json:"is_completed"`
	Date       time.Time `json:"date"`
}

// WorkStatus is the day-level view of work: whether an active and/or
// passive item exists for today.
type WorkStatus struct {
	Active  bool `json:"active"`
	Passive bool `json:"passive"`
	IsSaved bool `json:"is_saved"`
}
