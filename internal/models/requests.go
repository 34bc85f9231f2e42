package models

import "time"

// CreateFinanceCategoryRequest creates a transaction category.
type CreateFinanceCategoryRequest struct {
	Name string      `json:"name" binding:"required"`
	Kind FinanceKind `json:"kind" binding:"required,oneof=active_income passive_income expense"`
}

// CreateFinanceTransactionRequest creates or replaces a transaction.
// Date defaults to the current time when omitted.
type CreateFinanceTransactionRequest struct {
	Amount      float64           `json:"amount" binding:"required,gte=0"`
	Kind        FinanceKind       `json:"kind" binding:"required,oneof=active_income passive_income expense"`
	Frequency   *ExpenseFrequency `json:"expense_frequency" binding:"omitempty,oneof=weekly monthly yearly one_time"`
	CategoryID  *string           `json:"category_id"`
	Description *string           `json:"description"`
	Date        *time.Time        `json:"date"`
}

// CreateExerciseTypeRequest defines a reusable exercise.
type CreateExerciseTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Sets        int     `json:"sets" binding:"gte=0"`
	Reps        int     `json:"reps" binding:"gte=0"`
	Active      *bool   `json:"is_active"`
}

// CreateSportSessionRequest plans a workout for a day.
type CreateSportSessionRequest struct {
	ExerciseTypeID string     `json:"exercise_type_id" binding:"required"`
	Completed      bool       `json:"is_completed"`
	Date           *time.Time `json:"date"`
}

// UpsertHabitRequest creates or updates today's habit record.
type UpsertHabitRequest struct {
	MealCount          *int  `json:"meal_count" binding:"omitempty,gte=0"`
	MorningHygieneDone *bool `json:"morning_hygiene_done"`
}

// CreateMindTaskTypeRequest defines a focus area.
type CreateMindTaskTypeRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
}

// CreateMindTaskRequest plans a mental-focus task for a day.
type CreateMindTaskRequest struct {
	TaskTypeID string     `json:"task_type_id" binding:"required"`
	Completed  bool       `json:"is_completed"`
	Date       *time.Time `json:"date"`
}

// SetCompletedRequest toggles an item's completion flag.
type SetCompletedRequest struct {
	Completed *bool `json:"is_completed" binding:"required"`
}

// UpdateWorkStatusRequest sets today's active/passive work flags.
type UpdateWorkStatusRequest struct {
	Active  bool `json:"active"`
	Passive bool `json:"passive"`
}
