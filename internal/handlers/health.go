package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bekzodm/dayplan/internal/apierror"
	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
	"github.com/bekzodm/dayplan/internal/service"
	"github.com/gin-gonic/gin"
)

// maxSleepHours caps a sleep interval when the owner forgets to log
// waking up; anything longer is closed at this duration.
const maxSleepHours = 11

type HealthHandler struct {
	repo  repository.HealthRepository
	clock service.Clock
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(repo repository.HealthRepository, clock service.Clock) *HealthHandler {
	return &HealthHandler{repo: repo, clock: clock}
}

// CreateExerciseType handles POST /api/v1/health/exercise-types
func (h *HealthHandler) CreateExerciseType(c *gin.Context) {
	var req models.CreateExerciseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	et, err := h.repo.CreateExerciseType(c.Request.Context(), &models.ExerciseType{
		OwnerID:     middleware.OwnerID(c),
		Name:        req.Name,
		Description: req.Description,
		Sets:        req.Sets,
		Reps:        req.Reps,
		Active:      active,
	})
	if err != nil {
		writeInternal(c, "failed to create exercise type", err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

// GetExerciseTypes handles GET /api/v1/health/exercise-types
func (h *HealthHandler) GetExerciseTypes(c *gin.Context) {
	types, err := h.repo.ExerciseTypes(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to list exercise types", err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateSportSession handles POST /api/v1/health/sport-sessions
func (h *HealthHandler) CreateSportSession(c *gin.Context) {
	var req models.CreateSportSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	date := h.clock.Now()
	if req.Date != nil {
		date = *req.Date
	}
	sess, err := h.repo.CreateSportSession(c.Request.Context(), &models.SportSession{
		OwnerID:        middleware.OwnerID(c),
		ExerciseTypeID: req.ExerciseTypeID,
		Completed:      req.Completed,
		Date:           date,
	})
	if err != nil {
		writeInternal(c, "failed to create sport session", err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// SetSportSessionCompleted handles PATCH /api/v1/health/sport-sessions/:id/completed
func (h *HealthHandler) SetSportSessionCompleted(c *gin.Context) {
	var req models.SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	id := c.Param("id")
	sess, err := h.repo.SetSportSessionCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Sport session", id))
			return
		}
		writeInternal(c, "failed to update sport session", err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GetSportSessions handles GET /api/v1/health/sport-sessions
func (h *HealthHandler) GetSportSessions(c *gin.Context) {
	sessions, err := h.repo.SportSessionHistory(c.Request.Context(), middleware.OwnerID(c), parseLimit(c, 50))
	if err != nil {
		writeInternal(c, "failed to list sport sessions", err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// StartSleep handles POST /api/v1/health/sleep/start
// Starting while an interval is still open is a conflict; the owner
// has to wake up first.
func (h *HealthHandler) StartSleep(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	ctx := c.Request.Context()

	last, err := h.repo.LastSleepInterval(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		writeInternal(c, "failed to read last sleep interval", err)
		return
	}
	if last != nil && last.End == nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "A sleep interval is already open"))
		return
	}

	iv, err := h.repo.CreateSleepInterval(ctx, &models.SleepInterval{
		OwnerID: ownerID,
		Start:   h.clock.Now(),
	})
	if err != nil {
		writeInternal(c, "failed to start sleep interval", err)
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// WakeSleep handles POST /api/v1/health/sleep/wake
// Closes the open interval, capping it at maxSleepHours when the wake
// call arrives late, and makes sure today's habit record exists.
func (h *HealthHandler) WakeSleep(c *gin.Context) {
	ownerID := middleware.OwnerID(c)
	ctx := c.Request.Context()

	last, err := h.repo.LastSleepInterval(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewConflictError(requestID, "No sleep interval to close"))
			return
		}
		writeInternal(c, "failed to read last sleep interval", err)
		return
	}
	if last.End != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "No sleep interval is open"))
		return
	}

	end := h.clock.Now()
	if latest := last.Start.Add(maxSleepHours * time.Hour); end.After(latest) {
		end = latest
	}

	iv, err := h.repo.CloseSleepInterval(ctx, last.ID, end)
	if err != nil {
		writeInternal(c, "failed to close sleep interval", err)
		return
	}

	// Waking up opens the day's habit record so the dashboard shows it
	// immediately. An existing record is left untouched.
	if _, err := h.repo.HabitOnDay(ctx, ownerID, end); errors.Is(err, repository.ErrNotFound) {
		if _, err := h.repo.UpsertHabit(ctx, &models.HabitRecord{
			OwnerID: ownerID,
			Date:    end,
		}); err != nil {
			writeInternal(c, "failed to open habit record", err)
			return
		}
	}

	c.JSON(http.StatusOK, iv)
}

// GetSleepHistory handles GET /api/v1/health/sleep
func (h *HealthHandler) GetSleepHistory(c *gin.Context) {
	history, err := h.repo.SleepHistory(c.Request.Context(), middleware.OwnerID(c), parseLimit(c, 30))
	if err != nil {
		writeInternal(c, "failed to list sleep history", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// UpsertHabit handles PUT /api/v1/health/habits/today
// Missing fields keep their current value, so meal count and hygiene
// can be reported independently during the day.
func (h *HealthHandler) UpsertHabit(c *gin.Context) {
	var req models.UpsertHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	ownerID := middleware.OwnerID(c)
	ctx := c.Request.Context()
	now := h.clock.Now()

	record := &models.HabitRecord{OwnerID: ownerID, Date: now}
	if existing, err := h.repo.HabitOnDay(ctx, ownerID, now); err == nil {
		record = existing
	} else if !errors.Is(err, repository.ErrNotFound) {
		writeInternal(c, "failed to read habit record", err)
		return
	}

	if req.MealCount != nil {
		record.MealCount = *req.MealCount
	}
	if req.MorningHygieneDone != nil {
		record.MorningHygieneDone = *req.MorningHygieneDone
	}

	saved, err := h.repo.UpsertHabit(ctx, record)
	if err != nil {
		writeInternal(c, "failed to save habit record", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetHabitHistory handles GET /api/v1/health/habits
func (h *HealthHandler) GetHabitHistory(c *gin.Context) {
	history, err := h.repo.HabitHistory(c.Request.Context(), middleware.OwnerID(c), parseLimit(c, 30))
	if err != nil {
		writeInternal(c, "failed to list habit history", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// parseLimit reads a ?limit= query, falling back on bad input.
func parseLimit(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
