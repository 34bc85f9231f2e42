package handlers

import (
	"net/http"

	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
	"github.com/bekzodm/dayplan/internal/service"
	"github.com/gin-gonic/gin"
)

type WorkHandler struct {
	repo  repository.WorkRepository
	clock service.Clock
}

// NewWorkHandler creates a new work handler
func NewWorkHandler(repo repository.WorkRepository, clock service.Clock) *WorkHandler {
	return &WorkHandler{repo: repo, clock: clock}
}

// GetToday handles GET /api/v1/work/today
func (h *WorkHandler) GetToday(c *gin.Context) {
	items, err := h.repo.ItemsOnDay(c.Request.Context(), middleware.OwnerID(c), h.clock.Now())
	if err != nil {
		writeInternal(c, "failed to read today's work", err)
		return
	}
	c.JSON(http.StatusOK, statusFromItems(items))
}

// UpdateToday handles PUT /api/v1/work/today
// The flags are the whole state of the day: a flag turning on records
// that kind of work as done, a flag turning off removes it.
func (h *WorkHandler) UpdateToday(c *gin.Context) {
	var req models.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	ownerID := middleware.OwnerID(c)
	ctx := c.Request.Context()
	now := h.clock.Now()

	items, err := h.repo.ItemsOnDay(ctx, ownerID, now)
	if err != nil {
		writeInternal(c, "failed to read today's work", err)
		return
	}

	want := map[models.WorkKind]bool{
		models.WorkActive:  req.Active,
		models.WorkPassive: req.Passive,
	}
	have := make(map[models.WorkKind]bool)
	for _, item := range items {
		if !want[item.Kind] {
			if err := h.repo.Delete(ctx, item.ID); err != nil {
				writeInternal(c, "failed to remove work item", err)
				return
			}
			continue
		}
		have[item.Kind] = true
	}
	for kind, wanted := range want {
		if !wanted || have[kind] {
			continue
		}
		if _, err := h.repo.Create(ctx, &models.WorkItem{
			OwnerID:   ownerID,
			Kind:      kind,
			Completed: true,
			Date:      now,
		}); err != nil {
			writeInternal(c, "failed to record work item", err)
			return
		}
	}

	items, err = h.repo.ItemsOnDay(ctx, ownerID, now)
	if err != nil {
		writeInternal(c, "failed to re-read today's work", err)
		return
	}
	c.JSON(http.StatusOK, statusFromItems(items))
}

func statusFromItems(items []models.WorkItem) models.WorkStatus {
	var status models.WorkStatus
	for _, item := range items {
		switch item.Kind {
		case models.WorkActive:
			status.Active = true
		case models.WorkPassive:
			status.Passive = true
		}
	}
	status.IsSaved = len(items) > 0
	return status
}
