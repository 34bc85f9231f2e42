package handlers

import (
	"errors"
	"net/http"

	"github.com/bekzodm/dayplan/internal/apierror"
	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
	"github.com/bekzodm/dayplan/internal/service"
	"github.com/gin-gonic/gin"
)

type MindHandler struct {
	repo  repository.MindRepository
	clock service.Clock
}

// NewMindHandler creates a new mind handler
func NewMindHandler(repo repository.MindRepository, clock service.Clock) *MindHandler {
	return &MindHandler{repo: repo, clock: clock}
}

// CreateTaskType handles POST /api/v1/mind/task-types
func (h *MindHandler) CreateTaskType(c *gin.Context) {
	var req models.CreateMindTaskTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	tt, err := h.repo.CreateTaskType(c.Request.Context(), &models.MindTaskType{
		OwnerID:     middleware.OwnerID(c),
		Title:       req.Title,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		writeInternal(c, "failed to create task type", err)
		return
	}
	c.JSON(http.StatusCreated, tt)
}

// GetTaskTypes handles GET /api/v1/mind/task-types
func (h *MindHandler) GetTaskTypes(c *gin.Context) {
	types, err := h.repo.TaskTypes(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to list task types", err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateTask handles POST /api/v1/mind/tasks
func (h *MindHandler) CreateTask(c *gin.Context) {
	var req models.CreateMindTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	date := h.clock.Now()
	if req.Date != nil {
		date = *req.Date
	}
	task, err := h.repo.CreateTask(c.Request.Context(), &models.MindTask{
		OwnerID:    middleware.OwnerID(c),
		TaskTypeID: req.TaskTypeID,
		Completed:  req.Completed,
		Date:       date,
	})
	if err != nil {
		writeInternal(c, "failed to create mind task", err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTasks handles GET /api/v1/mind/tasks
func (h *MindHandler) GetTasks(c *gin.Context) {
	tasks, err := h.repo.Tasks(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to list mind tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// SetTaskCompleted handles PATCH /api/v1/mind/tasks/:id/completed
func (h *MindHandler) SetTaskCompleted(c *gin.Context) {
	var req models.SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	id := c.Param("id")
	task, err := h.repo.SetTaskCompleted(c.Request.Context(), id, *req.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mind task", id))
			return
		}
		writeInternal(c, "failed to update mind task", err)
		return
	}
	c.JSON(http.StatusOK, task)
}
