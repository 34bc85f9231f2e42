package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bekzodm/dayplan/internal/apierror"
	"github.com/bekzodm/dayplan/internal/logger"
	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/models"
	"github.com/bekzodm/dayplan/internal/repository"
	"github.com/bekzodm/dayplan/internal/service"
	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	repo  repository.FinanceRepository
	stats service.FinanceService
	clock service.Clock
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(repo repository.FinanceRepository, stats service.FinanceService, clock service.Clock) *FinanceHandler {
	return &FinanceHandler{repo: repo, stats: stats, clock: clock}
}

// CreateCategory handles POST /api/v1/finance/categories
func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	var req models.CreateFinanceCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	cat, err := h.repo.CreateCategory(c.Request.Context(), &models.FinanceCategory{
		OwnerID: middleware.OwnerID(c),
		Name:    req.Name,
		Kind:    req.Kind,
	})
	if err != nil {
		writeInternal(c, "failed to create finance category", err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// GetCategories handles GET /api/v1/finance/categories
func (h *FinanceHandler) GetCategories(c *gin.Context) {
	cats, err := h.repo.Categories(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to list finance categories", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// CreateTransaction handles POST /api/v1/finance/transactions
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateFinanceTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	date := h.clock.Now()
	if req.Date != nil {
		date = *req.Date
	}

	tx, err := h.repo.CreateTransaction(c.Request.Context(), &models.FinanceTransaction{
		OwnerID:     middleware.OwnerID(c),
		Amount:      req.Amount,
		Kind:        req.Kind,
		Frequency:   req.Frequency,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		writeInternal(c, "failed to create transaction", err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// GetTransactions handles GET /api/v1/finance/transactions
// Supports ?limit= and ?offset= for paging, newest first.
func (h *FinanceHandler) GetTransactions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	txs, err := h.repo.Transactions(c.Request.Context(), middleware.OwnerID(c), limit, offset)
	if err != nil {
		writeInternal(c, "failed to list transactions", err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

// UpdateTransaction handles PUT /api/v1/finance/transactions/:id
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	var req models.CreateFinanceTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	date := h.clock.Now()
	if req.Date != nil {
		date = *req.Date
	}

	id := c.Param("id")
	tx, err := h.repo.UpdateTransaction(c.Request.Context(), id, &models.FinanceTransaction{
		OwnerID:     middleware.OwnerID(c),
		Amount:      req.Amount,
		Kind:        req.Kind,
		Frequency:   req.Frequency,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Transaction", id))
			return
		}
		writeInternal(c, "failed to update transaction", err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// GetDailyStats handles GET /api/v1/finance/stats/daily
func (h *FinanceHandler) GetDailyStats(c *gin.Context) {
	stats, err := h.stats.DailyStats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute daily finance stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMonthlyStats handles GET /api/v1/finance/stats/monthly
func (h *FinanceHandler) GetMonthlyStats(c *gin.Context) {
	stats, err := h.stats.MonthlyStats(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		writeInternal(c, "failed to compute monthly finance stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// writeBindingError maps a gin binding failure to a problem response.
func writeBindingError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
}

// writeInternal logs the error and hides it behind a generic 500.
func writeInternal(c *gin.Context, msg string, err error) {
	logger.Ctx(c.Request.Context()).Error(msg, logger.Err(err))
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
