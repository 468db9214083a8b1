package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	"github.com/finbooks/ifrs_backend/internal/core/domain"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/core/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// assignmentHandler handles HTTP requests related to clearing assignments.
type assignmentHandler struct {
	clearingService portssvc.ClearingSvcFacade
}

func newAssignmentHandler(cs portssvc.ClearingSvcFacade) *assignmentHandler {
	return &assignmentHandler{clearingService: cs}
}

// registerAssignmentRoutes registers entity-scoped clearing routes.
func registerAssignmentRoutes(rg *gin.RouterGroup, clearingService portssvc.ClearingSvcFacade) {
	h := newAssignmentHandler(clearingService)

	assignments := rg.Group("/assignments")
	{
		assignments.POST("", h.createAssignment)
		assignments.POST("/autoclear", h.autoClear)
	}

	clearables := rg.Group("/clearables/:kind/:id")
	{
		clearables.GET("/assignments", h.listAssignmentsBySource)
		clearables.GET("/unassigned", h.getUnassignedAmount)
	}
}

// clearableRefFromPath reads the :kind/:id path segments into a domain ref.
func clearableRefFromPath(c *gin.Context) (domain.ClearableRef, bool) {
	kind := domain.ClearableKind(strings.ToUpper(c.Param("kind")))
	if kind != domain.ClearableTransaction && kind != domain.ClearableBalance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be TRANSACTION or BALANCE"})
		return domain.ClearableRef{}, false
	}
	return domain.ClearableRef{Kind: kind, ID: c.Param("id")}, true
}

// createAssignment clears an amount of a source against a clearing transaction.
func (h *assignmentHandler) createAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAssignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assignment, err := h.clearingService.Assign(c.Request.Context(), entityID, req.Source.ToDomain(), req.ClearedByTransactionID, *req.Amount, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrOverAssignment):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotSameCurrency), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create assignment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// autoClear matches sources against clearing transactions oldest first and
// returns the assignments it recorded.
func (h *assignmentHandler) autoClear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	var req dto.AutoClearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AutoClear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sources := make([]domain.ClearableRef, len(req.Sources))
	for i, s := range req.Sources {
		sources[i] = s.ToDomain()
	}

	assignments, err := h.clearingService.AutoClear(c.Request.Context(), entityID, sources, req.ClearingTransactionIDs, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Auto-clearing failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Auto-clearing failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToListAssignmentResponse(assignments))
}

// listAssignmentsBySource lists the assignments recorded against a clearable
// within the entity.
func (h *assignmentHandler) listAssignmentsBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	ref, ok := clearableRefFromPath(c)
	if !ok {
		return
	}

	assignments, err := h.clearingService.ListAssignmentsBySource(c.Request.Context(), entityID, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clearable not found"})
		} else {
			logger.Error("Failed to list assignments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssignmentResponse(assignments))
}

// getUnassignedAmount reports the remaining capacity of a clearable within
// the entity.
func (h *assignmentHandler) getUnassignedAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	ref, ok := clearableRefFromPath(c)
	if !ok {
		return
	}

	unassigned, err := h.clearingService.UnassignedAmount(c.Request.Context(), entityID, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Clearable not found"})
		} else {
			logger.Error("Failed to compute unassigned amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute unassigned amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UnassignedAmountResponse{
		SourceKind:       string(ref.Kind),
		SourceID:         ref.ID,
		UnassignedAmount: unassigned,
	})
}
