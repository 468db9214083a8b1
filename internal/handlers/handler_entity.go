package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/core/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// entityHandler handles HTTP requests related to tenant entities.
type entityHandler struct {
	entityService portssvc.EntitySvcFacade
}

func newEntityHandler(es portssvc.EntitySvcFacade) *entityHandler {
	return &entityHandler{entityService: es}
}

// registerEntityRoutes registers routes related to tenant entities.
func registerEntityRoutes(rg *gin.RouterGroup, entityService portssvc.EntitySvcFacade) {
	h := newEntityHandler(entityService)

	entities := rg.Group("/entities")
	{
		entities.POST("", h.createEntity)
		entities.GET("/:entityID", h.getEntityByID)
		entities.GET("/:entityID/context", h.getEntityContext)
	}
}

// createEntity bootstraps a tenant: the entity record, its functional
// currency, its first reporting period and a unit exchange rate.
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entity"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// getEntityByID retrieves a tenant entity.
func (h *entityHandler) getEntityByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	entity, err := h.entityService.GetEntityByID(c.Request.Context(), entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
		} else {
			logger.Error("Failed to get entity", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entity"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// getEntityContext resolves the entity's current defaults: reporting period,
// functional currency and applicable exchange rate as of today.
func (h *entityHandler) getEntityContext(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	now := time.Now().UTC()

	period, err := h.entityService.CurrentReportingPeriod(c.Request.Context(), entityID, now)
	if err != nil {
		if errors.Is(err, services.ErrNoOpenPeriod) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resolve reporting period", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve entity context"})
		return
	}

	currency, err := h.entityService.DefaultCurrency(c.Request.Context(), entityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entity not found"})
			return
		}
		logger.Error("Failed to resolve default currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve entity context"})
		return
	}

	rate, err := h.entityService.DefaultExchangeRate(c.Request.Context(), entityID, now)
	if err != nil {
		if errors.Is(err, services.ErrNoRateFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resolve default exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve entity context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportingPeriod": period,
		"currency":        dto.ToCurrencyResponse(currency),
		"exchangeRate":    dto.ToExchangeRateResponse(rate),
	})
}
