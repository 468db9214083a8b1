package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/core/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// balanceHandler handles HTTP requests related to opening balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
	translator     portssvc.TranslatorSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade, tr portssvc.TranslatorSvcFacade) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
		translator:     tr,
	}
}

// registerBalanceRoutes registers entity-scoped balance routes.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, translator portssvc.TranslatorSvcFacade) {
	h := newBalanceHandler(balanceService, translator)

	balances := rg.Group("/balances")
	{
		balances.POST("", h.createBalance)
		balances.GET("", h.getBalanceByTransactionNo)
		balances.GET("/:balanceID", h.getBalanceByID)
		balances.DELETE("/:balanceID", h.recycleBalance)
	}

	rg.GET("/reporting-periods/:reportingPeriodID/balances", h.listBalancesByPeriod)
}

func (h *balanceHandler) balanceResponse(b *dto.BalanceResponse) {
	b.BalanceTypeName = h.translator.Label("balances", b.BalanceType)
}

// createBalance creates an opening balance. Attributes absent from the
// request are filled from the entity's defaults before validation.
func (h *balanceHandler) createBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	var req dto.CreateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.balanceService.CreateBalance(c.Request.Context(), entityID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativeAmount),
			errors.Is(err, services.ErrInvalidBalanceTransaction),
			errors.Is(err, services.ErrInvalidBalanceType),
			errors.Is(err, services.ErrInvalidAccountClassBalance),
			errors.Is(err, services.ErrInvalidBalanceDate),
			errors.Is(err, services.ErrNoOpenPeriod),
			errors.Is(err, services.ErrNoRateFound),
			errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Balance validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create balance"})
		}
		return
	}

	resp := dto.ToBalanceResponse(balance)
	h.balanceResponse(&resp)
	c.JSON(http.StatusCreated, resp)
}

// getBalanceByID retrieves a balance within the entity.
func (h *balanceHandler) getBalanceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	balanceID := c.Param("balanceID")

	balance, err := h.balanceService.GetBalanceByID(c.Request.Context(), entityID, balanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Balance not found"})
		} else {
			logger.Error("Failed to get balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	resp := dto.ToBalanceResponse(balance)
	h.balanceResponse(&resp)
	c.JSON(http.StatusOK, resp)
}

// getBalanceByTransactionNo looks a balance up by its synthetic transaction
// number via ?transactionNo=..., unique per entity.
func (h *balanceHandler) getBalanceByTransactionNo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	transactionNo := c.Query("transactionNo")
	if transactionNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transactionNo query parameter is required"})
		return
	}

	balance, err := h.balanceService.GetBalanceByTransactionNo(c.Request.Context(), entityID, transactionNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Balance not found"})
		} else {
			logger.Error("Failed to get balance by transaction no", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	resp := dto.ToBalanceResponse(balance)
	h.balanceResponse(&resp)
	c.JSON(http.StatusOK, resp)
}

// listBalancesByPeriod lists the balances of a reporting period.
func (h *balanceHandler) listBalancesByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	reportingPeriodID := c.Param("reportingPeriodID")

	balances, err := h.balanceService.ListBalancesByPeriod(c.Request.Context(), entityID, reportingPeriodID)
	if err != nil {
		logger.Error("Failed to list balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balances"})
		return
	}

	resp := dto.ToListBalanceResponse(balances)
	for i := range resp {
		h.balanceResponse(&resp[i])
	}
	c.JSON(http.StatusOK, resp)
}

// recycleBalance soft-deletes a balance together with any assignments whose
// source references it.
func (h *balanceHandler) recycleBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	balanceID := c.Param("balanceID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.balanceService.RecycleBalance(c.Request.Context(), entityID, balanceID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Balance not found"})
		} else {
			logger.Error("Failed to recycle balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recycle balance"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
