package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/ifrs_backend/internal/apperrors"
	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/dto"
	"github.com/finbooks/ifrs_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to ledger accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionSvcFacade
	translator         portssvc.TranslatorSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionSvcFacade, tr portssvc.TranslatorSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: ts,
		translator:         tr,
	}
}

// registerAccountRoutes registers entity-scoped account routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, transactionService portssvc.TransactionSvcFacade, translator portssvc.TranslatorSvcFacade) {
	h := newAccountHandler(accountService, transactionService, translator)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccountByID)
		accounts.GET("/:accountID/transactions", h.listAccountTransactions)
	}
}

func (h *accountHandler) accountResponse(a *dto.AccountResponse) {
	a.AccountTypeName = h.translator.Label("accounts", a.AccountType)
}

// createAccount creates a ledger account within the entity.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), entityID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	resp := dto.ToAccountResponse(account)
	h.accountResponse(&resp)
	c.JSON(http.StatusCreated, resp)
}

// getAccountByID retrieves an account within the entity.
func (h *accountHandler) getAccountByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), entityID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	resp := dto.ToAccountResponse(account)
	h.accountResponse(&resp)
	c.JSON(http.StatusOK, resp)
}

// listAccounts lists the entity's accounts, paginated by limit/offset.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	limit, offset := paginationParams(c)

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), entityID, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	resp := dto.ToListAccountResponse(accounts)
	for i := range resp {
		h.accountResponse(&resp[i])
	}
	c.JSON(http.StatusOK, resp)
}

// listAccountTransactions lists an account's transactions, oldest first.
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID := c.Param("entityID")
	accountID := c.Param("accountID")
	limit, offset := paginationParams(c)

	transactions, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), entityID, accountID, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	resp := dto.ToListTransactionResponse(transactions)
	for i := range resp {
		resp[i].TransactionTypeName = h.translator.Label("transactions", resp[i].TransactionType)
	}
	c.JSON(http.StatusOK, resp)
}

// paginationParams reads limit/offset query parameters with defaults.
func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
