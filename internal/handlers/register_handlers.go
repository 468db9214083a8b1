package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/ifrs_backend/internal/core/ports/services"
	"github.com/finbooks/ifrs_backend/internal/middleware"
	"github.com/finbooks/ifrs_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// resource route registrations. Every route under the group requires the
// acting user header; everything below /entities/:entityID is scoped to
// that tenant.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.UserContextMiddleware())

	registerEntityRoutes(v1, services.Entity)

	scoped := v1.Group("/entities/:entityID")
	registerCurrencyRoutes(scoped, services.Currency, services.ExchangeRate)
	registerAccountRoutes(scoped, services.Account, services.Transaction, services.Translator)
	registerTransactionRoutes(scoped, services.Transaction, services.Translator)
	registerBalanceRoutes(scoped, services.Balance, services.Translator)
	registerAssignmentRoutes(scoped, services.Clearing)
}
