package handlers

import (
	"github.com/clarity-finance/clarity-backend/cmd/docs"
	portssvc "github.com/clarity-finance/clarity-backend/internal/core/ports/services"
	"github.com/clarity-finance/clarity-backend/internal/middleware"
	"github.com/clarity-finance/clarity-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters *middleware.RateLimiters,
) {
	r.GET("/api/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(r, cfg, services, limiters)

	// Demo routes are public and carry only the global limit.
	demo := r.Group("/api", middleware.RateLimit(limiters.Global, "API", limiters.Skip))
	registerDemoRoutes(demo, services.Demo)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates to the
// entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters *middleware.RateLimiters,
) {
	api := r.Group("/api",
		middleware.RateLimit(limiters.Global, "API", limiters.Skip),
		middleware.AuthMiddleware(middleware.AuthConfig{
			JWTSecret:  cfg.SupabaseJWTSecret,
			TestMode:   cfg.TestMode,
			TestUserID: cfg.TestUserID,
		}),
	)

	authLimit := middleware.RateLimit(limiters.Auth, "authentication", limiters.Skip)
	plaidLimit := middleware.RateLimit(limiters.Plaid, "Plaid API", limiters.Skip)
	dbLimit := middleware.RateLimit(limiters.DB, "database operation", limiters.Skip)

	registerPlaidRoutes(api, services.BankLink, authLimit, plaidLimit, dbLimit)
	registerTransactionRoutes(api, services.Transaction, dbLimit)
	registerReportingRoutes(api, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
