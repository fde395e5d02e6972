package routes

import (
	"fmt"

	"governance-portal-backend/internal/api/handlers"
	"governance-portal-backend/internal/api/middleware"
	"governance-portal-backend/internal/auth"
	"governance-portal-backend/internal/config"
	"governance-portal-backend/internal/metrics"
	"governance-portal-backend/internal/repository"
	"governance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the process-wide resources the router is built from
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config

	// PolicyCache backs tenant policy lookups; nil disables caching
	PolicyCache service.PolicyCache

	// Registry receives the service metrics; nil disables /metrics
	Registry *prometheus.Registry

	// HealthChecks are extra dependencies reported by /health and /health/ready
	HealthChecks map[string]handlers.DependencyCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	var m *metrics.Metrics
	if deps.Registry != nil {
		m = metrics.New(deps.Registry)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(m))
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	store := repository.NewStore(deps.DB)

	// One guard instance is shared by every handler
	guard := service.NewAuthorizationGuard(store, m)
	policies := service.NewTenantPolicyResolver(store, deps.PolicyCache, m)
	entitlements := service.NewEntitlementManager(store, validate, m)
	workflow := service.NewStatusWorkflowEngine(store, validate, m)

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	authHandler := auth.NewAuthHandler(tokens)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	healthHandler := handlers.NewHealthHandler(deps.DB, deps.HealthChecks)
	tenantHandler := handlers.NewTenantHandler(guard, policies)
	licenseHandler := handlers.NewLicenseHandler(guard, entitlements)
	complianceHandler := handlers.NewComplianceHandler(guard, workflow)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if deps.Registry != nil && cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams/:slug")
		{
			teams.GET("/policy", tenantHandler.GetPolicy)
			teams.GET("/permissions", tenantHandler.GetPermissions)

			teams.POST("/license-catalog", licenseHandler.CreateLicense)
			teams.GET("/licenses", licenseHandler.ListTeamLicenses)
			teams.POST("/licenses", licenseHandler.Purchase)
			teams.POST("/licenses/:id/renew", licenseHandler.Renew)
			teams.POST("/licenses/:id/users", licenseHandler.AssignUser)
			teams.DELETE("/licenses/:id/users/:userId", licenseHandler.RevokeUser)
			teams.POST("/licenses/:id/locations", licenseHandler.AssignLocation)
			teams.DELETE("/licenses/:id/locations/:locationId", licenseHandler.RevokeLocation)
			teams.GET("/entitlements/:feature", licenseHandler.CheckEntitlement)

			teams.GET("/compliance-statuses", complianceHandler.ListStatuses)
			teams.POST("/compliance-statuses", complianceHandler.CreateStatus)
			teams.POST("/compliance-statuses/defaults", complianceHandler.DefineDefaults)
			teams.PUT("/compliance-statuses/:id/default", complianceHandler.SetDefault)
			teams.POST("/compliance-alerts", complianceHandler.CreateAlert)
			teams.GET("/compliance-alerts/:id", complianceHandler.GetAlert)
			teams.POST("/compliance-alerts/:id/transitions", complianceHandler.TransitionAlert)
		}
	}

	return router, nil
}
