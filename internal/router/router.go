package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wanderplan/docs"
	"wanderplan/internal/handler"
	"wanderplan/internal/middleware"
	"wanderplan/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health *handler.HealthHandler
	Parse  *handler.ParseHandler
	Plan   *handler.PlanHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Stateless extraction
	v1.POST("/parse", h.Parse.Parse)

	// Protected routes - require valid JWT
	plans := v1.Group("/plans")
	plans.Use(middleware.AuthMiddleware(authSvc))
	plans.POST("", h.Plan.Create)
	plans.GET("", h.Plan.List)
	plans.GET("/:id", h.Plan.GetByID)
	plans.DELETE("/:id", h.Plan.Delete)
	plans.GET("/:id/source", h.Plan.GetSource)
	plans.GET("/:id/export", h.Plan.Export)
	plans.POST("/:id/reparse", h.Plan.Reparse)
	plans.POST("/:id/share", h.Plan.Share)

	return r
}
