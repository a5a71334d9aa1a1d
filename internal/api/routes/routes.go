package routes

import (
	"assignment-workflow-backend/internal/api/handlers"
	"assignment-workflow-backend/internal/api/middleware"
	"assignment-workflow-backend/internal/auth"
	"assignment-workflow-backend/internal/config"
	"assignment-workflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP surface needs
type Dependencies struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Assignments service.AssignmentServiceInterface
	AuthService *auth.AuthService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(deps.Config))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Redis)
	assignmentHandler := handlers.NewAssignmentHandler(deps.Assignments)
	approvalHandler := handlers.NewApprovalHandler(deps.Assignments)
	capacityHandler := handlers.NewCapacityHandler(deps.Assignments)
	statisticsHandler := handlers.NewStatisticsHandler(deps.Assignments)
	authMiddleware := auth.NewAuthMiddleware(deps.AuthService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		assignments := v1.Group("/assignments")
		{
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.POST("/bulk", assignmentHandler.BulkCreateAssignments)
			assignments.GET("", assignmentHandler.ListAssignments)
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.PUT("/:id", assignmentHandler.UpdateAssignment)
			assignments.POST("/:id/decisions", approvalHandler.SubmitDecision)
			assignments.GET("/:id/workflow", assignmentHandler.GetWorkflow)
			assignments.GET("/:id/history", assignmentHandler.GetHistory)
			assignments.POST("/:id/cancel", assignmentHandler.CancelAssignment)
			assignments.POST("/:id/schedule", assignmentHandler.ScheduleAssignment)
			assignments.POST("/:id/start", assignmentHandler.StartAssignment)
			assignments.POST("/:id/complete", assignmentHandler.CompleteAssignment)
		}

		approvals := v1.Group("/approvals")
		{
			approvals.GET("/pending", approvalHandler.GetPendingApprovals)
		}

		capacity := v1.Group("/capacity")
		{
			capacity.GET("/check", capacityHandler.CheckCapacity)
			capacity.GET("/forecast", capacityHandler.GetForecast)
			capacity.GET("/utilization", capacityHandler.GetUtilization)
		}

		v1.GET("/statistics", statisticsHandler.GetStatistics)
	}

	return router
}
