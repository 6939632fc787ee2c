// Package server assembles the HTTP route table.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cfcs/internal/docs" // swagger docs
	"cfcs/internal/handlers"
	"cfcs/internal/middleware"
	"cfcs/internal/models"
	"cfcs/internal/services"
)

// Deps are the collaborators the router hands to its handlers.
type Deps struct {
	Auth         services.AuthServicer
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Reports      services.ReportServicer
	Viewer       services.ViewerServicer
	Audit        services.AuditServicer
	Tokens       *middleware.TokenManager
	ExportAPIKey string
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(d Deps) *gin.Engine {
	authHandler := handlers.NewAuthHandler(d.Auth, d.Audit, d.Tokens)
	categoryHandler := handlers.NewCategoryHandler(d.Categories)
	transactionHandler := handlers.NewTransactionHandler(d.Transactions, d.Audit)
	reportHandler := handlers.NewReportHandler(d.Reports)
	viewerHandler := handlers.NewViewerHandler(d.Viewer, d.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Automation routes
	export := v1.Group("/export")
	export.Use(middleware.APIKeyMiddleware(d.ExportAPIKey))
	export.GET("/share", viewerHandler.ExportShare)

	// Any signed-in role
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(d.Tokens))
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/categories", categoryHandler.ListCategories)

	viewer := protected.Group("/viewer")
	viewer.GET("/report", middleware.RequireRole(models.RoleAdmin, models.RoleViewer), viewerHandler.GetReport)
	viewer.GET("/share", middleware.RequireRole(models.RoleAdmin, models.RoleViewer), viewerHandler.GetShare)
	viewer.POST("/snapshot", middleware.RequireRole(models.RoleAdmin), viewerHandler.PublishSnapshot)

	// Admin only
	admin := protected.Group("/")
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	transactions := admin.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)

	reports := admin.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/details", reportHandler.GetDetails)
	reports.GET("/income-sources", reportHandler.GetIncomeSources)
	reports.GET("/trend", reportHandler.GetTrend)

	return router
}
