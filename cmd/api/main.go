package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentdesk/internal/cache"
	"rentdesk/internal/config"
	"rentdesk/internal/database"
	_ "rentdesk/internal/docs" // Import swagger docs
	"rentdesk/internal/handlers"
	"rentdesk/internal/logger"
	"rentdesk/internal/middleware"
	"rentdesk/internal/scheduler"
	"rentdesk/internal/services"
	"rentdesk/internal/validator"
)

// @title           RentDesk API
// @version         1.0
// @description     RentDesk is a multi-tenant property management backend for PG and flat rentals: buildings, units, tenants, occupancy, rent collection, and issue tracking.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	metricsCache := cache.New(appConfig.RedisAddr, appConfig.RedisPassword)
	defer metricsCache.Close()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	userService := services.NewUserService(db, accountService)
	accessService := services.NewAccessService(db)
	auditService := services.NewAuditService(db, accessService)
	buildingService := services.NewBuildingService(db, accountService, accessService)
	unitService := services.NewUnitService(db, accessService)
	tenantService := services.NewTenantService(db)
	occupancyService := services.NewOccupancyService(db, accessService)
	rentService := services.NewRentService(db, accessService)
	issueService := services.NewIssueService(db, accessService)
	dashboardService := services.NewDashboardService(db, accessService, metricsCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	buildingHandler := handlers.NewBuildingHandler(buildingService, auditService)
	unitHandler := handlers.NewUnitHandler(unitService, auditService)
	tenantHandler := handlers.NewTenantHandler(tenantService, auditService)
	occupancyHandler := handlers.NewOccupancyHandler(occupancyService, auditService)
	rentHandler := handlers.NewRentHandler(rentService, auditService)
	issueHandler := handlers.NewIssueHandler(issueService, auditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Monthly rent generation
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	if appConfig.SchedulerEnabled {
		go scheduler.New(rentService).Run(schedulerCtx)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)

	// Account routes
	account := protected.Group("/account")
	account.GET("", accountHandler.GetAccount)
	account.PATCH("", middleware.RequireOwner(), accountHandler.UpdateAccount)
	account.GET("/limits", accountHandler.GetLimits)

	// User routes (manager administration)
	users := protected.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.POST("", middleware.RequireOwner(), userHandler.CreateManager)
	users.DELETE("/:id", middleware.RequireOwner(), userHandler.DeleteManager)

	// Building routes
	buildings := protected.Group("/buildings")
	buildings.POST("", middleware.RequireOwner(), buildingHandler.CreateBuilding)
	buildings.GET("", buildingHandler.ListBuildings)
	buildings.GET("/:id", buildingHandler.GetBuilding)
	buildings.PATCH("/:id", middleware.RequireOwner(), buildingHandler.UpdateBuilding)
	buildings.DELETE("/:id", middleware.RequireOwner(), buildingHandler.DeleteBuilding)
	buildings.POST("/:id/access", middleware.RequireOwner(), buildingHandler.GrantAccess)
	buildings.GET("/:id/access", middleware.RequireOwner(), buildingHandler.ListAccess)
	buildings.DELETE("/:id/access/:user_id", middleware.RequireOwner(), buildingHandler.RevokeAccess)
	buildings.POST("/:id/units", unitHandler.CreateUnit)
	buildings.GET("/:id/units", unitHandler.ListUnits)

	// Unit, room & bed routes
	units := protected.Group("/units")
	units.GET("/:id", unitHandler.GetUnit)
	units.PATCH("/:id", unitHandler.UpdateUnit)
	units.DELETE("/:id", unitHandler.DeleteUnit)
	units.POST("/:id/rooms", unitHandler.CreateRoom)
	units.GET("/:id/rooms", unitHandler.ListRooms)

	rooms := protected.Group("/rooms")
	rooms.POST("/:id/beds", unitHandler.CreateBed)
	rooms.GET("/:id/beds", unitHandler.ListBeds)

	// Tenant routes
	tenants := protected.Group("/tenants")
	tenants.POST("", tenantHandler.CreateTenant)
	tenants.GET("", tenantHandler.ListTenants)
	tenants.GET("/:id", tenantHandler.GetTenant)
	tenants.PATCH("/:id", tenantHandler.UpdateTenant)
	tenants.DELETE("/:id", tenantHandler.DeleteTenant)
	tenants.POST("/:id/documents", tenantHandler.AddDocument)
	tenants.GET("/:id/documents", tenantHandler.ListDocuments)

	documents := protected.Group("/documents")
	documents.POST("/:id/verify", middleware.RequireOwner(), tenantHandler.VerifyDocument)

	// Occupancy routes
	occupancies := protected.Group("/occupancies")
	occupancies.POST("", occupancyHandler.Assign)
	occupancies.GET("", occupancyHandler.ListOccupancies)
	occupancies.GET("/:id", occupancyHandler.GetOccupancy)
	occupancies.POST("/:id/reassign", occupancyHandler.Reassign)
	occupancies.POST("/:id/notice", occupancyHandler.GiveNotice)
	occupancies.POST("/:id/vacate", occupancyHandler.Vacate)

	// Rent routes
	rents := protected.Group("/rents")
	rents.POST("", rentHandler.CreateRent)
	rents.GET("", rentHandler.ListRents)
	rents.POST("/generate", middleware.RequireOwner(), rentHandler.Generate)
	rents.GET("/export", rentHandler.Export)
	rents.GET("/:id", rentHandler.GetRent)
	rents.POST("/:id/pay", rentHandler.RecordPayment)

	// Issue routes
	issues := protected.Group("/issues")
	issues.POST("", issueHandler.CreateIssue)
	issues.GET("", issueHandler.ListIssues)
	issues.GET("/:id", issueHandler.GetIssue)
	issues.PATCH("/:id", issueHandler.UpdateIssue)
	issues.DELETE("/:id", issueHandler.DeleteIssue)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.Summary)
	dashboard.GET("/detailed", dashboardHandler.Detailed)
	dashboard.GET("/activity", dashboardHandler.Activity)

	// Audit trail
	protected.GET("/audit-logs", auditHandler.ListLogs)

	// Stop the scheduler on SIGINT/SIGTERM before the server exits.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		stopScheduler()
	}()

	log.Infof("Starting RentDesk backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
