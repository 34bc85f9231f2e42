package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bekzodm/dayplan/internal/config"
	"github.com/bekzodm/dayplan/internal/handlers"
	"github.com/bekzodm/dayplan/internal/logger"
	"github.com/bekzodm/dayplan/internal/middleware"
	"github.com/bekzodm/dayplan/internal/repository"
	"github.com/bekzodm/dayplan/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	logger.SetDefault(log)

	log.Info("starting dayplan API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	// Storage
	store := repository.NewMemoryStore()
	clock := service.SystemClock()

	// Services
	disciplineService := service.NewDisciplineService(store)
	analyticsService := service.NewAnalyticsService(store, clock)
	financeService := service.NewFinanceService(store, store, clock)
	reviewService := service.NewReviewService(disciplineService, clock)

	// Handlers
	analyticsHandler := handlers.NewAnalyticsHandler(disciplineService, analyticsService, financeService, reviewService, clock)
	financeHandler := handlers.NewFinanceHandler(store, financeService, clock)
	healthHandler := handlers.NewHealthHandler(store, clock)
	mindHandler := handlers.NewMindHandler(store, clock)
	workHandler := handlers.NewWorkHandler(store, clock)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit())

	// Operational endpoints
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Owner(cfg.Server.DefaultOwner))
	{
		// Analytics routes
		v1.GET("/analytics/discipline", analyticsHandler.GetDiscipline)
		v1.GET("/analytics/correlations", analyticsHandler.GetCorrelations)
		v1.GET("/analytics/finance-health", analyticsHandler.GetFinanceHealth)
		v1.GET("/analytics/weekly-summary", analyticsHandler.GetWeeklySummary)
		v1.GET("/analytics/stats/work", analyticsHandler.GetWorkStats)
		v1.GET("/analytics/stats/health", analyticsHandler.GetHealthStats)
		v1.GET("/analytics/stats/mind", analyticsHandler.GetMindStats)
		v1.GET("/analytics/history/:metric", analyticsHandler.GetHistory)

		// Finance routes
		v1.POST("/finance/categories", financeHandler.CreateCategory)
		v1.GET("/finance/categories", financeHandler.GetCategories)
		v1.POST("/finance/transactions", financeHandler.CreateTransaction)
		v1.GET("/finance/transactions", financeHandler.GetTransactions)
		v1.PUT("/finance/transactions/:id", financeHandler.UpdateTransaction)
		v1.GET("/finance/stats/daily", financeHandler.GetDailyStats)
		v1.GET("/finance/stats/monthly", financeHandler.GetMonthlyStats)

		// Health routes
		v1.POST("/health/exercise-types", healthHandler.CreateExerciseType)
		v1.GET("/health/exercise-types", healthHandler.GetExerciseTypes)
		v1.POST("/health/sport-sessions", healthHandler.CreateSportSession)
		v1.GET("/health/sport-sessions", healthHandler.GetSportSessions)
		v1.PATCH("/health/sport-sessions/:id/completed", healthHandler.SetSportSessionCompleted)
		v1.POST("/health/sleep/start", healthHandler.StartSleep)
		v1.POST("/health/sleep/wake", healthHandler.WakeSleep)
		v1.GET("/health/sleep", healthHandler.GetSleepHistory)
		v1.PUT("/health/habits/today", healthHandler.UpsertHabit)
		v1.GET("/health/habits", healthHandler.GetHabitHistory)

		// Mind routes
		v1.POST("/mind/task-types", mindHandler.CreateTaskType)
		v1.GET("/mind/task-types", mindHandler.GetTaskTypes)
		v1.POST("/mind/tasks", mindHandler.CreateTask)
		v1.GET("/mind/tasks", mindHandler.GetTasks)
		v1.PATCH("/mind/tasks/:id/completed", mindHandler.SetTaskCompleted)

		// Work routes
		v1.GET("/work/today", workHandler.GetToday)
		v1.PUT("/work/today", workHandler.UpdateToday)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
