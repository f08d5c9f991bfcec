package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient()
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	recordsRepo := repository.GetRecordsRepo(utils.MongoClient)

	// Services
	userService := &usecase.UserService{UsersRepo: usersRepo}
	habitsService := &usecase.HabitsService{
		HabitsRepo:  habitsRepo,
		RecordsRepo: recordsRepo,
	}
	recordsService := &usecase.RecordsService{
		RecordsRepo: recordsRepo,
		HabitsRepo:  habitsRepo,
	}
	analyticsService := &usecase.AnalyticsService{
		HabitsRepo:  habitsRepo,
		RecordsRepo: recordsRepo,
	}

	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetUserProfileHandler(c, userService, habitsRepo)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.POST("/2fa/enable", func(c *gin.Context) {
				handler.Enable2FAHandler(c, userService)
			})
			user.POST("/2fa/verify", func(c *gin.Context) {
				handler.Verify2FAHandler(c, userService)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		habits := protected.Group("/habits")
		{
			habits.GET("/", func(c *gin.Context) {
				handler.GetUserHabitsHandler(c, habitsService)
			})
			habits.POST("/", func(c *gin.Context) {
				handler.CreateHabitHandler(c, habitsService)
			})
			habits.PUT("/:id", func(c *gin.Context) {
				handler.UpdateHabitHandler(c, habitsService)
			})
			habits.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteHabitHandler(c, habitsService)
			})
		}

		records := protected.Group("/records")
		{
			records.GET("/", func(c *gin.Context) {
				handler.GetUserRecordsHandler(c, recordsService)
			})
			records.PUT("/:date", func(c *gin.Context) {
				handler.SaveDayHandler(c, recordsService)
			})
		}

		analytics := protected.Group("/analytics")
		{
			analytics.GET("/", func(c *gin.Context) {
				handler.GetAnalyticsOverviewHandler(c, analyticsService)
			})
			analytics.GET("/streaks", func(c *gin.Context) {
				handler.GetStreaksHandler(c, analyticsService)
			})
			analytics.GET("/trends", func(c *gin.Context) {
				handler.GetTrendsHandler(c, analyticsService)
			})
			analytics.GET("/weekly", func(c *gin.Context) {
				handler.GetWeeklyPatternsHandler(c, analyticsService)
			})
			analytics.GET("/monthly", func(c *gin.Context) {
				handler.GetMonthlyPatternsHandler(c, analyticsService)
			})
			analytics.GET("/stats", func(c *gin.Context) {
				handler.GetOverallStatsHandler(c, analyticsService)
			})
		}
	}

	return router
}

func main() {
	// Redis is optional; token blacklist and analytics cache degrade to off
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Warning: token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}

		cache, err := services.NewAnalyticsCache(redisURL)
		if err != nil {
			log.Printf("Warning: analytics cache disabled: %v", err)
		} else {
			services.GlobalAnalyticsCache = cache
		}
	}

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}

	router := setupRouter()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)
		if services.TokenBlacklist != nil {
			services.TokenBlacklist.Close()
		}
		if services.GlobalAnalyticsCache != nil {
			services.GlobalAnalyticsCache.Close()
		}
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
