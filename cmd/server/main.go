package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error(ctx, "failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "database connection established", "driver", cfg.DBDriver)

	// Run migrations
	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Error(ctx, "failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info(ctx, "database migrations completed")
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	todoService := services.NewTodoService(repository.NewTodoRepository(db))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	todoHandler := handlers.NewTodoHandler(todoService, logger)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.ErrorDetail(cfg.IsDevelopment()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	// API routes
	handlers.RegisterRoutes(r.Group("/api"), authHandler, todoHandler, middleware.RequireAuth(tokens))

	// Start server
	logger.Info(ctx, "server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error(ctx, "failed to start server", "error", err)
		os.Exit(1)
	}
}
