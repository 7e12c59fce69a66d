package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finmentor/internal/config"
	"finmentor/internal/database"
	"finmentor/internal/handlers"
	"finmentor/internal/middleware"
	"finmentor/internal/repositories"
	"finmentor/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	preferenceRepo := repositories.NewPreferenceRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	accountService := services.NewAccountService(accountRepo)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo)
	notificationService := services.NewNotificationService(notificationRepo, metrics)
	preferenceService := services.NewPreferenceService(preferenceRepo, metrics)
	aggregationService := services.NewAggregationService(transactionRepo, accountRepo, metrics)
	reportService := services.NewReportService(userRepo, accountRepo, transactionRepo, metrics)
	exportService := services.NewExportService(metrics)
	authService := services.NewAuthService(
		userRepo, refreshTokenRepo, tokenService, passwordService,
		accountService, notificationService, metrics,
	)

	scheduler := services.NewReportScheduler(
		cfg.Reports.MonthlySweepSpec,
		preferenceRepo, aggregationService, notificationService, metrics,
	)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(aggregationService, reportService, exportService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, preferenceService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)

	// Authenticated routes
	authed := api.Group("", middleware.RequireAuth(tokenService))
	authed.GET("/auth/profile", authHandler.Profile)

	authed.POST("/accounts", accountHandler.Create)
	authed.GET("/accounts", accountHandler.List)
	authed.GET("/accounts/:id", accountHandler.Get)
	authed.PUT("/accounts/:id", accountHandler.Update)
	authed.DELETE("/accounts/:id", accountHandler.Delete)

	authed.POST("/transactions", transactionHandler.Create)
	authed.GET("/transactions", transactionHandler.List)

	authed.GET("/reports/monthly", reportHandler.MonthlySummary)
	authed.GET("/reports/export", reportHandler.Export)

	authed.GET("/notifications", notificationHandler.ListFeed)
	authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	authed.GET("/notifications/preferences", notificationHandler.GetPreferences)
	authed.PUT("/notifications/preferences", notificationHandler.UpdatePreferences)

	if cfg.Reports.MonthlySweepEnabled {
		if err := scheduler.Start(); err != nil {
			log.Fatal("Failed to start report scheduler: ", err)
		}
		defer scheduler.Stop()
	}

	// Start server
	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("server stopped")
}
