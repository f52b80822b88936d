package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sebuszqo/FinTrack/internal/auth"
	"github.com/sebuszqo/FinTrack/internal/config"
	database "github.com/sebuszqo/FinTrack/internal/db"
	"github.com/sebuszqo/FinTrack/internal/finance/application"
	"github.com/sebuszqo/FinTrack/internal/finance/infrastructure"
	"github.com/sebuszqo/FinTrack/internal/finance/interfaces"
	"github.com/sebuszqo/FinTrack/internal/logging"
	"github.com/sebuszqo/FinTrack/internal/user"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbService, err := database.NewDBService(ctx, cfg, logging.Component(logger, "db"))
	if err != nil {
		logger.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	if err := database.RunMigrations(cfg.DBConnectionString); err != nil {
		logger.Error("could not apply migrations", "error", err)
		os.Exit(1)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService, auth.UserIDFromContext, logging.Component(logger, "user"))

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTDuration)
	authService := auth.NewAuthService(userService, jwtManager, logging.Component(logger, "auth"))
	authHandler := auth.NewHandler(authService)

	financeLogger := logging.Component(logger, "finance")
	accountService := application.NewAccountService(infrastructure.NewAccountRepository(dbService.DB))
	categoryService := application.NewCategoryService(infrastructure.NewCategoryRepository(dbService.DB))
	transactionService := application.NewTransactionService(
		infrastructure.NewTransactionRepository(dbService.DB), categoryService, accountService)
	reportService := application.NewReportService(infrastructure.NewReportRepository(dbService.DB))

	server := &Server{
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		accountHandler:     interfaces.NewAccountHandler(accountService, financeLogger, respondJSON, respondError),
		categoryHandler:    interfaces.NewCategoryHandler(categoryService, financeLogger, respondJSON, respondError),
		transactionHandler: interfaces.NewTransactionHandler(transactionService, financeLogger, respondJSON, respondError),
		reportHandler:      interfaces.NewReportHandler(reportService, financeLogger, respondJSON, respondError),
		health:             dbService.Health,
	}
	server.RegisterRoutes()

	scheduler, err := StartHealthCheckScheduler(cfg.HealthCheckSchedule, dbService, logging.Component(logger, "scheduler"))
	if err != nil {
		logger.Error("scheduler didn't start, stopping the app", "error", err)
		os.Exit(1)
	}
	defer scheduler.Stop()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logging.Middleware(logging.Component(logger, "http"))(server.router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

type healthChecker interface {
	Health(ctx context.Context) map[string]string
}

// StartHealthCheckScheduler probes the database on schedule and logs the pool statistics.
func StartHealthCheckScheduler(schedule string, db healthChecker, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stats := db.Health(ctx)
		if stats["status"] != "up" {
			logger.Error("database health check failed", "error", stats["error"])
			return
		}
		logger.Info("database healthy",
			"open_connections", stats["open_connections"],
			"in_use", stats["in_use"],
			"idle", stats["idle"],
		)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
