package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"game-arena-backend/config"
	"game-arena-backend/database"
	"game-arena-backend/handlers"
	"game-arena-backend/logging"
	"game-arena-backend/middleware"
	"game-arena-backend/services"
	"game-arena-backend/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	levelingService := services.NewLevelingService(db, logger)

	// Reconcile the schema and seed the experience curve. A failure here is
	// logged and the server still starts, but /healthz stays 503 until a
	// clean run, so callers can tell the schema may be inconsistent.
	var ready atomic.Bool
	reconciler := database.NewReconciler(db, logger)
	if err := reconciler.Run(); err != nil {
		logger.Error("schema reconciliation failed", zap.Error(err))
	} else if err := levelingService.Seed(); err != nil {
		logger.Error("experience level seed failed", zap.Error(err))
	} else {
		ready.Store(true)
	}

	userService := services.NewUserService(db, logger, levelingService)
	battleService := services.NewBattleService(db, logger)

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: cfg.AllowedMethods,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupSystemRoutes(app, &ready)
	handlers.SetupWebAppRoutes(app, userService)
	handlers.SetupBattleRoutes(app, battleService)

	if cfg.BattleTTLMinutes > 0 {
		ttl := time.Duration(cfg.BattleTTLMinutes) * time.Minute
		sched, err := workers.StartBattleSweeper(battleService, logger, ttl)
		if err != nil {
			logger.Fatal("failed to start battle sweeper", zap.Error(err))
		}
		defer func() { _ = sched.Shutdown() }()
		logger.Info("battle sweeper running", zap.Duration("ttl", ttl))
	}

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()
	logger.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("allowed_origins", cfg.AllowedOrigins))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
