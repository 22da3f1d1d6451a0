package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redditjury/reddit-jury-backend/internal/authoring"
	"github.com/redditjury/reddit-jury-backend/internal/config"
	"github.com/redditjury/reddit-jury-backend/internal/court"
	"github.com/redditjury/reddit-jury-backend/internal/database"
	"github.com/redditjury/reddit-jury-backend/internal/handlers"
	"github.com/redditjury/reddit-jury-backend/internal/logging"
	"github.com/redditjury/reddit-jury-backend/internal/middleware"
	"github.com/redditjury/reddit-jury-backend/internal/routes"
	"github.com/redditjury/reddit-jury-backend/internal/session"
	"github.com/redditjury/reddit-jury-backend/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	// Storage collaborator
	var store storage.Store
	var dbLogHandler *logging.DBHandler
	cleanupDone := make(chan struct{})

	switch cfg.StorageDriver {
	case "redis":
		redisStore := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisStore.Ping(context.Background()); err != nil {
			slog.Error("redis connection failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		store = redisStore
		slog.Info("storage ready", "driver", "redis", "addr", cfg.RedisAddr)

	case "postgres":
		db, err := database.Open(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		store = storage.NewPostgresStore(db)

		// Persist ERROR+ logs alongside the game data (30-day retention)
		dbLogHandler = logging.NewDBHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			dbLogHandler,
		)))
		logging.StartCleanup(db, cleanupDone)
		slog.Info("storage ready", "driver", "postgres", "db", cfg.DBName)

	default:
		store = storage.NewMemoryStore()
		slog.Info("storage ready", "driver", "memory")
	}

	// Core services
	courtService := court.NewService(store)
	generator := authoring.NewGenerator(cfg.GLMAPIURL, cfg.GLMAPIKey, cfg.GLMModel, cfg.AITimeout)
	sessions := session.NewManager()

	// A fresh install has nothing to judge; optionally seed the demo case
	if cfg.SeedDemoCase {
		seedTodayCase(courtService)
	}

	// Handlers
	courtHandler := handlers.NewCourtHandler(courtService, sessions, generator)
	sessionHandler := handlers.NewSessionHandler(courtService, sessions)
	healthHandler := handlers.NewHealthHandler(courtService, generator)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})
	if cfg.PlatformJWTSecret != "" {
		app.Use(middleware.PlatformJWT(cfg))
	}
	app.Use(middleware.Identity(cfg))

	// Routes
	routes.Setup(app, cfg, courtHandler, sessionHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Error("storage close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

// seedTodayCase stores the demo case unless one already exists for today.
func seedTodayCase(svc *court.Service) {
	ctx := context.Background()
	existing, err := svc.TodayCase(ctx)
	if err != nil {
		slog.Error("seed check failed", "error", err)
		return
	}
	if existing != nil {
		return
	}
	if _, err := svc.CreateCase(ctx, authoring.SeedDraft()); err != nil {
		slog.Error("seeding demo case failed", "error", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
