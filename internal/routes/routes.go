package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redditjury/reddit-jury-backend/internal/config"
	"github.com/redditjury/reddit-jury-backend/internal/handlers"
	"github.com/redditjury/reddit-jury-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	courtHandler *handlers.CourtHandler,
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no identity required)
	api.Get("/health", healthHandler.Check)

	// Case + verdicts
	api.Get("/case/today", courtHandler.GetToday)
	api.Get("/case/:id/verdicts", courtHandler.GetVerdicts)
	api.Post("/verdicts", courtHandler.SubmitVerdict)
	api.Post("/verdicts/:id/vote", courtHandler.Vote)

	// Viewer session
	api.Post("/evidence/:id/reveal", sessionHandler.RevealEvidence)
	api.Get("/session", sessionHandler.GetSession)
	api.Get("/profile", sessionHandler.GetProfile)

	// Case creation is an admin/dev action
	api.Post("/case", middleware.AdminRequired(cfg), courtHandler.CreateCase)
}
