package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redditjury/reddit-jury-backend/internal/authoring"
	"github.com/redditjury/reddit-jury-backend/internal/court"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
)

type HealthHandler struct {
	service   *court.Service
	generator *authoring.Generator
}

func NewHealthHandler(service *court.Service, generator *authoring.Generator) *HealthHandler {
	return &HealthHandler{service: service, generator: generator}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	storageStatus := "ok"
	if err := h.service.Ping(c.UserContext()); err != nil {
		storageStatus = "unhealthy: " + err.Error()
	}

	authoringStatus := "configured"
	if !h.generator.IsAvailable() {
		authoringStatus = "fallback-only"
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   storageStatus,
		Authoring: authoringStatus,
	})
}
