package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redditjury/reddit-jury-backend/internal/config"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

// AdminRequired guards the manual case-creation endpoint. The token comes from
// the X-Admin-Token header and is checked against either a bcrypt hash
// (preferred) or a plaintext value from config.
func AdminRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("X-Admin-Token")
		if token != "" {
			if cfg.AdminTokenHash != "" {
				if bcrypt.CompareHashAndPassword([]byte(cfg.AdminTokenHash), []byte(token)) == nil {
					return c.Next()
				}
			} else if cfg.AdminToken != "" && token == cfg.AdminToken {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Admin access required",
		})
	}
}
