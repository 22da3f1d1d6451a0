package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redditjury/reddit-jury-backend/internal/config"
	"github.com/redditjury/reddit-jury-backend/internal/dto"
	"github.com/redditjury/reddit-jury-backend/internal/identity"
)

// Paths that don't require a viewer identity.
var identitySkipPaths = []string{
	"/api/health",
}

// Identity resolves the current viewer. There is no login flow of our own: the
// hosting platform hands identity in, either as a platform-signed JWT (claims
// username/sub, validated upstream by the JWT middleware) or as a trusted
// X-Reddit-User header from the gateway. DEV_USER is a local-play fallback.
func Identity(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, skip := range identitySkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		// 1. Platform JWT claims (set by the JWT middleware when configured)
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				username, _ := claims["username"].(string)
				sub, _ := claims["sub"].(string)
				if username != "" {
					identity.SetViewer(c, sub, username)
					return c.Next()
				}
			}
		}

		// 2. Trusted gateway headers. Header values are copied because
		// Fiber's zero-copy strings outlive the request here: the session
		// manager keys long-lived maps by username.
		if username := c.Get("X-Reddit-User"); username != "" {
			identity.SetViewer(c, utils.CopyString(c.Get("X-Reddit-User-ID")), utils.CopyString(username))
			return c.Next()
		}

		// 3. Dev fallback
		if cfg.DevUser != "" {
			identity.SetViewer(c, "t2_dev", cfg.DevUser)
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Viewer identity is required",
		})
	}
}
