package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/redditjury/reddit-jury-backend/internal/config"
)

// PlatformJWT validates a platform-issued bearer token when one is present,
// populating c.Locals("user") for the identity middleware. Requests without a
// token pass through; the identity middleware decides whether the remaining
// sources are enough.
func PlatformJWT(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.PlatformJWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Next()
		},
	})
}
