package identity

import (
	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the identity middleware.
const (
	localUsername = "username"
	localUserID   = "user_id"
)

// SetViewer stores the resolved viewer identity on the request context.
func SetViewer(c *fiber.Ctx, userID, username string) {
	c.Locals(localUserID, userID)
	c.Locals(localUsername, username)
}

// Username extracts the viewer's username from Fiber context locals.
func Username(c *fiber.Ctx) string {
	if name, ok := c.Locals(localUsername).(string); ok {
		return name
	}
	return ""
}

// UserID extracts the platform user id (t2_...) from Fiber context locals.
// Falls back to the username when the platform did not hand one in.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localUserID).(string); ok && id != "" {
		return id
	}
	return Username(c)
}
