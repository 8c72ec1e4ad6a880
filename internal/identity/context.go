// Package identity carries the caller's user id through a request.
package identity

import "github.com/gofiber/fiber/v2"

const localsKey = "user_id"

// Header is the request header naming the caller.
const Header = "X-User-ID"

// GetUserID returns the user id resolved for this request.
func GetUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsKey).(string); ok {
		return id
	}
	return ""
}

func SetUserID(c *fiber.Ctx, id string) {
	c.Locals(localsKey, id)
}
