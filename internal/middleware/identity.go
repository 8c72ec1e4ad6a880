package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/memora-app/memora-api/internal/identity"
)

// Identity resolves the caller from the X-User-ID header, falling back to
// defaultUserID. The header is trusted as is.
func Identity(defaultUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(identity.Header))
		if userID == "" {
			userID = defaultUserID
		}
		identity.SetUserID(c, userID)
		return c.Next()
	}
}
