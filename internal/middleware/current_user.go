package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
)

// UserKey is the Locals key under which the resolved actor is stored.
const UserKey = "user"

// CurrentUser resolves the caller from a Bearer token, if one is present,
// and stores the user in the request context. It never rejects a request:
// a missing, malformed or expired token just leaves the caller
// unauthenticated and the downstream accessor decides what that means.
func CurrentUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if user, ok := authService.CurrentUser(parts[1]); ok {
					c.Locals(UserKey, user)
				}
			}
		}
		return c.Next()
	}
}

// ActorFrom returns the resolved user for this request, or nil for an
// unauthenticated caller.
func ActorFrom(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
