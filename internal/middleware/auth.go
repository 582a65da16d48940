package middleware

import (
	"context"
	"log/slog"

	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

// AccessUnauthorized is the notice returned on every denied request, phrased
// identically regardless of whether the path exists so nothing is leaked.
const AccessUnauthorized = "Access unauthorized"

// ResolveSession resolves the session cookie into the current user identity.
// The cookie value is an HMAC-signed token; a forged or malformed value is
// treated the same as a stale one. When the token maps to a live session the
// user id is stored in c.Locals("userID") and the request context; otherwise
// the request proceeds as anonymous. This middleware never rejects a request
// on its own.
func ResolveSession(store session.Store, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Cookies(session.CookieName)
		if value == "" {
			return c.Next()
		}

		token, ok := session.Verify(value, secret)
		if !ok {
			c.ClearCookie(session.CookieName)
			return c.Next()
		}

		userID, ok, err := store.Lookup(c.UserContext(), token)
		if err != nil {
			// Session store failure: treat the caller as anonymous rather
			// than failing every request behind a flaky Redis.
			Logger.WarnContext(c.UserContext(), "session lookup failed",
				slog.String("error", err.Error()))
			return c.Next()
		}
		if !ok {
			// Stale cookie; clear it so the client stops sending it.
			c.ClearCookie(session.CookieName)
			return c.Next()
		}

		c.Locals("userID", userID)
		c.Locals("sessionToken", token)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// AuthRequired enforces authentication for protected routes. It must run
// after ResolveSession.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("userID").(uint); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": AccessUnauthorized,
			})
		}
		return c.Next()
	}
}
