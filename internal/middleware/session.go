package middleware

import (
	"disasterguard/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader carries the client's session identifier. The middleware
// echoes the effective ID back on every response so a first-time client can
// pick it up.
const SessionHeader = "X-Session-ID"

// sessionLocalKey is the fiber.Ctx locals key the session is stored under.
const sessionLocalKey = "session"

// WithSession resolves the request's session from the X-Session-ID header,
// creating one (with a fresh ID) when the header is absent or unknown.
func WithSession(store domain.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := store.GetOrCreate(c.Get(SessionHeader))
		c.Locals(sessionLocalKey, session)
		c.Set(SessionHeader, session.ID)
		return c.Next()
	}
}

// SessionFromCtx returns the session resolved by WithSession.
func SessionFromCtx(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(sessionLocalKey).(*domain.Session)
	return session
}
