package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// UserIDKey is the echo context key holding the caller's identity
	UserIDKey = "userID"

	UserIDHeader    = "X-User-ID"
	DefaultIdentity = "demo"
)

// UserIdentityMiddleware resolves the caller's pseudo-identity from the user_id query
// parameter or the X-User-ID header, falling back to "demo". Nothing is verified.
func UserIdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := strings.TrimSpace(c.QueryParam("user_id"))
			if identity == "" {
				identity = strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			}
			if identity == "" {
				identity = DefaultIdentity
			}
			c.Set(UserIDKey, identity)
			return next(c)
		}
	}
}

// UserID returns the identity resolved by UserIdentityMiddleware. A non-empty override,
// typically the user_id field of a request body, wins.
func UserID(c echo.Context, override string) string {
	if o := strings.TrimSpace(override); o != "" {
		return o
	}
	if id, ok := c.Get(UserIDKey).(string); ok && id != "" {
		return id
	}
	return DefaultIdentity
}
