package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/model"
)

const sessionContextKey = "session"

// Auth requires a Bearer token and attaches the decoded Session to the
// request. Each request carries its own session; there is no process-wide
// current user.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.Auth("missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return apperr.Auth("invalid Authorization header format")
			}

			sess, err := auth.Parse(secret, parts[1])
			if err != nil {
				return err
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireRole rejects sessions whose role is not in the allow list.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if sess == nil {
				return apperr.Auth("authentication required")
			}
			for _, role := range roles {
				if sess.Role == role {
					return next(c)
				}
			}
			return apperr.Auth("insufficient role")
		}
	}
}

// SessionFrom returns the Session set by Auth, or nil on unauthenticated
// routes.
func SessionFrom(c echo.Context) *auth.Session {
	sess, _ := c.Get(sessionContextKey).(*auth.Session)
	return sess
}
