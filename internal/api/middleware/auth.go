package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/ports"
)

// Auth verifies the bearer token and injects the identity claims into the
// echo context. Every failure mode — missing header, malformed header, bad
// signature, expired token — yields the same 401 so callers learn nothing
// beyond "not authenticated".
func Auth(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
