package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/ports"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a populated user_id and role prove
// the middleware ran.
func ctxClaims(c echo.Context) (ports.Claims, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return ports.Claims{UserID: userID, Role: role, Username: username}, nil
}

// requestMeta captures the transport details attached to audit entries.
func requestMeta(c echo.Context) ports.RequestMeta {
	return ports.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}
