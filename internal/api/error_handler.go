package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

// messageResponse is the canonical error envelope for all API errors.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors before surfacing them.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes with the wording the
	// client UI expects.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrUserExists):
		// The original registration contract reports duplicates as a plain
		// bad request, not a conflict.
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role"
	case errors.Is(err, domain.ErrInvalidRoleName):
		return http.StatusBadRequest, "Invalid role name"
	case errors.Is(err, domain.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid URL"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, domain.ErrRoleExists):
		return http.StatusConflict, "Role already exists"
	case errors.Is(err, domain.ErrCategoryForbidden):
		return http.StatusForbidden, "You don't have permission to add links to this category"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Unauthorized"
	case errors.Is(err, domain.ErrLinkNotFound):
		return http.StatusNotFound, "Link not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log it and pass the message through. This is an
	// internal tool; redact here before any external exposure.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
