package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/api/metrics"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// LogoHandler resolves site URLs to inline favicon data URIs.
type LogoHandler struct {
	service ports.LogoService
}

func NewLogoHandler(service ports.LogoService) *LogoHandler {
	return &LogoHandler{service: service}
}

type fetchLogoRequest struct {
	URL string `json:"url" validate:"required"`
}

// Fetch tries the external favicon providers in fixed order and returns the
// first hit as a data URI. A miss on every provider is still a 200 so the
// client can fall back to a manual upload.
//
// @Summary      Fetch a site logo
// @Tags         logo
// @Accept       json
// @Produce      json
// @Param        body  body      fetchLogoRequest  true  "Site URL"
// @Success      200   {object}  ports.LogoResult
// @Failure      400   {object}  messageResponse
// @Router       /logo/fetch [post]
func (h *LogoHandler) Fetch(c echo.Context) error {
	var req fetchLogoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "URL is required")
	}

	result, err := h.service.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		return err
	}

	source := result.Source
	if source == "" {
		source = "none"
	}
	metrics.LogoFetchTotal.WithLabelValues(source).Inc()

	return c.JSON(http.StatusOK, result)
}
