package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/ports"
)

// LogHandler exposes the admin-only audit query surface.
type LogHandler struct {
	service ports.LogService
}

func NewLogHandler(service ports.LogService) *LogHandler {
	return &LogHandler{service: service}
}

// Users returns every user joined with their latest activity.
//
// @Summary      Users with latest activity (admin)
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserActivity
// @Failure      403  {object}  messageResponse
// @Router       /logs/users [get]
func (h *LogHandler) Users(c echo.Context) error {
	activity, err := h.service.UsersWithActivity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Recent returns one page of the global audit log, newest first.
//
// @Summary      Recent audit entries (admin)
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 100)"
// @Success      200    {object}  ports.LogPage
// @Failure      403    {object}  messageResponse
// @Router       /logs/recent [get]
func (h *LogHandler) Recent(c echo.Context) error {
	page, limit := pageParams(c)
	logs, err := h.service.Recent(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// ByUser returns one page of a single user's audit entries.
//
// @Summary      A user's audit entries (admin)
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true   "User id"
// @Param        page    query     int     false  "Page (default 1)"
// @Param        limit   query     int     false  "Page size (default 50)"
// @Success      200     {object}  ports.LogPage
// @Failure      403     {object}  messageResponse
// @Router       /logs/user/{userId} [get]
func (h *LogHandler) ByUser(c echo.Context) error {
	page, limit := pageParams(c)
	logs, err := h.service.ByUser(c.Request().Context(), c.Param("userId"), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// pageParams parses page and limit, leaving zero for the service defaults.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
