package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// RoleHandler exposes the role registry.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

type createRoleRequest struct {
	Name   string `json:"name"   validate:"required"`
	Accent string `json:"accent"`
}

// List returns every role, assignable first then alphabetical. Public:
// the registration page needs it before any token exists.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return c.JSON(http.StatusOK, roles)
}

// Create adds a new assignable role.
//
// @Summary      Create a role (admin)
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role details"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), req.Name, req.Accent)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, role)
}
