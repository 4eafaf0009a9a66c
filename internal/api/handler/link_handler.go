package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/api/metrics"
	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// LinkHandler handles the role-gated link CRUD endpoints.
type LinkHandler struct {
	service ports.LinkService
}

func NewLinkHandler(service ports.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

type createLinkRequest struct {
	Title       string `json:"title"       validate:"required"`
	URL         string `json:"url"         validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Category    string `json:"category"    validate:"required"`
}

// updateLinkRequest has no required fields: empty values keep what is stored.
type updateLinkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Category    string `json:"category"`
}

// List returns the links visible to the caller's role, newest first.
//
// @Summary      List visible links
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Link
// @Failure      401  {object}  messageResponse
// @Router       /links [get]
func (h *LinkHandler) List(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	links, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if links == nil {
		links = []domain.Link{}
	}
	return c.JSON(http.StatusOK, links)
}

// Create adds a link in a category the caller may target.
//
// @Summary      Create a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLinkRequest  true  "Link details"
// @Success      201   {object}  domain.Link
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /links [post]
func (h *LinkHandler) Create(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link, err := h.service.Create(c.Request().Context(), actor, ports.LinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Logo:        req.Logo,
		Category:    req.Category,
	}, requestMeta(c))
	if err != nil {
		return err
	}

	metrics.LinksCreatedTotal.WithLabelValues(link.Category).Inc()
	return c.JSON(http.StatusCreated, link)
}

// Update modifies a link the caller owns (or any link, for admins).
//
// @Summary      Update a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Link id"
// @Param        body  body      updateLinkRequest  true  "Fields to change"
// @Success      200   {object}  domain.Link
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /links/{id} [put]
func (h *LinkHandler) Update(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	link, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.LinkInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Logo:        req.Logo,
		Category:    req.Category,
	}, requestMeta(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, link)
}

// Delete removes a link the caller owns (or any link, for admins).
//
// @Summary      Delete a link
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Link id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /links/{id} [delete]
func (h *LinkHandler) Delete(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id"), requestMeta(c)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Link deleted successfully"})
}

// Click records a link_click audit entry for a visible link.
//
// @Summary      Record a link click
// @Tags         links
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Link id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /links/{id}/click [post]
func (h *LinkHandler) Click(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Click(c.Request().Context(), actor, c.Param("id"), requestMeta(c)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Click recorded"})
}
