package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickaccess/linkdir/internal/api/metrics"
	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type createdUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// Register creates a new user account (self-service bootstrap flow).
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password, requestMeta(c))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout records the logout action. The token itself stays valid until it
// expires; there is no server-side session to destroy.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	h.authService.Logout(c.Request().Context(), actor, requestMeta(c))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Verify echoes the claims of a valid token.
//
// @Summary      Verify the bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]ports.Claims
// @Failure      401  {object}  messageResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]ports.Claims{"user": actor})
}

// RegisterUser creates a user on behalf of the acting admin.
//
// @Summary      Register a user (admin)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "User details"
// @Success      201   {object}  createdUserResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /auth/register-user [post]
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterByAdmin(c.Request().Context(), actor, ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, requestMeta(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdUserResponse{Message: "User created successfully", User: user})
}

// ListUsers returns every account without password hashes.
//
// @Summary      List users (admin)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  messageResponse
// @Router       /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
