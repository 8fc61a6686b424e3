package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airlinehq/airline-api/internal/api/metrics"
	"github.com/airlinehq/airline-api/internal/api/middleware"
	"github.com/airlinehq/airline-api/internal/core/domain"
	"github.com/airlinehq/airline-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns a bearer token for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()
	return c.JSON(http.StatusCreated, authResponse{Success: true, Token: token, Data: user})
}

// Login authenticates by email and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, Token: token, Data: user})
}

// LoginPhone authenticates by contact number and returns a bearer token.
func (h *AuthHandler) LoginPhone(c echo.Context) error {
	var req loginPhoneRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.LoginPhone(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login_phone").Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, Token: token, Data: user})
}

// Me returns the profile of the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.NewAuthError("missing or invalid Authorization header")
	}

	user, err := h.authService.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: user})
}

// Logout acknowledges the request. Tokens are stateless, so invalidation
// happens on the client by discarding the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "logged out"})
}
