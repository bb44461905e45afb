package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/api/metrics"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// LoginLimiter throttles login attempts per email. A nil limiter disables
// throttling.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	authService ports.AuthService
	limiter     LoginLimiter
}

func NewAuthHandler(authService ports.AuthService, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter}
}

// Register creates a new account and returns an initial token pair.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "account registered", authData{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             user,
	})
}

// Login authenticates by email/password and returns a fresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(ctx, req.Email)
		if err == nil && !allowed {
			metrics.RateLimitedLoginsTotal.Inc()
			return domain.ErrTooManyAttempts
		}
		// Limiter errors are ignored: Redis being down must not lock
		// everyone out.
	}

	user, pair, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	if h.limiter != nil {
		_ = h.limiter.Reset(ctx, req.Email)
	}

	return respond(c, http.StatusOK, "login successful", authData{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             user,
	})
}

// Refresh rotates a refresh token into a new pair.
//
// @Summary      Refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Current refresh token"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "tokens refreshed", authData{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             user,
	})
}

// Logout clears the stored refresh token for the authenticated account.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "logged out", nil)
}
