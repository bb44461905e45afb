package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/ports"
)

// Context keys populated by Auth for downstream middleware and handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// AccessVerifier is the subset of the token service the middleware needs.
type AccessVerifier interface {
	VerifyAccess(token string) (*ports.Identity, error)
}

// Auth extracts and verifies the bearer access token and injects the
// resolved identity into the request context. Read-only: verification is
// signature+expiry only, no store access.
func Auth(tokens AccessVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxRole, string(identity.Role))

			return next(c)
		}
	}
}
