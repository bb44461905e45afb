package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a populated user id
// proves the middleware ran. Handlers behind Auth call this instead of
// reading context keys directly.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, role, nil
}
