package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// UserHandler handles self-service profile routes and the admin-only
// account management routes.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the authenticated account.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile", user)
}

// UpdateProfile edits the authenticated account's name and email.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), userID, req.Name, req.Email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "profile updated", user)
}

// ChangePassword replaces the password after verifying the current one.
// Other sessions are forced to re-login because the stored refresh token
// is cleared alongside the hash.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/users/change-password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password changed", nil)
}

// DeleteAccount removes the authenticated account after password
// confirmation.
//
// @Summary      Delete own account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteAccountRequest  true  "Password confirmation"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/users/delete-account [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req deleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), userID, req.Password); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "account deleted", nil)
}

// --- Admin routes ---

// List returns a page of accounts.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  envelope
// @Failure      403    {object}  envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.userService.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "users", userListData{
		Users: result.Items,
		Pagination: paginationData{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get returns one account by id.
//
// @Summary      Get an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user", user)
}

// Update edits another account's name and email.
//
// @Summary      Update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Account id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), c.Param("id"), req.Name, req.Email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user updated", user)
}

// ChangeRole changes another account's role. Self-targeting is rejected by
// the service with a 400.
//
// @Summary      Change an account's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.ChangeRole(c.Request().Context(), callerID, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "role updated", user)
}

// Delete removes another account. Self-targeting is rejected by the
// service with a 400.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), callerID, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user deleted", nil)
}
