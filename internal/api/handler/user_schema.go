package handler

import "github.com/storelane/commerce-api/internal/core/domain"

type updateProfileRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin customer"`
}

type paginationData struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type userListData struct {
	Users      []*domain.User `json:"users"`
	Pagination paginationData `json:"pagination"`
}
