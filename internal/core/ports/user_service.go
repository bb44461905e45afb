package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// UserPage is one page of accounts from the admin list endpoint.
type UserPage struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines self-service and admin account operations.
// CallerID on admin mutations feeds the self-action guard: an admin may not
// change the role of, or delete, their own account through these endpoints.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	// DeleteAccount removes the caller's own account after password
	// confirmation. Admin accounts cascade by deactivating every product
	// the account created.
	DeleteAccount(ctx context.Context, userID, password string) error

	ListUsers(ctx context.Context, page, limit int) (*UserPage, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id, name, email string) (*domain.User, error)
	ChangeRole(ctx context.Context, callerID, targetID string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, callerID, targetID string) error
}
