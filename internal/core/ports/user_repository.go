package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts. All per-field
// mutations are single atomic document writes; concurrent updates to the
// same account are last-write-wins.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns a page of accounts and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	UpdateProfile(ctx context.Context, id, name, email string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	// SetRefreshToken overwrites the single stored refresh token.
	// An empty token means logged out.
	SetRefreshToken(ctx context.Context, id, token string) error
	// SetPassword stores a new password hash and clears the refresh token
	// in the same write, forcing re-login on other sessions.
	SetPassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}
