package ports

import (
	"context"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// AuthService implements the credential lifecycle: register, login,
// refresh-token rotation and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	// Refresh verifies the presented refresh token and rotates it,
	// returning a new pair. The old refresh token is immediately invalid.
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *TokenPair, error)
	// Logout clears the stored refresh token so it can no longer be used.
	Logout(ctx context.Context, userID string) error
}
