package ports

import (
	"context"
	"time"

	"github.com/storelane/commerce-api/internal/core/domain"
)

// Identity is the caller resolved from a verified token.
type Identity struct {
	UserID string
	Role   domain.Role
}

// TokenPair is a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and verifies signed token pairs.
type TokenService interface {
	// IssuePair signs a new pair and persists the refresh token on the
	// account, invalidating any previously issued refresh token.
	IssuePair(ctx context.Context, user *domain.User) (*TokenPair, error)
	// VerifyAccess checks signature and expiry only. Access tokens are
	// self-contained; no store lookup, not revocable before expiry.
	VerifyAccess(token string) (*Identity, error)
	// VerifyRefresh checks signature, expiry, and that the presented token
	// matches the value currently stored on the account.
	VerifyRefresh(ctx context.Context, token string) (*domain.User, error)
}
