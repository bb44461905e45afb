package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the signed token payload. Subject carries the account id;
// TokenType distinguishes access from refresh tokens so one can never be
// presented in place of the other.
type Claims struct {
	Role      domain.Role `json:"role"`
	TokenType string      `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access/refresh pairs.
// Refresh tokens are additionally checked against the single value stored
// on the account, which makes them revocable by overwrite.
type TokenService struct {
	repo       ports.UserRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(repo ports.UserRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{
		repo:       repo,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair signs a fresh pair and persists the refresh token on the
// account. The previously stored refresh token stops validating at that
// point (single-session semantics).
func (s *TokenService) IssuePair(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	now := time.Now().UTC()
	accessExp := now.Add(s.accessTTL)
	refreshExp := now.Add(s.refreshTTL)

	access, err := s.sign(user, tokenTypeAccess, now, accessExp)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.sign(user, tokenTypeRefresh, now, refreshExp)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := s.repo.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &ports.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// VerifyAccess checks signature and expiry only. No store lookup.
func (s *TokenService) VerifyAccess(token string) (*ports.Identity, error) {
	claims, err := s.parse(token, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &ports.Identity{UserID: claims.Subject, Role: claims.Role}, nil
}

// VerifyRefresh checks signature and expiry, then loads the account and
// requires the presented token to equal the stored one. A rotated or
// cleared token therefore fails immediately even before its expiry.
func (s *TokenService) VerifyRefresh(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parse(token, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != token {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

func (s *TokenService) sign(user *domain.User, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenService) parse(token, wantType string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// newTokenID returns a random token id so that two pairs issued within the
// same second still differ, keeping rotation observable.
func newTokenID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
