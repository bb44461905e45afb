package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/commerce-api/internal/api/metrics"
	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// AuthService implements the credential lifecycle.
type AuthService struct {
	repo       ports.UserRepository
	tokens     ports.TokenService
	audit      ports.AuditPublisher
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, audit ports.AuditPublisher, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		tokens:     tokens,
		audit:      audit,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates the account and immediately issues a token pair.
// Unknown roles default to customer rather than failing, so public
// registration never needs to know the role vocabulary.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, *ports.TokenPair, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		role = domain.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(ctx, created)
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.publish(created.ID, domain.AuditRegister, true, string(role))
	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("account registered")

	return created, pair, nil
}

// Login verifies the password and issues a fresh pair, overwriting the
// stored refresh token (other sessions are silently logged out).
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *ports.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.publish(user.ID, domain.AuditLogin, false, "bad password")
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.publish(user.ID, domain.AuditLogin, true, "")
	s.logger.Info().Str("user_id", user.ID).Msg("login")

	return user, pair, nil
}

// Refresh rotates the pair: the presented token must match the stored one,
// and issuing the new pair overwrites it, so the old token is invalid from
// this point on.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *ports.TokenPair, error) {
	user, err := s.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return nil, nil, err
	}

	pair, err := s.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	s.publish(user.ID, domain.AuditTokenRefresh, true, "")

	return user, pair, nil
}

// Logout clears the stored refresh token. The current access token stays
// usable until it expires; access tokens are not revocable.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.repo.SetRefreshToken(ctx, userID, ""); err != nil {
		return err
	}
	s.publish(userID, domain.AuditLogout, true, "")
	return nil
}

func (s *AuthService) publish(userID string, action domain.AuditAction, success bool, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Publish(domain.AuditEvent{
		UserID:    userID,
		Action:    action,
		Success:   success,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
