package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// UserService implements self-service profile operations and the
// admin-only account management surface.
type UserService struct {
	users      ports.UserRepository
	products   ports.ProductRepository
	audit      ports.AuditPublisher
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, products ports.ProductRepository, audit ports.AuditPublisher, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:      users,
		products:   products,
		audit:      audit,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.users.UpdateProfile(ctx, userID, name, email); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

// ChangePassword requires the current password to match. The repository
// clears the stored refresh token in the same write, so every other
// session has to log in again.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		s.publish(userID, domain.AuditPasswordChange, false, "wrong current password")
		return domain.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.publish(userID, domain.AuditPasswordChange, true, "")
	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// DeleteAccount removes the caller's own account after password
// confirmation. Admin accounts cascade by deactivating every product the
// account created before the account document is removed.
func (s *UserService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrWrongPassword
	}

	if user.Role == domain.RoleAdmin {
		n, err := s.products.DeactivateByCreator(ctx, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			s.logger.Info().Str("user_id", userID).Int64("products", n).Msg("deactivated products of deleted admin")
		}
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.publish(userID, domain.AuditAccountDelete, true, "self")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*ports.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.UserPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id, name, email string) (*domain.User, error) {
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.users.UpdateProfile(ctx, id, name, email); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// ChangeRole is admin-only and guarded against self-targeting: an admin
// demoting their own account could leave the system without any admin.
func (s *UserService) ChangeRole(ctx context.Context, callerID, targetID string, role domain.Role) (*domain.User, error) {
	if callerID == targetID {
		return nil, domain.ErrSelfAction
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if err := s.users.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}

	s.publish(targetID, domain.AuditRoleChange, true, string(role))
	s.logger.Info().Str("user_id", targetID).Str("role", string(role)).Msg("role changed")
	return s.users.FindByID(ctx, targetID)
}

// DeleteUser is admin-only and guarded against self-targeting; admins
// delete their own account through the self-service endpoint instead.
func (s *UserService) DeleteUser(ctx context.Context, callerID, targetID string) error {
	if callerID == targetID {
		return domain.ErrSelfAction
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.Role == domain.RoleAdmin {
		if _, err := s.products.DeactivateByCreator(ctx, targetID); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}

	s.publish(targetID, domain.AuditAccountDelete, true, "admin")
	return nil
}

func (s *UserService) publish(userID string, action domain.AuditAction, success bool, detail string) {
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
