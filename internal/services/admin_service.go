package services

import (
	"context"

	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
)

// AdminUserRepository is the interface that wraps methods for User table data access needed by admin operations
type AdminUserRepository interface {
	// Method GetAll retrieves all users ordered by creation date.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// "userID" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// Method UpdateRole updates a user's role.
	//
	// "userID" parameter is used to identify the user.
	// "role" parameter is the new role.
	//
	// If some error occurs during the update, the error will be returned.
	UpdateRole(ctx context.Context, userID string, role models.Role) error
	// Method Delete deletes a user by ID.
	//
	// "userID" parameter is used to identify the user to delete.
	//
	// If user with such ID does not exist, models.ErrNotFound will be returned.
	Delete(ctx context.Context, userID string) error
}

// adminService implements admin user management business logic
type adminService struct {
	userRepo AdminUserRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers retrieves all users for the admin user list
func (s *adminService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]models.UserListItem, len(users))
	for i, user := range users {
		list[i] = models.UserListItem{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		}
	}

	return list, nil
}

// UpdateRole changes a user's role. The change takes effect on the target's
// next session issuance or refresh, not on tokens already in the wild.
func (s *adminService) UpdateRole(ctx context.Context, userID string, role models.Role) (*models.PublicUser, error) {
	if userID == "" {
		return nil, models.NewValidationError("id", "user id is required")
	}
	if !role.Valid() {
		return nil, models.NewValidationError("role", "role must be USER or ADMIN")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	user.Role = role
	return user.Public(), nil
}

// DeleteUser deletes a user. Self-deletion is forbidden so an admin cannot
// lock themselves out mid-session.
func (s *adminService) DeleteUser(ctx context.Context, callerID, userID string) error {
	if userID == "" {
		return models.NewValidationError("id", "user id is required")
	}
	if userID == callerID {
		return models.NewValidationError("id", "you cannot delete your own account")
	}

	return s.userRepo.Delete(ctx, userID)
}
