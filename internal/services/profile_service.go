package services

import (
	"context"
	"strings"

	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileUserRepository is the interface that wraps methods for User table data access needed by profile updates
type ProfileUserRepository interface {
	// Method GetByID retrieves a user by ID.
	//
	// "userID" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// Method UpdateName updates a user's display name.
	//
	// "userID" parameter is used to identify the user.
	// "name" parameter is the new display name.
	//
	// If some error occurs during the update, the error will be returned.
	UpdateName(ctx context.Context, userID, name string) error
}

// profileService implements profile business logic
type profileService struct {
	userRepo ProfileUserRepository
	logger   *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo ProfileUserRepository, logger *zap.Logger) *profileService {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// UpdateName updates the caller's display name and returns the updated
// public user fields. The returned fields are the trusted source for the
// session refresh the handler performs afterwards.
func (s *profileService) UpdateName(ctx context.Context, userID, name string) (*models.PublicUser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("name", "valid name is required")
	}

	if err := s.userRepo.UpdateName(ctx, userID, name); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Public(), nil
}
