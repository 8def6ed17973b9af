package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/articlehub/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserRepository is the interface that wraps methods for User table data access needed by authentication
type AuthUserRepository interface {
	// Method GetByEmail retrieves a user by exact email match.
	//
	// "email" parameter is used to retrieve a user by email.
	//
	// If user with such email does not exist, models.ErrNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// "email" parameter is used to check if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user.
	//
	// If some error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
}

// authService implements authentication business logic
type authService struct {
	userRepo AuthUserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo AuthUserRepository, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Authenticate verifies email/password credentials and returns the user.
// Unknown email, missing stored hash and wrong password all map to
// models.ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(user.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// Signup creates a new user account with the USER role
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	if normalizedEmail == "" {
		return nil, models.NewValidationError("email", "email is required")
	}
	if !emailRegex.MatchString(normalizedEmail) {
		return nil, models.NewValidationError("email", "invalid email format")
	}
	if req.Password == "" {
		return nil, models.NewValidationError("password", "password is required")
	}
	if len(req.Password) < 8 {
		return nil, models.NewValidationError("password", "password must be at least 8 characters")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("email", "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Name:         strings.TrimSpace(req.Name),
		Role:         models.RoleUser, // Default role
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// verifyPassword compares a plaintext password against the stored bcrypt
// hash. It fails closed: a missing hash or any comparison error yields false.
func verifyPassword(storedHash, plaintext string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
