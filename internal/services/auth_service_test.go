package services

import (
	"context"
	"errors"
	"testing"

	"github.com/articlehub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockAuthUserRepo is a mock implementation of AuthUserRepository
type mockAuthUserRepo struct {
	user        *models.User
	exists      bool
	err         error
	createdUser *models.User
}

func (m *mockAuthUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil || m.user.Email != email {
		return nil, models.ErrNotFound
	}
	return m.user, nil
}

func (m *mockAuthUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.exists, nil
}

func (m *mockAuthUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	m.createdUser = user
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Authenticate(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	hash := hashPassword(t, "correct-password")

	tests := []struct {
		name          string
		email         string
		password      string
		mockRepo      *mockAuthUserRepo
		expectedError error
	}{
		{
			name:     "success",
			email:    "alice@example.com",
			password: "correct-password",
			mockRepo: &mockAuthUserRepo{
				user: &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleUser},
			},
			expectedError: nil,
		},
		{
			name:          "unknown email",
			email:         "nobody@example.com",
			password:      "correct-password",
			mockRepo:      &mockAuthUserRepo{},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-password",
			mockRepo: &mockAuthUserRepo{
				user: &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleUser},
			},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "empty stored hash",
			email:    "alice@example.com",
			password: "correct-password",
			mockRepo: &mockAuthUserRepo{
				user: &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: "", Role: models.RoleUser},
			},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:          "empty email",
			email:         "",
			password:      "correct-password",
			mockRepo:      &mockAuthUserRepo{},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			email:    "alice@example.com",
			password: "",
			mockRepo: &mockAuthUserRepo{
				user: &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleUser},
			},
			expectedError: models.ErrInvalidCredentials,
		},
		{
			name:     "repository error",
			email:    "alice@example.com",
			password: "correct-password",
			mockRepo: &mockAuthUserRepo{
				err: errors.New("database error"),
			},
			expectedError: nil, // asserted separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.mockRepo, logger)

			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.name == "repository error" {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
				assert.Nil(t, user)
				return
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

// Failed logins must not reveal whether the email exists: unknown email and
// wrong password return identical errors.
func TestAuthService_Authenticate_UniformFailure(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	hash := hashPassword(t, "correct-password")

	repo := &mockAuthUserRepo{
		user: &models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleUser},
	}
	svc := NewAuthService(repo, logger)

	_, errUnknownEmail := svc.Authenticate(context.Background(), "nobody@example.com", "correct-password")
	_, errWrongPassword := svc.Authenticate(context.Background(), "alice@example.com", "wrong-password")

	assert.ErrorIs(t, errUnknownEmail, models.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, models.ErrInvalidCredentials)
	assert.Equal(t, errUnknownEmail.Error(), errWrongPassword.Error())
}

func TestAuthService_Signup(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name          string
		req           *models.SignupRequest
		mockRepo      *mockAuthUserRepo
		expectedError bool
	}{
		{
			name:          "success",
			req:           &models.SignupRequest{Name: "Bob", Email: "bob@example.com", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: false,
		},
		{
			name:          "email is lowercased",
			req:           &models.SignupRequest{Name: "Bob", Email: "Bob@Example.COM", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: false,
		},
		{
			name:          "empty email",
			req:           &models.SignupRequest{Name: "Bob", Email: "", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: true,
		},
		{
			name:          "invalid email format",
			req:           &models.SignupRequest{Name: "Bob", Email: "not-an-email", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: true,
		},
		{
			name:          "empty password",
			req:           &models.SignupRequest{Name: "Bob", Email: "bob@example.com", Password: ""},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: true,
		},
		{
			name:          "short password",
			req:           &models.SignupRequest{Name: "Bob", Email: "bob@example.com", Password: "short"},
			mockRepo:      &mockAuthUserRepo{},
			expectedError: true,
		},
		{
			name:          "email already exists",
			req:           &models.SignupRequest{Name: "Bob", Email: "bob@example.com", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{exists: true},
			expectedError: true,
		},
		{
			name:          "repository error",
			req:           &models.SignupRequest{Name: "Bob", Email: "bob@example.com", Password: "long-enough-password"},
			mockRepo:      &mockAuthUserRepo{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.mockRepo, logger)

			user, err := svc.Signup(context.Background(), tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Nil(t, tt.mockRepo.createdUser)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, models.RoleUser, user.Role)
				assert.Equal(t, "bob@example.com", user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.req.Password)))
			}
		})
	}
}
