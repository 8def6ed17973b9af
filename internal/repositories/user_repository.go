package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/articlehub/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// userRepository implements user data access over MySQL
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database, generating an ID when absent
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, email, password_hash, name, role)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, nullableString(user.Name), user.Role)
	if err != nil {
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by exact email match
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, created_at
		FROM users
		WHERE email = ?
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, created_at
		FROM users
		WHERE id = ?
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all users ordered by creation date, newest first
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var name sql.NullString
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &name, &user.Role, &user.CreatedAt); err != nil {
			r.logger.Error("failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		user.Name = name.String
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// UpdateName updates a user's display name
func (r *userRepository) UpdateName(ctx context.Context, userID, name string) error {
	query := `UPDATE users SET name = ? WHERE id = ?`

	// MySQL reports zero affected rows for no-op updates, so existence is
	// checked by callers, not inferred from the result here
	_, err := r.db.ExecContext(ctx, query, nullableString(name), userID)
	if err != nil {
		r.logger.Error("failed to update user name", zap.Error(err), zap.String("userId", userID))
		return fmt.Errorf("failed to update user name: %w", err)
	}

	return nil
}

// UpdateRole updates a user's role
func (r *userRepository) UpdateRole(ctx context.Context, userID string, role models.Role) error {
	query := `UPDATE users SET role = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, role, userID)
	if err != nil {
		r.logger.Error("failed to update user role", zap.Error(err), zap.String("userId", userID))
		return fmt.Errorf("failed to update user role: %w", err)
	}

	return nil
}

// Delete deletes a user by ID. Authored articles are removed by the
// ON DELETE CASCADE constraint on articles.author_id.
func (r *userRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.String("userId", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return rowsAffectedOrNotFound(result)
}

// scanUser scans a single user row, mapping sql.ErrNoRows to models.ErrNotFound
func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var name sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&name,
		&user.Role,
		&user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to scan user", zap.Error(err))
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	user.Name = name.String
	return user, nil
}

// rowsAffectedOrNotFound maps zero affected rows to models.ErrNotFound
func rowsAffectedOrNotFound(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// nullableString converts an empty string to a SQL NULL
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
