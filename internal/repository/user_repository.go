package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository/models"
	"easyway/internal/util"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, userID string, role domain.Role) error
	SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*domain.User, error)
	ClearResetToken(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, college, course, branch, year, photo_url, role, reset_token, reset_token_expires_at, created_at, updated_at, deleted_at`

func toDomainUser(m *models.User) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		College:      util.NullStringToString(m.College),
		Course:       util.NullStringToString(m.Course),
		Branch:       util.NullStringToString(m.Branch),
		Year:         util.NullInt64ToInt(m.Year),
		PhotoURL:     util.NullStringToString(m.PhotoURL),
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toModelUser(u *domain.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		College:      util.StringToNullString(u.College),
		Course:       util.StringToNullString(u.Course),
		Branch:       util.StringToNullString(u.Branch),
		Year:         util.IntToNullInt64(u.Year),
		PhotoURL:     util.StringToNullString(u.PhotoURL),
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// CreateUser inserts a new user row.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := toModelUser(user)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt

	query := `INSERT INTO users (id, name, email, password_hash, college, course, branch, year, photo_url, role, created_at, updated_at)
	          VALUES (:id, :name, :email, :password_hash, :college, :course, :branch, :year, :photo_url, :role, :created_at, :updated_at)`

	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when no user
// exists.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomainUser(&m), nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&m), nil
}

// UpdateUser updates profile fields of an existing user.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	m := toModelUser(user)
	m.UpdatedAt = time.Now()

	query := `UPDATE users SET
	            name = :name,
	            college = :college,
	            course = :course,
	            branch = :branch,
	            year = :year,
	            photo_url = :photo_url,
	            updated_at = :updated_at
	          WHERE id = :id AND deleted_at IS NULL`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateRole sets a user's role.
func (r *sqlxUserRepository) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	query := `UPDATE users SET role = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, string(role), time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetResetToken stores a password-reset token and its expiry on the user.
func (r *sqlxUserRepository) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expires_at = $2, updated_at = $3 WHERE id = $4 AND deleted_at IS NULL`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, token, expiresAt, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	return nil
}

// GetUserByResetToken retrieves a user by an unexpired reset token.
func (r *sqlxUserRepository) GetUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	var m models.User
	query := `SELECT ` + userColumns + ` FROM users
	          WHERE reset_token = $1 AND reset_token_expires_at > $2 AND deleted_at IS NULL`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, token, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return toDomainUser(&m), nil
}

// ClearResetToken removes any reset token from the user.
func (r *sqlxUserRepository) ClearResetToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET reset_token = NULL, reset_token_expires_at = NULL, updated_at = $1 WHERE id = $2`
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear reset token: %w", err)
	}
	return nil
}

// UpdatePassword replaces the user's password hash.
func (r *sqlxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListUsers returns all active users ordered by creation time.
func (r *sqlxUserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var rows []models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, toDomainUser(&rows[i]))
	}
	return users, nil
}

// CountUsers returns the number of active users.
func (r *sqlxUserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
