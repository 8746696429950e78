// Package auth — Register and Login business logic.
// Handles user creation, password hashing, and JWT issuance.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgauth "github.com/umaryunusa/wazobia/pkg/auth"
	"github.com/umaryunusa/wazobia/pkg/uuid"
)

// ErrInvalidCredentials is returned by Login when email or password is incorrect.
// Using a single error for both cases avoids leaking whether an email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailAlreadyExists is returned by Register when the email is already taken.
var ErrEmailAlreadyExists = errors.New("email already registered")

// ErrUsernameTaken is returned by Register when the username is already taken.
var ErrUsernameTaken = errors.New("username already taken")

// ErrAccountInactive is returned by Login for deactivated accounts.
var ErrAccountInactive = errors.New("account is inactive")

// RegisterInput holds the data needed to create a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// User is the public view of a user row. The password hash never leaves this
// package.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// AuthResult is returned after successful Register or Login.
// Token is a signed JWT containing UserID and Username claims.
//
//nolint:revive // stable domain API
type AuthResult struct {
	Token string
	User  User
}

// AuthService defines the authentication business operations.
//
//nolint:revive // stable public interface
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	GetUser(ctx context.Context, userID string) (*User, error)
}

// authService is the concrete implementation backed by SQLite.
type authService struct {
	db *sql.DB
}

// NewAuthService creates a new AuthService backed by the provided DB.
func NewAuthService(db *sql.DB) AuthService {
	return &authService{db: db}
}

// Register creates a new user and returns a JWT.
// Password is hashed with bcrypt before storage; plaintext is never stored.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	hash, err := pkgauth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, input.Email, input.Username, hash, now)
	if err != nil {
		if uniqueErr := classifyUniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := pkgauth.GenerateJWT(userID, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &AuthResult{
		Token: token,
		User: User{
			ID:        userID,
			Email:     input.Email,
			Username:  input.Username,
			CreatedAt: now,
		},
	}, nil
}

// Login verifies credentials and returns a JWT.
// Always returns ErrInvalidCredentials when the email is unknown OR the
// password is wrong, to avoid revealing whether the email exists. A correct
// password on a deactivated account gets the distinct ErrAccountInactive.
func (s *authService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	var u User
	var passwordHash string
	var isActive bool

	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, username, password_hash, is_active, is_admin, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, input.Email).Scan(&u.ID, &u.Email, &u.Username, &passwordHash, &isActive, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		// Unknown email and DB errors get the same generic answer.
		return nil, ErrInvalidCredentials
	}

	if !pkgauth.VerifyPassword(passwordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}
	if !isActive {
		return nil, ErrAccountInactive
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE users SET last_login = ? WHERE id = ?", now, u.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := pkgauth.GenerateJWT(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &AuthResult{Token: token, User: u}, nil
}

// GetUser fetches the public view of a user by id.
func (s *authService) GetUser(ctx context.Context, userID string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, username, is_admin, created_at
		FROM users
		WHERE id = ? AND is_active = 1
	`, userID).Scan(&u.ID, &u.Email, &u.Username, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// classifyUniqueViolation maps SQLite UNIQUE constraint errors to the domain
// error for the offending column, or nil for unrelated errors.
func classifyUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	if strings.Contains(msg, "users.username") {
		return ErrUsernameTaken
	}
	return ErrEmailAlreadyExists
}
