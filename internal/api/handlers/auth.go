// HTTP handlers for signup, login and the authenticated /me endpoint.
// Translates HTTP requests into domain/auth.AuthService calls and maps domain
// errors to HTTP codes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/umaryunusa/wazobia/internal/domain/auth"
	pkgauth "github.com/umaryunusa/wazobia/pkg/auth"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService domainauth.AuthService
}

// NewAuthHandler creates a new AuthHandler backed by the provided AuthService.
func NewAuthHandler(authService domainauth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest is the request body for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after successful signup or login.
type AuthResponse struct {
	User      domainauth.User `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt string          `json:"expires_at"`
}

// Signup handles POST /auth/signup.
//
// Response codes:
//   - 201 Created: registration successful
//   - 400 Bad Request: invalid JSON, missing/short fields, or email/username taken
//   - 500 Internal Server Error: unexpected failure
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateSignupRequest(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Register(r.Context(), domainauth.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainauth.ErrEmailAlreadyExists):
			writeError(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, domainauth.ErrUsernameTaken):
			writeError(w, http.StatusBadRequest, "Username already taken")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	writeJSON(w, http.StatusCreated, authResponse(result))
}

// Login handles POST /auth/login.
//
// Response codes:
//   - 200 OK: login successful
//   - 400 Bad Request: invalid JSON or missing fields
//   - 401 Unauthorized: invalid credentials (generic — doesn't reveal if email exists)
//   - 403 Forbidden: account deactivated
//   - 500 Internal Server Error: unexpected failure
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), domainauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainauth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domainauth.ErrAccountInactive):
			writeError(w, http.StatusForbidden, "Account is inactive")
		default:
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse(result))
}

// Me handles GET /api/v1/me — returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := getUserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func authResponse(result *domainauth.AuthResult) AuthResponse {
	return AuthResponse{
		User:      result.User,
		Token:     result.Token,
		ExpiresAt: time.Now().UTC().Add(pkgauth.JWTExpiry()).Format(time.RFC3339),
	}
}

func validateSignupRequest(req SignupRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return errors.New("a valid email is required")
	}
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return errors.New("username must be 3-50 characters")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
