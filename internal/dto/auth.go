package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims for the session JWT.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	College  string `json:"college,omitempty"`
	Course   string `json:"course,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Year     int    `json:"year,omitempty"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the sanitized user shape returned to clients. It never
// carries the password hash or reset token.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	College  string `json:"college,omitempty"`
	Course   string `json:"course,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Year     int    `json:"year,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
}

// UpdateProfileRequest is the body for PUT /auth/profile. Zero-valued fields
// are left unchanged.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	College  string `json:"college,omitempty"`
	Course   string `json:"course,omitempty"`
	Branch   string `json:"branch,omitempty"`
	Year     int    `json:"year,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// ForgotPasswordRequest is the body for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
