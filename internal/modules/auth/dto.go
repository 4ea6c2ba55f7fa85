package auth

import "bengkel/internal/domain"

// LoginRequest carries only the picked username. There is no password:
// the login screen is an operator picker, not an authentication gate.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}
