package auth

import "github.com/davidalonso/gamevault-backend/internal/users"

// SignupRequest contains the payload required to create an account.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupResponse returns the created account.
type SignupResponse struct {
	User *users.UserDTO `json:"user"`
}

// LoginResponse returns the bearer token and account summary.
type LoginResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}
