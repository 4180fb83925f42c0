package users

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
}

type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}
