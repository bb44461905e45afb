package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrSelfAction         = errors.New("cannot modify own account")
	ErrProductNotFound    = errors.New("product not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
