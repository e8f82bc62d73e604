package service

import "errors"

// Domain errors shared by the services. Handlers map them to HTTP status codes.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidToken      = errors.New("invalid token")
	ErrEmailTaken        = errors.New("email already registered")
	ErrDogAPIUnavailable = errors.New("dog api unavailable")
)
