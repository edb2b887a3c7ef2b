package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrQuotaExceeded      = errors.New("generation limit reached")
	ErrAssistFailure      = errors.New("content improvement failed")
	ErrDatabaseError      = errors.New("database error")
)
