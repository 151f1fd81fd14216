package usecase

import "errors"

var (
	ErrInvalidID = errors.New("id must be greater than zero")

	ErrHotelNotFound   = errors.New("hotel not found")
	ErrCountryNotFound = errors.New("country not found")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")

	ErrAuditLogNotFound = errors.New("audit log not found")
)
