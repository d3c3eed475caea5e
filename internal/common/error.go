// Package common defines shared constants and sentinel errors used across
// the server and client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential and identity errors.
	ErrInvalidCredentials = errors.New("Invalid password")
	ErrUserNotFound       = errors.New("No such user found")
	ErrDuplicateUser      = errors.New("user with this email already exists")
	ErrUnauthenticated    = errors.New("Not authenticated")

	// Token errors. An expired token matches both ErrInvalidToken and ErrTokenExpired.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Link and vote errors.
	ErrDuplicateVote = errors.New("already voted for link")
	ErrLinkNotFound  = errors.New("link not found")
)
