package client

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	errEmptyResponse = errors.New("empty response")
)

// APIError is an error reported by the server in the GraphQL errors list.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Message + " (" + strings.ToLower(e.Code) + ")"
}

// Is lets errors.Is(err, ErrUnauthorized) match UNAUTHENTICATED responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == "UNAUTHENTICATED"
}
