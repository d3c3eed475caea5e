package graphql

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/hackernews/internal/common"
)

// Error codes reported in extensions.code.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeDuplicateVote      = "DUPLICATE_VOTE"
	CodeLinkNotFound       = "LINK_NOT_FOUND"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeInternal           = "INTERNAL"
)

const hiddenLoginMessage = "invalid email or password"

// Error is a resolver error carrying a client-facing code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

// Extensions is picked up by graphql-go and rendered under "extensions".
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

type errorMapper struct {
	hideUserEnumeration bool
}

// Map converts a service error into an *Error. Unknown errors become
// CodeInternal with a generic message.
func (m errorMapper) Map(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrUnauthenticated):
		return &Error{Message: common.ErrUnauthenticated.Error(), Code: CodeUnauthenticated}
	case errors.Is(err, common.ErrUserNotFound):
		if m.hideUserEnumeration {
			return &Error{Message: hiddenLoginMessage, Code: CodeInvalidCredentials}
		}
		return &Error{Message: common.ErrUserNotFound.Error(), Code: CodeUserNotFound}
	case errors.Is(err, common.ErrInvalidCredentials):
		if m.hideUserEnumeration {
			return &Error{Message: hiddenLoginMessage, Code: CodeInvalidCredentials}
		}
		return &Error{Message: common.ErrInvalidCredentials.Error(), Code: CodeInvalidCredentials}
	case errors.Is(err, common.ErrDuplicateUser):
		return &Error{Message: common.ErrDuplicateUser.Error(), Code: CodeDuplicateUser}
	case errors.Is(err, common.ErrDuplicateVote):
		return &Error{Message: err.Error(), Code: CodeDuplicateVote}
	case errors.Is(err, common.ErrLinkNotFound):
		return &Error{Message: err.Error(), Code: CodeLinkNotFound}
	case errors.Is(err, common.ErrorValidation):
		msg := strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")
		return &Error{Message: msg, Code: CodeBadUserInput}
	default:
		return &Error{Message: common.ErrorInternal.Error(), Code: CodeInternal}
	}
}
