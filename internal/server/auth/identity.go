package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hackernews/internal/common"
)

type ctxKey string

const bearerTokenKey ctxKey = "bearerToken"

// WithBearerToken returns a copy of ctx carrying the raw bearer token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerTokenFromContext returns the token stored by WithBearerToken.
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok && token != ""
}

// BearerToken extracts the token from an Authorization header value. The
// "Bearer" scheme is optional and matched case-insensitively.
func BearerToken(header string) string {
	h := strings.TrimSpace(header)
	n := len(common.BearerScheme)
	if len(h) >= n && strings.EqualFold(h[:n], common.BearerScheme) && (len(h) == n || h[n] == ' ') {
		h = h[n:]
	}
	return strings.TrimSpace(h)
}

// TokenVerifier resolves a token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Identity resolves the caller of a request.
type Identity struct {
	tokens TokenVerifier
}

func NewIdentity(tokens TokenVerifier) *Identity {
	return &Identity{tokens: tokens}
}

// Resolve returns the caller's user id. It fails with common.ErrUnauthenticated
// when the context carries no token, and with an error matching both
// common.ErrUnauthenticated and common.ErrInvalidToken when the token does not
// verify. ctx is never modified.
func (i *Identity) Resolve(ctx context.Context) (string, error) {
	token, ok := BearerTokenFromContext(ctx)
	if !ok {
		return "", common.ErrUnauthenticated
	}

	userID, err := i.tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
	}
	return userID, nil
}
