// Package auth implements credential hashing, stateless token issuance and
// verification, and caller identity resolution from the request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errEmptySecret = errors.New("empty signing secret")

// Claims carries the user identifier alongside the standard claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService issues and verifies HS256 tokens. Tokens are stateless: there
// is no revocation, a token stays valid until it expires. A zero validity
// produces tokens without an expiry claim.
//
// An empty secret disables the service: Issue and Verify both fail.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity, now: time.Now}
}

// Issue signs a token bound to userID.
func (s *TokenService) Issue(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, errEmptySecret)
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
		UserID:           userID,
	}
	if s.validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.validity))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", common.ErrorInternal, err)
	}
	return token, nil
}

// Verify checks the signature and expiry of tokenString and returns the user
// id it carries. Every failure wraps common.ErrInvalidToken; an expired token
// also wraps common.ErrTokenExpired.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, errEmptySecret)
	}
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
