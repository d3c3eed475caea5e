package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when none or an invalid one is configured.
const DefaultCost = 10

// PasswordHasher hashes and verifies passwords with bcrypt. The salt and cost
// are encoded in the hash itself.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password longer than 72 bytes", common.ErrorValidation)
		}
		return "", fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. A mismatch is (false, nil);
// an error means the stored hash itself is unusable.
func (h *PasswordHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: malformed password hash: %v", common.ErrorInternal, err)
	}
}
