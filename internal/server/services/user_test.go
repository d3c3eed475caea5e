package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/auth"
	"github.com/dmitrijs2005/hackernews/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store  *store
	tokens *auth.TokenService
	users  *UserService
	links  *LinkService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newStore()
	rm := fakeRepoManager{st}
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	cfg := &config.Config{MinPasswordLength: 1}
	return &fixture{
		store:  st,
		tokens: tokens,
		users:  NewUserService(nil, rm, auth.NewPasswordHasher(bcrypt.MinCost), tokens, cfg, logging.Nop()),
		links:  NewLinkService(nil, rm, auth.NewIdentity(tokens), logging.Nop()),
	}
}

type brokenHasher struct {
	hashErr   error
	verifyErr error
}

func (b brokenHasher) Hash(string) (string, error) { return "", b.hashErr }
func (b brokenHasher) Verify(string, string) (bool, error) { return false, b.verifyErr }

type brokenIssuer struct{}

func (brokenIssuer) Issue(string) (string, error) { return "", errors.New("no key") }

func TestSignup_Success(t *testing.T) {
	f := newFixture(t)

	payload, err := f.users.Signup(context.Background(), "a@x.com", "secret123", "Alice")
	require.NoError(t, err)

	assert.NotEmpty(t, payload.User.ID)
	assert.Equal(t, "a@x.com", payload.User.Email)
	assert.Equal(t, "Alice", payload.User.Name)
	assert.NotEqual(t, "secret123", payload.User.PasswordHash, "plaintext is never stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(payload.User.PasswordHash), []byte("secret123")))

	userID, err := f.tokens.Verify(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, payload.User.ID, userID)
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, email, password string
	}{
		{"empty email", "  ", "secret"},
		{"empty password", "a@x.com", ""},
		{"password too long for bcrypt", "a@x.com", strings.Repeat("p", 73)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Signup(context.Background(), tt.email, tt.password, "n")
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
	assert.Empty(t, f.store.users)
}

func TestSignup_MinPasswordLength(t *testing.T) {
	st := newStore()
	s := NewUserService(nil, fakeRepoManager{st}, auth.NewPasswordHasher(bcrypt.MinCost),
		auth.NewTokenService([]byte("k"), 0), &config.Config{MinPasswordLength: 8}, logging.Nop())

	_, err := s.Signup(context.Background(), "a@x.com", "short", "A")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Signup(context.Background(), "a@x.com", "long enough", "A")
	require.NoError(t, err)
}

func TestSignup_Duplicate(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Signup(context.Background(), "a@x.com", "secret123", "Alice")
	require.NoError(t, err)

	_, err = f.users.Signup(context.Background(), "a@x.com", "other", "Alice 2")
	require.ErrorIs(t, err, common.ErrDuplicateUser)
	assert.Len(t, f.store.users, 1)
}

func TestSignup_InternalErrors(t *testing.T) {
	st := newStore()
	cfg := &config.Config{}

	s := NewUserService(nil, fakeRepoManager{st}, brokenHasher{hashErr: errors.New("rng")}, brokenIssuer{}, cfg, logging.Nop())
	_, err := s.Signup(context.Background(), "a@x.com", "pw", "A")
	require.ErrorIs(t, err, common.ErrorInternal)

	s = NewUserService(nil, fakeRepoManager{st}, auth.NewPasswordHasher(bcrypt.MinCost), brokenIssuer{}, cfg, logging.Nop())
	_, err = s.Signup(context.Background(), "a@x.com", "pw", "A")
	require.ErrorIs(t, err, common.ErrorInternal)

	st.err = errors.New("connection refused")
	_, err = s.Signup(context.Background(), "b@x.com", "pw", "B")
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signed, err := f.users.Signup(ctx, "a@x.com", "secret123", "Alice")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.users.Login(ctx, "nobody@x.com", "secret123")
		require.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.users.Login(ctx, "a@x.com", "wrong")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		payload, err := f.users.Login(ctx, "a@x.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, signed.User.ID, payload.User.ID)

		userID, err := f.tokens.Verify(payload.Token)
		require.NoError(t, err)
		assert.Equal(t, signed.User.ID, userID)
	})
}

func TestLogin_InternalErrors(t *testing.T) {
	st := newStore()
	st.users["u1"] = &alice
	cfg := &config.Config{}

	s := NewUserService(nil, fakeRepoManager{st}, brokenHasher{verifyErr: errors.New("bad hash")}, brokenIssuer{}, cfg, logging.Nop())
	_, err := s.Login(context.Background(), alice.Email, "pw")
	require.ErrorIs(t, err, common.ErrorInternal)

	st.err = errors.New("db down")
	_, err = s.Login(context.Background(), alice.Email, "pw")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestUserGetByID(t *testing.T) {
	f := newFixture(t)
	payload, err := f.users.Signup(context.Background(), "a@x.com", "pw", "A")
	require.NoError(t, err)

	u, err := f.users.GetByID(context.Background(), payload.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = f.users.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}
