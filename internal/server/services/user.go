// Package services contains the server-side business logic behind the
// GraphQL mutations and queries. This file implements UserService, which
// handles signup and login and issues tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/config"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/repomanager"
)

// AuthPayload is returned by signup and login.
type AuthPayload struct {
	Token string
	User  *models.User
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) (bool, error)
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// UserService provides account operations:
//   - Signup: create a user and log them in
//   - Login: verify credentials and issue a token
//   - GetByID: look up a user for nested GraphQL fields
type UserService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	hasher            PasswordHasher
	tokens            TokenIssuer
	minPasswordLength int
	logger            logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenIssuer,
	cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		db:                db,
		repomanager:       m,
		hasher:            hasher,
		tokens:            tokens,
		minPasswordLength: max(cfg.MinPasswordLength, 1),
		logger:            l.With("module", "user_service"),
	}
}

// Signup stores a new user with a hashed password and returns a token for it.
// A taken email yields common.ErrDuplicateUser.
func (s *UserService) Signup(ctx context.Context, email, password, name string) (*AuthPayload, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, s.minPasswordLength)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, internal(ctx, s.logger, "hash password", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return nil, common.ErrDuplicateUser
		}
		return nil, internal(ctx, s.logger, "create user", err)
	}

	payload, err := s.authPayload(user)
	if err != nil {
		return nil, internal(ctx, s.logger, "issue token", err)
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return payload, nil
}

// Login checks the password of the user registered under email. Unknown
// emails yield common.ErrUserNotFound, wrong passwords
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(ctx, s.logger, "find user", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, internal(ctx, s.logger, "verify password", err)
	}
	if !ok {
		s.logger.Warn(ctx, "login rejected", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	payload, err := s.authPayload(user)
	if err != nil {
		return nil, internal(ctx, s.logger, "issue token", err)
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return payload, nil
}

// GetByID returns common.ErrUserNotFound for unknown ids.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, internal(ctx, s.logger, "get user", err)
	}
	return user, nil
}

// --- helpers below ---

func (s *UserService) authPayload(user *models.User) (*AuthPayload, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, User: user}, nil
}
