// Package users declares the user storage contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in its ID and CreatedAt. A taken email
	// yields common.ErrDuplicateUser.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns common.ErrorNotFound when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns common.ErrorNotFound when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
