// Package links declares the link storage contract and its PostgreSQL
// implementation.
package links

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/server/models"
)

type Repository interface {
	// Create inserts link and fills in its ID and CreatedAt.
	Create(ctx context.Context, link *models.Link) (*models.Link, error)

	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*models.Link, error)

	// List returns links newest first.
	List(ctx context.Context, limit, offset int) ([]*models.Link, error)
}
