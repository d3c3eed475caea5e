// Package votes declares the vote storage contract and its PostgreSQL
// implementation. Storage enforces at most one vote per (user, link).
package votes

import (
	"context"

	"github.com/dmitrijs2005/hackernews/internal/server/models"
)

type Repository interface {
	// Exists reports whether userID already voted for linkID.
	Exists(ctx context.Context, userID, linkID string) (bool, error)

	// Create inserts a vote. It yields common.ErrDuplicateVote when the pair
	// already exists and common.ErrLinkNotFound when linkID is unknown.
	Create(ctx context.Context, userID, linkID string) (*models.Vote, error)

	// ListByLink returns the votes of a link, oldest first.
	ListByLink(ctx context.Context, linkID string) ([]*models.Vote, error)
}
