package votes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/dbx"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
)

const (
	userLinkConstraint = "votes_user_id_link_id_key"
	linkFKConstraint   = "votes_link_id_fkey"
	userFKConstraint   = "votes_user_id_fkey"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, linkID string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM votes WHERE user_id = $1 AND link_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, linkID).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID, linkID string) (*models.Vote, error) {
	query :=
		`INSERT INTO votes (user_id, link_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	vote := &models.Vote{UserID: userID, LinkID: linkID}
	err := r.db.QueryRowContext(ctx, query, userID, linkID).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		switch {
		case dbx.IsUniqueViolation(err, userLinkConstraint):
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateVote, linkID)
		case dbx.IsForeignKeyViolation(err, linkFKConstraint):
			return nil, fmt.Errorf("%w: %s", common.ErrLinkNotFound, linkID)
		case dbx.IsForeignKeyViolation(err, userFKConstraint):
			// the token outlived its user
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return vote, nil
}

func (r *PostgresRepository) ListByLink(ctx context.Context, linkID string) ([]*models.Vote, error) {
	query :=
		`SELECT id, user_id, link_id, created_at FROM votes
		 WHERE link_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Vote
	for rows.Next() {
		v := &models.Vote{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.LinkID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
