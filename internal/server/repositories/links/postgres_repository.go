package links

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/dbx"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, link *models.Link) (*models.Link, error) {
	query :=
		`INSERT INTO links (url, description, posted_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, link.URL, link.Description, link.PostedByID).
		Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("posting user %s: %w", link.PostedByID, common.ErrorNotFound)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Link, error) {
	query :=
		`SELECT id, url, description, posted_by, created_at FROM links
		 WHERE id = $1
		 `

	link := &models.Link{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&link.ID, &link.URL, &link.Description, &link.PostedByID, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return link, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*models.Link, error) {
	query :=
		`SELECT id, url, description, posted_by, created_at FROM links
		 ORDER BY created_at DESC, id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Link, 0, limit)
	for rows.Next() {
		link := &models.Link{}
		if err := rows.Scan(&link.ID, &link.URL, &link.Description, &link.PostedByID, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
