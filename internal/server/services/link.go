package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Feed page sizes.
const (
	DefaultFeedSize = 20
	MaxFeedSize     = 100
)

// IdentityResolver yields the user id of the caller carried by ctx.
type IdentityResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// LinkService posts and lists links.
type LinkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	identity    IdentityResolver
	logger      logging.Logger
}

func NewLinkService(db *sql.DB, m repomanager.RepositoryManager, identity IdentityResolver, l logging.Logger) *LinkService {
	return &LinkService{
		db:          db,
		repomanager: m,
		identity:    identity,
		logger:      l.With("module", "link_service"),
	}
}

// Post creates a link owned by the caller. Anonymous callers get
// common.ErrUnauthenticated before storage is touched.
func (s *LinkService) Post(ctx context.Context, url, description string) (*models.Link, error) {
	userID, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: url is required", common.ErrorValidation)
	}

	link, err := s.repomanager.Links(s.db).Create(ctx, &models.Link{
		URL:         url,
		Description: description,
		PostedByID:  userID,
	})
	if err != nil {
		// a verified token for a user that no longer exists
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, internal(ctx, s.logger, "create link", err)
	}

	s.logger.Info(ctx, "link posted", "user_id", userID, "link_id", link.ID)
	return link, nil
}

// GetByID returns common.ErrLinkNotFound for unknown or malformed ids.
func (s *LinkService) GetByID(ctx context.Context, id string) (*models.Link, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrLinkNotFound
	}

	link, err := s.repomanager.Links(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrLinkNotFound
		}
		return nil, internal(ctx, s.logger, "get link", err)
	}
	return link, nil
}

// Feed returns links newest first. first outside 1..MaxFeedSize is replaced
// by DefaultFeedSize or clamped; a negative skip counts as zero.
func (s *LinkService) Feed(ctx context.Context, first, skip int) ([]*models.Link, error) {
	switch {
	case first <= 0:
		first = DefaultFeedSize
	case first > MaxFeedSize:
		first = MaxFeedSize
	}
	skip = max(skip, 0)

	result, err := s.repomanager.Links(s.db).List(ctx, first, skip)
	if err != nil {
		return nil, internal(ctx, s.logger, "list links", err)
	}
	return result, nil
}
