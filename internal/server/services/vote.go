package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/dbx"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// VoteService records votes. At most one vote per (user, link) is enforced
// by the votes_user_id_link_id_key constraint; the existence check inside the
// same transaction only short-circuits the common case.
type VoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	identity    IdentityResolver
	logger      logging.Logger
}

func NewVoteService(db *sql.DB, m repomanager.RepositoryManager, identity IdentityResolver, l logging.Logger) *VoteService {
	return &VoteService{
		db:          db,
		repomanager: m,
		identity:    identity,
		logger:      l.With("module", "vote_service"),
	}
}

// Vote records the caller's vote for linkID. It fails with
// common.ErrUnauthenticated for anonymous or deleted callers,
// common.ErrLinkNotFound for unknown links and common.ErrDuplicateVote for a
// repeated vote.
func (s *VoteService) Vote(ctx context.Context, linkID string) (*models.Vote, error) {
	userID, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(linkID); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrLinkNotFound, linkID)
	}

	var vote *models.Vote
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Votes(tx)

		exists, err := repo.Exists(ctx, userID, linkID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", common.ErrDuplicateVote, linkID)
		}

		vote, err = repo.Create(ctx, userID, linkID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			return nil, err
		}
		if errors.Is(err, common.ErrDuplicateVote) || errors.Is(err, common.ErrLinkNotFound) {
			s.logger.Info(ctx, "vote rejected", "user_id", userID, "link_id", linkID, "reason", err.Error())
			return nil, err
		}
		return nil, internal(ctx, s.logger, "create vote", err)
	}

	s.logger.Info(ctx, "vote recorded", "user_id", userID, "link_id", linkID)
	return vote, nil
}

// ListByLink returns the votes cast for linkID.
func (s *VoteService) ListByLink(ctx context.Context, linkID string) ([]*models.Vote, error) {
	result, err := s.repomanager.Votes(s.db).ListByLink(ctx, linkID)
	if err != nil {
		return nil, internal(ctx, s.logger, "list votes", err)
	}
	return result, nil
}
