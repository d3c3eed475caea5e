package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/dbx"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/links"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/users"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/votes"
	"github.com/google/uuid"
)

// ---- in-memory store shared by the fake repositories ----

type store struct {
	mu    sync.Mutex
	users map[string]*models.User
	links map[string]*models.Link
	votes map[string]*models.Vote

	calls int // repository calls, to assert nothing touched storage
	err   error
}

func newStore() *store {
	return &store{
		users: map[string]*models.User{},
		links: map[string]*models.Link{},
		votes: map[string]*models.Vote{},
	}
}

func (s *store) enter() (unlock func(), err error) {
	s.mu.Lock()
	s.calls++
	return s.mu.Unlock, s.err
}

type fakeUsers struct{ s *store }

func (f fakeUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	for _, existing := range f.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateUser
		}
	}
	cp := *u
	cp.ID = uuid.NewString()
	cp.CreatedAt = time.Now()
	f.s.users[cp.ID] = &cp
	return &cp, nil
}

func (f fakeUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	for _, u := range f.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	if u, ok := f.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

type fakeLinks struct{ s *store }

func (f fakeLinks) Create(ctx context.Context, l *models.Link) (*models.Link, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	if _, ok := f.s.users[l.PostedByID]; !ok {
		return nil, fmt.Errorf("posting user: %w", common.ErrorNotFound)
	}
	cp := *l
	cp.ID = uuid.NewString()
	cp.CreatedAt = time.Now()
	f.s.links[cp.ID] = &cp
	return &cp, nil
}

func (f fakeLinks) GetByID(ctx context.Context, id string) (*models.Link, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	if l, ok := f.s.links[id]; ok {
		return l, nil
	}
	return nil, common.ErrorNotFound
}

func (f fakeLinks) List(ctx context.Context, limit, offset int) ([]*models.Link, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	var out []*models.Link
	for _, l := range f.s.links {
		out = append(out, l)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeVotes struct{ s *store }

func (f fakeVotes) Exists(ctx context.Context, userID, linkID string) (bool, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return false, err
	}
	for _, v := range f.s.votes {
		if v.UserID == userID && v.LinkID == linkID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeVotes) Create(ctx context.Context, userID, linkID string) (*models.Vote, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	if _, ok := f.s.links[linkID]; !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrLinkNotFound, linkID)
	}
	for _, v := range f.s.votes {
		if v.UserID == userID && v.LinkID == linkID {
			return nil, fmt.Errorf("%w: %s", common.ErrDuplicateVote, linkID)
		}
	}
	v := &models.Vote{ID: uuid.NewString(), UserID: userID, LinkID: linkID, CreatedAt: time.Now()}
	f.s.votes[v.ID] = v
	return v, nil
}

func (f fakeVotes) ListByLink(ctx context.Context, linkID string) ([]*models.Vote, error) {
	unlock, err := f.s.enter()
	defer unlock()
	if err != nil {
		return nil, err
	}
	var out []*models.Vote
	for _, v := range f.s.votes {
		if v.LinkID == linkID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeRepoManager struct{ s *store }

func (m fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m fakeRepoManager) Users(dbx.DBTX) users.Repository              { return fakeUsers{m.s} }
func (m fakeRepoManager) Links(dbx.DBTX) links.Repository              { return fakeLinks{m.s} }
func (m fakeRepoManager) Votes(dbx.DBTX) votes.Repository              { return fakeVotes{m.s} }

// ---- helpers ----

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
