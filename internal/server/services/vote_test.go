package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hackernews/internal/common"
	"github.com/dmitrijs2005/hackernews/internal/logging"
	"github.com/dmitrijs2005/hackernews/internal/server/auth"
	"github.com/dmitrijs2005/hackernews/internal/server/models"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLink(st *store) string {
	st.users[alice.ID] = &alice
	id := uuid.NewString()
	st.links[id] = &models.Link{ID: id, URL: "https://go.dev", PostedByID: alice.ID}
	return id
}

func TestVote_OncePerUser(t *testing.T) {
	db, mock := newSQLMockDB(t)
	st := newStore()
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, fakeRepoManager{st}, auth.NewIdentity(tokens), logging.Nop())

	linkID := seedLink(st)
	tokA, _ := tokens.Issue("user-a")
	tokB, _ := tokens.Issue("user-b")
	ctxA := auth.WithBearerToken(context.Background(), tokA)
	ctxB := auth.WithBearerToken(context.Background(), tokB)

	mock.ExpectBegin()
	mock.ExpectCommit()
	v, err := s.Vote(ctxA, linkID)
	require.NoError(t, err)
	assert.Equal(t, "user-a", v.UserID)
	assert.Equal(t, linkID, v.LinkID)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = s.Vote(ctxA, linkID)
	require.ErrorIs(t, err, common.ErrDuplicateVote)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = s.Vote(ctxB, linkID)
	require.NoError(t, err)

	assert.Len(t, st.votes, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVote_Unauthenticated(t *testing.T) {
	db, mock := newSQLMockDB(t)
	st := newStore()
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, fakeRepoManager{st}, auth.NewIdentity(tokens), logging.Nop())
	linkID := seedLink(st)

	_, err := s.Vote(context.Background(), linkID)
	require.ErrorIs(t, err, common.ErrUnauthenticated)

	other, _ := auth.NewTokenService([]byte("other"), time.Hour).Issue("user-a")
	_, err = s.Vote(auth.WithBearerToken(context.Background(), other), linkID)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	assert.Zero(t, st.calls)
	require.NoError(t, mock.ExpectationsWereMet(), "no transaction may be opened")
}

func TestVote_UnknownLink(t *testing.T) {
	db, mock := newSQLMockDB(t)
	st := newStore()
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, fakeRepoManager{st}, auth.NewIdentity(tokens), logging.Nop())
	tok, _ := tokens.Issue("user-a")
	ctx := auth.WithBearerToken(context.Background(), tok)

	_, err := s.Vote(ctx, "not-a-uuid")
	require.ErrorIs(t, err, common.ErrLinkNotFound)
	assert.Zero(t, st.calls)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = s.Vote(ctx, uuid.NewString())
	require.ErrorIs(t, err, common.ErrLinkNotFound)
	assert.Empty(t, st.votes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVote_InternalErrors(t *testing.T) {
	db, mock := newSQLMockDB(t)
	st := newStore()
	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, fakeRepoManager{st}, auth.NewIdentity(tokens), logging.Nop())
	linkID := seedLink(st)
	tok, _ := tokens.Issue("user-a")
	ctx := auth.WithBearerToken(context.Background(), tok)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))
	_, err := s.Vote(ctx, linkID)
	require.ErrorIs(t, err, common.ErrorInternal)

	st.err = errors.New("db down")
	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = s.Vote(ctx, linkID)
	require.ErrorIs(t, err, common.ErrorInternal)

	require.NoError(t, mock.ExpectationsWereMet())
}

// The existence check can pass for two concurrent requests; the unique
// constraint on insert still rejects the second one.
func TestVote_ConstraintIsTheGuard(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, repomanager.NewPostgresRepositoryManager(), auth.NewIdentity(tokens), logging.Nop())
	tok, _ := tokens.Issue("user-a")
	ctx := auth.WithBearerToken(context.Background(), tok)
	linkID := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("user-a", linkID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO votes`).WithArgs("user-a", linkID).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "votes_user_id_link_id_key"})
	mock.ExpectRollback()

	_, err = s.Vote(ctx, linkID)
	require.ErrorIs(t, err, common.ErrDuplicateVote)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVote_DeletedUserIsUnauthenticated(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := auth.NewTokenService([]byte("k"), time.Hour)
	s := NewVoteService(db, repomanager.NewPostgresRepositoryManager(), auth.NewIdentity(tokens), logging.Nop())
	tok, _ := tokens.Issue("gone")
	ctx := auth.WithBearerToken(context.Background(), tok)
	linkID := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("gone", linkID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO votes`).WithArgs("gone", linkID).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "votes_user_id_fkey"})
	mock.ExpectRollback()

	_, err = s.Vote(ctx, linkID)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.False(t, errors.Is(err, common.ErrorInternal))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByLink(t *testing.T) {
	st := newStore()
	s := NewVoteService(nil, fakeRepoManager{st}, auth.NewIdentity(auth.NewTokenService([]byte("k"), 0)), logging.Nop())
	linkID := seedLink(st)
	st.votes["v1"] = &models.Vote{ID: "v1", UserID: "u1", LinkID: linkID}
	st.votes["v2"] = &models.Vote{ID: "v2", UserID: "u2", LinkID: uuid.NewString()}

	got, err := s.ListByLink(context.Background(), linkID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v1", got[0].ID)

	st.err = errors.New("db down")
	_, err = s.ListByLink(context.Background(), linkID)
	require.ErrorIs(t, err, common.ErrorInternal)
}
