// Package dbx holds what the users, links and votes repositories share:
// DBTX lets one repository type run against the pool or inside a
// transaction, and the pgerr helpers turn constraint violations into the
// signup, post and vote errors callers see.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn in one transaction, committing only if fn returns nil. The
// vote service uses it so the duplicate check and the insert see the same
// snapshot:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    votes := repos.Votes(tx)
//	    if exists, err := votes.Exists(ctx, userID, linkID); err != nil || exists {
//	        return err
//	    }
//	    _, err := votes.Create(ctx, userID, linkID)
//	    return err
//	})
//
// A panic in fn rolls back and is re-raised.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}
