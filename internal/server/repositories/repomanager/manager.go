// Package repomanager vends repository implementations bound to a database
// handle or transaction, and runs schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hackernews/internal/dbx"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/links"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/users"
	"github.com/dmitrijs2005/hackernews/internal/server/repositories/votes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Links(db dbx.DBTX) links.Repository
	Votes(db dbx.DBTX) votes.Repository
}
