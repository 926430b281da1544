package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teamkeeper/internal/dbx"
	"github.com/dmitrijs2005/teamkeeper/internal/server/repositories/sessionkeys"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	SessionKeys(db dbx.DBTX) sessionkeys.Repository
}
