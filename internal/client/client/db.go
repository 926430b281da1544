package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/teamkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/teamkeeper/internal/client/repositories/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB            *sql.DB
	Metadata      metadata.Repository
	ResourceTypes resourcetypes.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite database at path, creating its directory
// if needed, and migrates it.
func InitDatabase(ctx context.Context, path string) (*Repositories, error) {
	path, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	repos := &Repositories{
		DB:            db,
		Metadata:      metadata.NewSQLiteRepository(db),
		ResourceTypes: resourcetypes.NewSQLiteRepository(db),
	}
	return repos, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
