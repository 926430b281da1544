package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/teamkeeper/internal/server/repositories/sessionkeys"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stubGooseUp(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
}

func TestSessionKeys_BoundToGivenDBTX(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()

	r := m.SessionKeys(db)
	require.IsType(t, &sessionkeys.PostgresRepository{}, r)
}

func TestRunMigrations_UsesEmbeddedRoot(t *testing.T) {
	db := newDB(t)

	var gotDB *sql.DB
	stubGooseUp(t, func(_ context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDB = d
		if dir != "." {
			return errors.New("unexpected dir " + dir)
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	})

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	require.Same(t, db, gotDB)
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)
	boom := errors.New("boom")
	stubGooseUp(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom })

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	require.ErrorIs(t, err, boom)
}

func TestOpenPostgres_UnreachableFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenPostgres(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
}
