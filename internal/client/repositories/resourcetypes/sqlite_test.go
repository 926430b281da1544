package resourcetypes

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/teamkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "."))
	return db
}

func TestInsertAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	rt := &models.ResourceType{ID: "id-1", Slug: "v5-default", Name: "Default"}
	require.NoError(t, r.Insert(ctx, rt))

	got, err := r.Get(ctx, "id-1")
	require.NoError(t, err)
	require.Equal(t, rt, got)

	got, err = r.GetBySlug(ctx, "v5-default")
	require.NoError(t, err)
	require.Equal(t, rt, got)
}

func TestGet_Missing_ReturnsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Get(ctx, "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetBySlug(ctx, "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInsert_DuplicateSlugFails(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, &models.ResourceType{ID: "a", Slug: "totp", Name: "TOTP"}))
	err := r.Insert(ctx, &models.ResourceType{ID: "b", Slug: "totp", Name: "TOTP"})
	require.ErrorContains(t, err, `insert resource type "totp"`)
}

func TestList_OrderedBySlug(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, rt := range []*models.ResourceType{
		{ID: "1", Slug: "v5-default", Name: "Default"},
		{ID: "2", Slug: "password-string", Name: "Simple"},
		{ID: "3", Slug: "totp", Name: "TOTP"},
	} {
		require.NoError(t, r.Insert(ctx, rt))
	}

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "password-string", list[0].Slug)
	require.Equal(t, "totp", list[1].Slug)
	require.Equal(t, "v5-default", list[2].Slug)
}

func TestList_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}
