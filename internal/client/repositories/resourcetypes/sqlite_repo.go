package resourcetypes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, t *models.ResourceType) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO resource_types (id, slug, name) VALUES (?, ?, ?)`,
		t.ID, t.Slug, t.Name)
	if err != nil {
		return fmt.Errorf("insert resource type %q: %w", t.Slug, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.ResourceType, error) {
	return r.getOne(ctx, `SELECT id, slug, name FROM resource_types WHERE id = ?`, id)
}

func (r *SQLiteRepository) GetBySlug(ctx context.Context, slug string) (*models.ResourceType, error) {
	return r.getOne(ctx, `SELECT id, slug, name FROM resource_types WHERE slug = ?`, slug)
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg string) (*models.ResourceType, error) {
	var t models.ResourceType
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&t.ID, &t.Slug, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get resource type %q: %w", arg, err)
	}
	return &t, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.ResourceType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, slug, name FROM resource_types ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("list resource types: %w", err)
	}
	defer rows.Close()

	var out []*models.ResourceType
	for rows.Next() {
		var t models.ResourceType
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name); err != nil {
			return nil, fmt.Errorf("scan resource type row: %w", err)
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource type rows: %w", err)
	}
	return out, nil
}
