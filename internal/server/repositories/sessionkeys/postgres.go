// Package sessionkeys provides the PostgreSQL-backed repository for
// encrypted metadata session keys bundles.
package sessionkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/dbx"
	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
)

// PostgresRepository implements bundle storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new bundle.
func (r *PostgresRepository) Create(ctx context.Context, b *models.SessionKeysBundle) error {
	query := `INSERT INTO metadata_session_keys (id, user_id, data, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, b.ID, b.UserID, b.Data, b.CreatedAt, b.ModifiedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns every bundle of userID, most recently modified first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.SessionKeysBundle, error) {
	query := `SELECT id, user_id, data, created_at, modified_at FROM metadata_session_keys
		WHERE user_id=$1 ORDER BY modified_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select session keys: %w", err)
	}
	defer rows.Close()

	var result []*models.SessionKeysBundle
	for rows.Next() {
		var item models.SessionKeysBundle
		if err := rows.Scan(&item.ID, &item.UserID, &item.Data, &item.CreatedAt, &item.ModifiedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetForUpdate loads a bundle of userID and locks its row until the
// surrounding transaction ends. Unknown bundles yield common.ErrorNotFound.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID, id string) (*models.SessionKeysBundle, error) {
	query := `SELECT id, user_id, data, created_at, modified_at FROM metadata_session_keys
		WHERE id=$1 AND user_id=$2 FOR UPDATE`
	var item models.SessionKeysBundle
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&item.ID, &item.UserID, &item.Data, &item.CreatedAt, &item.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &item, nil
}

// Update replaces the data of a bundle provided it was not modified since
// expectedModified. Otherwise common.ErrVersionConflict is returned.
func (r *PostgresRepository) Update(ctx context.Context, b *models.SessionKeysBundle, expectedModified time.Time) error {
	query := `UPDATE metadata_session_keys SET data=$1, modified_at=$2
		WHERE id=$3 AND user_id=$4 AND modified_at=$5`
	res, err := r.db.ExecContext(ctx, query, b.Data, b.ModifiedAt, b.ID, b.UserID, expectedModified)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes a bundle of userID. Unknown bundles yield common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM metadata_session_keys WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
