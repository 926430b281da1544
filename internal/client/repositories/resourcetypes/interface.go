// Package resourcetypes persists the resource types known to the client.
package resourcetypes

import (
	"context"

	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
)

// Repository stores resource type rows. Get and GetBySlug return
// common.ErrorNotFound for missing rows.
type Repository interface {
	Insert(ctx context.Context, t *models.ResourceType) error
	Get(ctx context.Context, id string) (*models.ResourceType, error)
	GetBySlug(ctx context.Context, slug string) (*models.ResourceType, error)
	List(ctx context.Context) ([]*models.ResourceType, error)
}
