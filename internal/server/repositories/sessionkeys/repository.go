package sessionkeys

import (
	"context"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.SessionKeysBundle) error
	ListByUser(ctx context.Context, userID string) ([]*models.SessionKeysBundle, error)
	GetForUpdate(ctx context.Context, userID, id string) (*models.SessionKeysBundle, error)
	Update(ctx context.Context, b *models.SessionKeysBundle, expectedModified time.Time) error
	Delete(ctx context.Context, userID, id string) error
}
