package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	ListSessionKeys(ctx context.Context) ([]*models.SessionKeysBundle, error)
	CreateSessionKeys(ctx context.Context, data string) (*models.SessionKeysBundle, error)
	UpdateSessionKeys(ctx context.Context, id string, modified time.Time, data string) (*models.SessionKeysBundle, error)
	DeleteSessionKeys(ctx context.Context, id string) error
}
