// Package services contains server-side business logic. This file implements
// SessionKeysService, which stores the encrypted session keys bundles of a
// user and guards updates with optimistic concurrency on the modified date.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/dbx"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	"github.com/dmitrijs2005/teamkeeper/internal/server/archive"
	"github.com/dmitrijs2005/teamkeeper/internal/server/models"
	"github.com/dmitrijs2005/teamkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type SessionKeysService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archiver    archive.Archiver
	logger      logging.Logger
	now         func() time.Time
}

func NewSessionKeysService(db *sql.DB, m repomanager.RepositoryManager, a archive.Archiver, l logging.Logger) *SessionKeysService {
	return &SessionKeysService{
		db:          db,
		repomanager: m,
		archiver:    a,
		logger:      l.With("module", "session_keys_service"),
		now:         time.Now,
	}
}

// timestamp returns the current time at the precision Postgres stores.
func (s *SessionKeysService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// List returns the bundles of userID, most recently modified first.
func (s *SessionKeysService) List(ctx context.Context, userID string) ([]*models.SessionKeysBundle, error) {
	items, err := s.repomanager.SessionKeys(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing session keys: %w", err)
	}
	return items, nil
}

// Create stores a new bundle for userID.
func (s *SessionKeysService) Create(ctx context.Context, userID, data string) (*models.SessionKeysBundle, error) {
	if data == "" {
		return nil, fmt.Errorf("%w: empty bundle data", common.ErrInvalidArgument)
	}

	now := s.timestamp()
	b := &models.SessionKeysBundle{
		ID:         uuid.NewString(),
		UserID:     userID,
		Data:       data,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := s.repomanager.SessionKeys(s.db).Create(ctx, b); err != nil {
		return nil, fmt.Errorf("error creating session keys: %w", err)
	}

	s.logger.Info(ctx, "session keys bundle created", "user_id", userID, "bundle_id", b.ID)
	return b, nil
}

// Update replaces the data of bundle id. expectedModified must match the
// stored modified date, otherwise common.ErrVersionConflict is returned and
// nothing changes. The replaced payload is archived.
func (s *SessionKeysService) Update(ctx context.Context, userID, id string, expectedModified time.Time, data string) (*models.SessionKeysBundle, error) {
	if data == "" {
		return nil, fmt.Errorf("%w: empty bundle data", common.ErrInvalidArgument)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: bundle id %q", common.ErrInvalidArgument, id)
	}

	var previous, updated *models.SessionKeysBundle
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.SessionKeys(tx)

		current, err := repo.GetForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if !current.ModifiedAt.Equal(expectedModified) {
			return common.ErrVersionConflict
		}

		modified := s.timestamp()
		if !modified.After(current.ModifiedAt) {
			modified = current.ModifiedAt.Add(time.Microsecond)
		}

		next := *current
		next.Data = data
		next.ModifiedAt = modified
		if err := repo.Update(ctx, &next, current.ModifiedAt); err != nil {
			return err
		}

		previous, updated = current, &next
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error updating session keys: %w", err)
	}

	s.archive(ctx, previous)
	s.logger.Info(ctx, "session keys bundle updated", "user_id", userID, "bundle_id", id)
	return updated, nil
}

// Delete removes bundle id of userID, archiving its last payload.
func (s *SessionKeysService) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: bundle id %q", common.ErrInvalidArgument, id)
	}

	var removed *models.SessionKeysBundle
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.SessionKeys(tx)

		current, err := repo.GetForUpdate(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, userID, id); err != nil {
			return err
		}
		removed = current
		return nil
	})
	if err != nil {
		return fmt.Errorf("error deleting session keys: %w", err)
	}

	s.archive(ctx, removed)
	s.logger.Info(ctx, "session keys bundle deleted", "user_id", userID, "bundle_id", id)
	return nil
}

// archive failures never fail the request.
func (s *SessionKeysService) archive(ctx context.Context, b *models.SessionKeysBundle) {
	if err := s.archiver.Archive(ctx, b); err != nil {
		s.logger.Warn(ctx, "archiving session keys bundle failed", "bundle_id", b.ID, "error", err)
	}
}
