package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/client/models"
	"github.com/dmitrijs2005/teamkeeper/internal/client/repositories/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	rt "github.com/dmitrijs2005/teamkeeper/internal/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes/redesigned"
	"github.com/google/uuid"
)

// ErrActionNotSupported is returned when a resource type has no transition
// for the requested update action.
var ErrActionNotSupported = errors.New("update action not supported for resource type")

var resourceTypeNames = map[contenttypes.ContentType]string{
	contenttypes.PasswordString:          "Simple password (legacy)",
	contenttypes.PasswordAndDescription:  "Password with description",
	contenttypes.Totp:                    "Standalone TOTP (legacy)",
	contenttypes.PasswordDescriptionTotp: "Password, description and TOTP",
	contenttypes.V5TotpStandalone:        "Standalone TOTP",
	contenttypes.V5Default:               "Default resource",
	contenttypes.V5DefaultWithTotp:       "Default resource with TOTP",
	contenttypes.V5PasswordString:        "Simple password",
}

// ResourceTypesService answers questions about resource types against the
// local table. graph drives secret updates, edits drives the redesigned
// resource form.
type ResourceTypesService struct {
	repo   resourcetypes.Repository
	graph  *rt.AdjacencyGraph
	edits  *redesigned.Graph
	logger logging.Logger
}

func NewResourceTypesService(repo resourcetypes.Repository, g *rt.AdjacencyGraph, edits *redesigned.Graph, l logging.Logger) *ResourceTypesService {
	return &ResourceTypesService{repo: repo, graph: g, edits: edits, logger: l}
}

// Seed inserts every supported content type missing from the table and
// returns how many rows were added.
func (s *ResourceTypesService) Seed(ctx context.Context) (int, error) {
	added := 0
	for _, ct := range contenttypes.All {
		_, err := s.repo.GetBySlug(ctx, ct.Slug())
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return added, err
		}

		row := &models.ResourceType{ID: uuid.NewString(), Slug: ct.Slug(), Name: resourceTypeNames[ct]}
		if err := s.repo.Insert(ctx, row); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.logger.Info(ctx, "resource types seeded", "added", added)
	}
	return added, nil
}

func (s *ResourceTypesService) List(ctx context.Context) ([]*models.ResourceType, error) {
	return s.repo.List(ctx)
}

// Find resolves a resource type by id, falling back to slug.
func (s *ResourceTypesService) Find(ctx context.Context, idOrSlug string) (*models.ResourceType, error) {
	t, err := s.repo.Get(ctx, idOrSlug)
	if errors.Is(err, common.ErrorNotFound) {
		return s.repo.GetBySlug(ctx, idOrSlug)
	}
	return t, err
}

// Actions lists the update actions available for a resource type slug.
func (s *ResourceTypesService) Actions(slug string) ([]rt.UpdateActionMetadata, error) {
	if _, err := contenttypes.FromSlug(slug); err != nil {
		return nil, err
	}
	return s.graph.UpdateActionsMetadata(slug), nil
}

// TypeAfterUpdate returns the resource type a resource of type typeID has
// after action is applied to it.
func (s *ResourceTypesService) TypeAfterUpdate(ctx context.Context, typeID string, action rt.UpdateAction) (*models.ResourceType, error) {
	current, err := s.Find(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("resource type %q: %w", typeID, err)
	}

	if !s.graph.HasUpdateAction(current.Slug, action) {
		return nil, fmt.Errorf("%w: %s on %s", ErrActionNotSupported, action, current.Slug)
	}

	return s.bySlug(ctx, s.graph.ResourceTypeAfterUpdate(current.Slug, action))
}

// EditActions lists the redesigned form edits available for a resource type slug.
func (s *ResourceTypesService) EditActions(slug string) ([]redesigned.UpdateActionMetadata, error) {
	if _, err := contenttypes.FromSlug(slug); err != nil {
		return nil, err
	}
	return s.edits.UpdateActionsMetadata(slug), nil
}

// TypeAfterEdit is TypeAfterUpdate for the redesigned form edits.
func (s *ResourceTypesService) TypeAfterEdit(ctx context.Context, typeID string, action redesigned.UpdateAction) (*models.ResourceType, error) {
	current, err := s.Find(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("resource type %q: %w", typeID, err)
	}

	if !s.edits.HasUpdateAction(current.Slug, action) {
		return nil, fmt.Errorf("%w: %s on %s", ErrActionNotSupported, action, current.Slug)
	}

	return s.bySlug(ctx, s.edits.ResourceTypeAfterUpdate(current.Slug, action))
}

func (s *ResourceTypesService) bySlug(ctx context.Context, ct contenttypes.ContentType) (*models.ResourceType, error) {
	t, err := s.repo.GetBySlug(ctx, ct.Slug())
	if err != nil {
		return nil, fmt.Errorf("resource type %q: %w", ct.Slug(), err)
	}
	return t, nil
}
