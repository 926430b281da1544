// Package redesigned holds the resource type update graph used by the
// redesigned resource form. Its edges are labelled with form edits, and
// standalone TOTP types can grow into full resources and back.
package redesigned

import (
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes"
)

type Edge struct {
	Source       resourcetypes.Vertex
	Destination  resourcetypes.Vertex
	UpdateAction UpdateAction
}

// UpdateActionMetadata tells what resource type an edit leads to.
type UpdateActionMetadata struct {
	Action          UpdateAction
	NewResourceType contenttypes.ContentType
}

// Graph is immutable after NewGraph returns and safe for concurrent use.
type Graph struct {
	vertices  []resourcetypes.Vertex
	adjacency map[string][]Edge
}

// NewGraph builds the redesigned update graph.
func NewGraph() *Graph {
	// vertices (resource types)
	simplePassword := resourcetypes.Vertex{ContentType: contenttypes.PasswordString}
	passwordAndDescription := resourcetypes.Vertex{ContentType: contenttypes.PasswordAndDescription}
	totp := resourcetypes.Vertex{ContentType: contenttypes.Totp}
	passwordDescriptionTotp := resourcetypes.Vertex{ContentType: contenttypes.PasswordDescriptionTotp}
	v5PasswordString := resourcetypes.Vertex{ContentType: contenttypes.V5PasswordString}
	v5Default := resourcetypes.Vertex{ContentType: contenttypes.V5Default}
	v5Totp := resourcetypes.Vertex{ContentType: contenttypes.V5TotpStandalone}
	v5DefaultWithTotp := resourcetypes.Vertex{ContentType: contenttypes.V5DefaultWithTotp}

	g := &Graph{adjacency: make(map[string][]Edge)}

	// edges (actions)
	g.add(simplePassword,
		Edge{simplePassword, simplePassword, EditMetadata},
		Edge{simplePassword, simplePassword, AddPassword},
		Edge{simplePassword, simplePassword, RemovePassword},
		Edge{simplePassword, simplePassword, AddMetadataDescription},
		Edge{simplePassword, simplePassword, RemoveMetadataDescription},
	)
	g.add(v5PasswordString,
		Edge{v5PasswordString, v5PasswordString, EditMetadata},
		Edge{v5PasswordString, v5PasswordString, AddPassword},
		Edge{v5PasswordString, v5PasswordString, RemovePassword},
		Edge{v5PasswordString, v5PasswordString, AddMetadataDescription},
		Edge{v5PasswordString, v5PasswordString, RemoveMetadataDescription},
	)

	g.add(passwordAndDescription,
		Edge{passwordAndDescription, passwordAndDescription, EditMetadata},
		Edge{passwordAndDescription, passwordAndDescription, AddNote},
		Edge{passwordAndDescription, passwordAndDescription, RemoveNote},
		Edge{passwordAndDescription, passwordAndDescription, AddPassword},
		Edge{passwordAndDescription, passwordAndDescription, RemovePassword},
		Edge{passwordAndDescription, passwordDescriptionTotp, AddTotp},
	)
	g.add(v5Default,
		Edge{v5Default, v5Default, EditMetadata},
		Edge{v5Default, v5Default, AddNote},
		Edge{v5Default, v5Default, RemoveNote},
		Edge{v5Default, v5Default, AddPassword},
		Edge{v5Default, v5Default, RemovePassword},
		Edge{v5Default, v5DefaultWithTotp, AddTotp},
	)

	g.add(passwordDescriptionTotp,
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, EditMetadata},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, AddNote},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, RemoveNote},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, AddTotp},
		Edge{passwordDescriptionTotp, passwordAndDescription, RemoveTotp},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, AddPassword},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, RemovePassword},
		Edge{passwordDescriptionTotp, totp, RemovePasswordAndNote},
	)
	g.add(v5DefaultWithTotp,
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, EditMetadata},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, AddNote},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, RemoveNote},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, AddTotp},
		Edge{v5DefaultWithTotp, v5Default, RemoveTotp},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, AddPassword},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, RemovePassword},
		Edge{v5DefaultWithTotp, v5Totp, RemovePasswordAndNote},
	)

	g.add(totp,
		Edge{totp, totp, EditMetadata},
		Edge{totp, totp, AddTotp},
		Edge{totp, totp, RemoveTotp},
		Edge{totp, passwordDescriptionTotp, AddNote},
		Edge{totp, passwordDescriptionTotp, AddPassword},
	)
	g.add(v5Totp,
		Edge{v5Totp, v5Totp, EditMetadata},
		Edge{v5Totp, v5Totp, AddTotp},
		Edge{v5Totp, v5Totp, RemoveTotp},
		Edge{v5Totp, v5DefaultWithTotp, AddNote},
		Edge{v5Totp, v5DefaultWithTotp, AddPassword},
	)

	return g
}

func (g *Graph) add(source resourcetypes.Vertex, edges ...Edge) {
	g.vertices = append(g.vertices, source)
	g.adjacency[source.ContentType.Slug()] = edges
}

// Vertices returns the resource types known to the graph in construction order.
func (g *Graph) Vertices() []resourcetypes.Vertex {
	out := make([]resourcetypes.Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// UpdateActionsMetadata lists the edits available for a resource of the
// given type. It panics with resourcetypes.ErrNoSuchElement for a slug that
// is not a vertex.
func (g *Graph) UpdateActionsMetadata(resourceTypeSlug string) []UpdateActionMetadata {
	edges, ok := g.adjacency[resourceTypeSlug]
	if !ok {
		panic(fmt.Errorf("%w: resource type %q is not in the update graph", resourcetypes.ErrNoSuchElement, resourceTypeSlug))
	}

	out := make([]UpdateActionMetadata, 0, len(edges))
	for _, e := range edges {
		out = append(out, UpdateActionMetadata{Action: e.UpdateAction, NewResourceType: e.Destination.ContentType})
	}
	return out
}

// ResourceTypeAfterUpdate returns the resource type reached from
// currentResourceTypeSlug by update. Unknown slugs and missing edges panic
// with resourcetypes.ErrNoSuchElement.
func (g *Graph) ResourceTypeAfterUpdate(currentResourceTypeSlug string, update UpdateAction) contenttypes.ContentType {
	for _, m := range g.UpdateActionsMetadata(currentResourceTypeSlug) {
		if m.Action == update {
			return m.NewResourceType
		}
	}
	panic(fmt.Errorf("%w: resource type %q has no %s transition", resourcetypes.ErrNoSuchElement, currentResourceTypeSlug, update))
}

// HasUpdateAction reports whether ResourceTypeAfterUpdate would succeed.
func (g *Graph) HasUpdateAction(resourceTypeSlug string, update UpdateAction) bool {
	for _, e := range g.adjacency[resourceTypeSlug] {
		if e.UpdateAction == update {
			return true
		}
	}
	return false
}
