// Package resourcetypes answers which resource type a resource ends up with
// after an update. Resource types are the vertices of a small fixed directed
// graph whose edges are labelled with update actions.
package resourcetypes

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
)

// ErrNoSuchElement is carried by the panics raised when a caller asks the
// graph about a slug or action it does not know.
var ErrNoSuchElement = errors.New("no such element")

// Vertex is a resource type in the graph. Two vertices are equal when their
// content types share a slug.
type Vertex struct {
	ContentType contenttypes.ContentType
}

// Edge is a transition from Source to Destination performed by UpdateAction.
type Edge struct {
	Source       Vertex
	Destination  Vertex
	UpdateAction UpdateAction
}

// UpdateActionMetadata tells what resource type an action leads to.
type UpdateActionMetadata struct {
	Action          UpdateAction
	NewResourceType contenttypes.ContentType
}

// AdjacencyGraph maps each resource type to its outgoing edges.
// It is immutable after NewAdjacencyGraph returns and safe for concurrent use.
type AdjacencyGraph struct {
	vertices  []Vertex
	adjacency map[string][]Edge
}

// NewAdjacencyGraph builds the resource type update graph.
func NewAdjacencyGraph() *AdjacencyGraph {
	// vertices (resource types)
	simplePassword := Vertex{contenttypes.PasswordString}
	passwordAndDescription := Vertex{contenttypes.PasswordAndDescription}
	totp := Vertex{contenttypes.Totp}
	passwordDescriptionTotp := Vertex{contenttypes.PasswordDescriptionTotp}
	v5PasswordString := Vertex{contenttypes.V5PasswordString}
	v5Default := Vertex{contenttypes.V5Default}
	v5Totp := Vertex{contenttypes.V5TotpStandalone}
	v5DefaultWithTotp := Vertex{contenttypes.V5DefaultWithTotp}

	g := &AdjacencyGraph{adjacency: make(map[string][]Edge)}

	// edges (actions)
	g.add(simplePassword,
		Edge{simplePassword, simplePassword, EditPassword},
	)
	g.add(v5PasswordString,
		Edge{v5PasswordString, v5PasswordString, EditPassword},
	)

	g.add(passwordAndDescription,
		Edge{passwordAndDescription, passwordAndDescription, EditPassword},
		Edge{passwordAndDescription, passwordDescriptionTotp, AddTotp},
	)
	g.add(v5Default,
		Edge{v5Default, v5Default, EditPassword},
		Edge{v5Default, v5DefaultWithTotp, AddTotp},
	)

	g.add(passwordDescriptionTotp,
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, EditPassword},
		Edge{passwordDescriptionTotp, passwordDescriptionTotp, EditTotp},
		Edge{passwordDescriptionTotp, passwordAndDescription, RemoveTotp},
	)
	g.add(v5DefaultWithTotp,
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, EditPassword},
		Edge{v5DefaultWithTotp, v5DefaultWithTotp, EditTotp},
		Edge{v5DefaultWithTotp, v5Default, RemoveTotp},
	)

	// standalone TOTP types are never reached from password types
	g.add(totp,
		Edge{totp, totp, EditTotp},
	)
	g.add(v5Totp,
		Edge{v5Totp, v5Totp, EditTotp},
	)

	return g
}

func (g *AdjacencyGraph) add(source Vertex, edges ...Edge) {
	g.vertices = append(g.vertices, source)
	g.adjacency[source.ContentType.Slug()] = edges
}

// Vertices returns the resource types known to the graph in construction order.
func (g *AdjacencyGraph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// UpdateActionsMetadata lists the actions that can be performed on a
// resource of the given type and the type each of them leads to.
//
// It panics with ErrNoSuchElement when the slug is not a vertex of the graph:
// an unsupported resource type must never reach this point.
func (g *AdjacencyGraph) UpdateActionsMetadata(resourceTypeSlug string) []UpdateActionMetadata {
	edges, ok := g.adjacency[resourceTypeSlug]
	if !ok {
		panic(fmt.Errorf("%w: resource type %q is not in the update graph", ErrNoSuchElement, resourceTypeSlug))
	}

	out := make([]UpdateActionMetadata, 0, len(edges))
	for _, e := range edges {
		out = append(out, UpdateActionMetadata{Action: e.UpdateAction, NewResourceType: e.Destination.ContentType})
	}
	return out
}

// ResourceTypeAfterUpdate returns the resource type a resource of type
// currentResourceTypeSlug has after update is applied.
//
// It panics with ErrNoSuchElement when the slug is unknown or the type has
// no edge for update (e.g. AddTotp on a type that already has a TOTP).
func (g *AdjacencyGraph) ResourceTypeAfterUpdate(currentResourceTypeSlug string, update UpdateAction) contenttypes.ContentType {
	for _, m := range g.UpdateActionsMetadata(currentResourceTypeSlug) {
		if m.Action == update {
			return m.NewResourceType
		}
	}
	panic(fmt.Errorf("%w: resource type %q has no %s transition", ErrNoSuchElement, currentResourceTypeSlug, update))
}

// HasUpdateAction reports whether ResourceTypeAfterUpdate would succeed.
// Use it where slug or action come from outside the program.
func (g *AdjacencyGraph) HasUpdateAction(resourceTypeSlug string, update UpdateAction) bool {
	for _, e := range g.adjacency[resourceTypeSlug] {
		if e.UpdateAction == update {
			return true
		}
	}
	return false
}
