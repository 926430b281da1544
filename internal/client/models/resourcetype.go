package models

// ResourceType is a row of the local resource type table. Slug ties it to
// a content type of the update graph.
type ResourceType struct {
	ID   string
	Slug string
	Name string
}
