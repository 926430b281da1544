package resourcetypes

import (
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs f and returns the error it panicked with, if any.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		err = e
	}()
	f()
	return nil
}

func TestResourceTypeAfterUpdate(t *testing.T) {
	g := NewAdjacencyGraph()

	tests := []struct {
		name   string
		slug   string
		action UpdateAction
		want   contenttypes.ContentType
	}{
		{"self loop", "password-and-description", EditPassword, contenttypes.PasswordAndDescription},
		{"add totp", "password-and-description", AddTotp, contenttypes.PasswordDescriptionTotp},
		{"remove totp", "password-description-totp", RemoveTotp, contenttypes.PasswordAndDescription},
		{"edit totp", "password-description-totp", EditTotp, contenttypes.PasswordDescriptionTotp},
		{"v5 add totp", "v5-default", AddTotp, contenttypes.V5DefaultWithTotp},
		{"v5 remove totp", "v5-default-with-totp", RemoveTotp, contenttypes.V5Default},
		{"simple password", "password-string", EditPassword, contenttypes.PasswordString},
		{"v5 simple password", "v5-password-string", EditPassword, contenttypes.V5PasswordString},
		{"standalone totp", "totp", EditTotp, contenttypes.Totp},
		{"v5 standalone totp", "v5-totp-standalone", EditTotp, contenttypes.V5TotpStandalone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ResourceTypeAfterUpdate(tt.slug, tt.action))
			assert.True(t, g.HasUpdateAction(tt.slug, tt.action))
		})
	}
}

func TestResourceTypeAfterUpdate_MissingAction(t *testing.T) {
	g := NewAdjacencyGraph()

	tests := []struct {
		slug   string
		action UpdateAction
	}{
		{"totp", AddTotp},
		{"password-description-totp", AddTotp},
		{"password-and-description", RemoveTotp},
		{"password-string", EditTotp},
		{"v5-totp-standalone", EditPassword},
	}

	for _, tt := range tests {
		t.Run(tt.slug+"/"+tt.action.String(), func(t *testing.T) {
			err := recoverErr(t, func() { g.ResourceTypeAfterUpdate(tt.slug, tt.action) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoSuchElement))
			assert.False(t, g.HasUpdateAction(tt.slug, tt.action))
		})
	}
}

func TestUpdateActionsMetadata_UnknownSlug(t *testing.T) {
	g := NewAdjacencyGraph()

	err := recoverErr(t, func() { g.UpdateActionsMetadata("not-a-real-slug") })
	require.ErrorIs(t, err, ErrNoSuchElement)

	err = recoverErr(t, func() { g.ResourceTypeAfterUpdate("not-a-real-slug", EditPassword) })
	require.ErrorIs(t, err, ErrNoSuchElement)

	assert.False(t, g.HasUpdateAction("not-a-real-slug", EditPassword))
}

func TestUpdateActionsMetadata_Order(t *testing.T) {
	g := NewAdjacencyGraph()

	got := g.UpdateActionsMetadata("v5-default-with-totp")
	want := []UpdateActionMetadata{
		{EditPassword, contenttypes.V5DefaultWithTotp},
		{EditTotp, contenttypes.V5DefaultWithTotp},
		{RemoveTotp, contenttypes.V5Default},
	}
	assert.Equal(t, want, got)
}

func TestGraphShape(t *testing.T) {
	g := NewAdjacencyGraph()

	vertices := g.Vertices()
	require.Len(t, vertices, len(contenttypes.All))

	edges := 0
	incoming := map[contenttypes.ContentType]int{}
	for _, v := range vertices {
		for _, m := range g.UpdateActionsMetadata(v.ContentType.Slug()) {
			edges++
			if m.NewResourceType != v.ContentType {
				incoming[m.NewResourceType]++
			}
		}
	}
	assert.Equal(t, 14, edges)

	// standalone totp types are only reachable from themselves
	assert.Zero(t, incoming[contenttypes.Totp])
	assert.Zero(t, incoming[contenttypes.V5TotpStandalone])
}

func TestVerticesIsCopy(t *testing.T) {
	g := NewAdjacencyGraph()
	v := g.Vertices()
	v[0] = Vertex{contenttypes.Totp}
	assert.Equal(t, contenttypes.PasswordString, g.Vertices()[0].ContentType)
}

func TestConcurrentReads(t *testing.T) {
	g := NewAdjacencyGraph()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_ = g.UpdateActionsMetadata(v.ContentType.Slug())
			}
		}()
	}
	wg.Wait()
}

func TestParseUpdateAction(t *testing.T) {
	tests := []struct {
		in   string
		want UpdateAction
	}{
		{"EDIT_PASSWORD", EditPassword},
		{"add-totp", AddTotp},
		{" edit_totp ", EditTotp},
		{"Remove_Totp", RemoveTotp},
	}
	for _, tt := range tests {
		got, err := ParseUpdateAction(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseUpdateAction("rename")
	require.ErrorIs(t, err, ErrUnknownUpdateAction)
}
