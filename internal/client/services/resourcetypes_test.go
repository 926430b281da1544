package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/teamkeeper/internal/client/repositories/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/dmitrijs2005/teamkeeper/internal/contenttypes"
	"github.com/dmitrijs2005/teamkeeper/internal/logging"
	rt "github.com/dmitrijs2005/teamkeeper/internal/resourcetypes"
	"github.com/dmitrijs2005/teamkeeper/internal/resourcetypes/redesigned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceTypesService(t *testing.T) *ResourceTypesService {
	t.Helper()
	repo := resourcetypes.NewSQLiteRepository(setupDB(t))
	return NewResourceTypesService(repo, rt.NewAdjacencyGraph(), redesigned.NewGraph(), logging.Nop())
}

func TestResourceTypes_Seed_Idempotent(t *testing.T) {
	s := newResourceTypesService(t)
	ctx := context.Background()

	added, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(contenttypes.All), added)

	added, err = s.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(contenttypes.All))
	for _, row := range list {
		assert.NotEmpty(t, row.Name, row.Slug)
	}
}

func TestResourceTypes_TypeAfterUpdate(t *testing.T) {
	s := newResourceTypesService(t)
	ctx := context.Background()
	_, err := s.Seed(ctx)
	require.NoError(t, err)

	current, err := s.Find(ctx, contenttypes.PasswordAndDescription.Slug())
	require.NoError(t, err)

	tests := []struct {
		from   string
		action rt.UpdateAction
		want   contenttypes.ContentType
	}{
		{current.ID, rt.AddTotp, contenttypes.PasswordDescriptionTotp},
		{current.ID, rt.EditPassword, contenttypes.PasswordAndDescription},
		{"v5-default-with-totp", rt.RemoveTotp, contenttypes.V5Default},
		{"v5-totp-standalone", rt.EditTotp, contenttypes.V5TotpStandalone},
	}
	for _, tt := range tests {
		t.Run(tt.from+"/"+string(tt.action), func(t *testing.T) {
			got, err := s.TypeAfterUpdate(ctx, tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Slug(), got.Slug)
		})
	}
}

func TestResourceTypes_TypeAfterUpdate_Unsupported(t *testing.T) {
	s := newResourceTypesService(t)
	ctx := context.Background()
	_, err := s.Seed(ctx)
	require.NoError(t, err)

	_, err = s.TypeAfterUpdate(ctx, "v5-totp-standalone", rt.AddTotp)
	require.ErrorIs(t, err, ErrActionNotSupported)

	_, err = s.TypeAfterUpdate(ctx, "password-string", rt.RemoveTotp)
	require.ErrorIs(t, err, ErrActionNotSupported)
}

func TestResourceTypes_TypeAfterUpdate_UnknownType(t *testing.T) {
	s := newResourceTypesService(t)

	_, err := s.TypeAfterUpdate(context.Background(), "nope", rt.EditPassword)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResourceTypes_Actions(t *testing.T) {
	s := newResourceTypesService(t)

	actions, err := s.Actions("v5-default")
	require.NoError(t, err)
	require.Equal(t, []rt.UpdateActionMetadata{
		{Action: rt.EditPassword, NewResourceType: contenttypes.V5Default},
		{Action: rt.AddTotp, NewResourceType: contenttypes.V5DefaultWithTotp},
	}, actions)

	_, err = s.Actions("folder")
	require.ErrorIs(t, err, contenttypes.ErrUnsupportedSlug)
}

func TestResourceTypes_TypeAfterEdit(t *testing.T) {
	s := newResourceTypesService(t)
	ctx := context.Background()
	_, err := s.Seed(ctx)
	require.NoError(t, err)

	got, err := s.TypeAfterEdit(ctx, contenttypes.PasswordDescriptionTotp.Slug(), redesigned.RemovePasswordAndNote)
	require.NoError(t, err)
	assert.Equal(t, contenttypes.Totp.Slug(), got.Slug)

	totp, err := s.Find(ctx, contenttypes.V5TotpStandalone.Slug())
	require.NoError(t, err)
	got, err = s.TypeAfterEdit(ctx, totp.ID, redesigned.AddPassword)
	require.NoError(t, err)
	assert.Equal(t, contenttypes.V5DefaultWithTotp.Slug(), got.Slug)

	_, err = s.TypeAfterEdit(ctx, contenttypes.PasswordString.Slug(), redesigned.AddTotp)
	require.ErrorIs(t, err, ErrActionNotSupported)

	_, err = s.TypeAfterEdit(ctx, "missing", redesigned.EditMetadata)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResourceTypes_EditActions(t *testing.T) {
	s := newResourceTypesService(t)

	actions, err := s.EditActions(contenttypes.Totp.Slug())
	require.NoError(t, err)
	assert.Len(t, actions, 5)

	_, err = s.EditActions("folder")
	require.ErrorIs(t, err, contenttypes.ErrUnsupportedSlug)
}
