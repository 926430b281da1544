package sessionkeys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_InitiallyEmpty(t *testing.T) {
	c := NewMemoryCache()

	assert.True(t, c.WasInitialCacheEmpty())
	assert.False(t, c.IsLocallyModified())
	_, ok := c.LatestModifiedOrigin()
	assert.False(t, ok)

	c.Load(MergedSessionKeys{})
	assert.True(t, c.WasInitialCacheEmpty())
}

func TestMemoryCache_LoadAndLatestOrigin(t *testing.T) {
	c := NewMemoryCache()
	c.Load(MergedSessionKeys{
		Keys: map[Identifier]Model{{"Resource", "1"}: {SessionKey: "k1", Modified: base}},
		OriginMetadata: map[string]time.Time{
			"a": base,
			"b": base.Add(time.Hour),
			"c": base.Add(-time.Hour),
		},
	})

	assert.False(t, c.WasInitialCacheEmpty())
	assert.False(t, c.IsLocallyModified())

	latest, ok := c.LatestModifiedOrigin()
	require.True(t, ok)
	assert.Equal(t, "b", latest.ID)
	assert.True(t, latest.Modified.Equal(base.Add(time.Hour)))

	got, ok := c.Get(Identifier{"Resource", "1"})
	require.True(t, ok)
	assert.Equal(t, "k1", got.SessionKey)
}

func TestMemoryCache_PutMarksModified(t *testing.T) {
	c := NewMemoryCache()
	c.Load(MergedSessionKeys{
		Keys:           map[Identifier]Model{{"Resource", "1"}: {SessionKey: "k1", Modified: base}},
		OriginMetadata: map[string]time.Time{"a": base},
	})

	// same key, not newer
	c.Put(Identifier{"Resource", "1"}, "k1", base)
	assert.False(t, c.IsLocallyModified())

	c.Put(Identifier{"Resource", "2"}, "k2", base)
	assert.True(t, c.IsLocallyModified())
	assert.Equal(t, 2, c.Len())

	c.MarkSaved("a", base.Add(time.Minute))
	assert.False(t, c.IsLocallyModified())
	latest, _ := c.LatestModifiedOrigin()
	assert.True(t, latest.Modified.Equal(base.Add(time.Minute)))
}

func TestMemoryCache_SnapshotIsCopy(t *testing.T) {
	c := NewMemoryCache()
	c.Put(Identifier{"Resource", "1"}, "k1", base)

	snap := c.Snapshot()
	snap.Keys[Identifier{"Resource", "2"}] = Model{SessionKey: "k2"}
	snap.OriginMetadata["x"] = base

	assert.Equal(t, 1, c.Len())
	_, ok := c.LatestModifiedOrigin()
	assert.False(t, ok)
}

func TestMemoryCache_ReplaceKeepsPendingChanges(t *testing.T) {
	c := NewMemoryCache()
	c.Load(MergedSessionKeys{OriginMetadata: map[string]time.Time{"a": base}})
	c.Put(Identifier{"Resource", "1"}, "k1", base)

	c.Replace(MergedSessionKeys{
		Keys:           map[Identifier]Model{{"Resource", "1"}: {SessionKey: "k1", Modified: base}},
		OriginMetadata: map[string]time.Time{"b": base.Add(time.Hour)},
	})

	assert.True(t, c.IsLocallyModified())
	assert.False(t, c.WasInitialCacheEmpty())
	latest, _ := c.LatestModifiedOrigin()
	assert.Equal(t, "b", latest.ID)
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache()
	c.Put(Identifier{"Resource", "1"}, "k1", base)
	c.MarkSaved("a", base)

	c.Clear()

	assert.Zero(t, c.Len())
	assert.True(t, c.WasInitialCacheEmpty())
	assert.False(t, c.IsLocallyModified())
}
