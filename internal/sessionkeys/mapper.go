package sessionkeys

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"github.com/google/uuid"
)

// ToBundleDTO converts merged keys back to their payload form, ordered by
// foreign model then foreign id.
func ToBundleDTO(keys map[Identifier]Model) BundleDTO {
	ids := make([]Identifier, 0, len(keys))
	for id := range keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].ForeignModel != ids[j].ForeignModel {
			return ids[i].ForeignModel < ids[j].ForeignModel
		}
		return ids[i].ForeignID < ids[j].ForeignID
	})

	out := make([]SessionKeyDTO, 0, len(ids))
	for _, id := range ids {
		k := keys[id]
		out = append(out, SessionKeyDTO{
			ForeignModel: id.ForeignModel,
			ForeignID:    id.ForeignID,
			SessionKey:   k.SessionKey,
			Modified:     ModifiedPtr(k.Modified),
		})
	}
	return BundleDTO{ObjectType: common.SessionKeysObjectType, SessionKeys: out}
}

// ToDecryptedBundle wraps merged keys as a bundle with the given id so it
// can be merged together with freshly fetched bundles.
func ToDecryptedBundle(keys map[Identifier]Model, id uuid.UUID, now time.Time) DecryptedBundle {
	return DecryptedBundle{
		ID:       id,
		Created:  now,
		Modified: now,
		Bundle:   ToBundleDTO(keys),
	}
}
