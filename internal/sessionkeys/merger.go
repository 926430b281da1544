package sessionkeys

import (
	"fmt"
	"time"
)

// Merger reconciles bundles fetched from several origins.
type Merger struct{}

// NewMerger returns a stateless Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge keeps, for every identifier, the session key with the latest
// modified date. When two keys share the same date the one met first, in
// bundle order then key order, is kept.
//
// Every session key must carry a parseable modified date; callers filter
// bundles with Validator first. Merge panics with ErrMissingModified or
// ErrMalformedModified otherwise.
func (m *Merger) Merge(bundles []DecryptedBundle) MergedSessionKeys {
	keys := make(map[Identifier]Model)
	for _, b := range bundles {
		for _, sk := range b.Bundle.SessionKeys {
			id := Identifier{ForeignModel: sk.ForeignModel, ForeignID: sk.ForeignID}
			if sk.Modified == nil {
				panic(fmt.Errorf("%w: %s in bundle %s", ErrMissingModified, id, b.ID))
			}
			modified, err := ParseModified(*sk.Modified)
			if err != nil {
				panic(fmt.Errorf("%w: %s in bundle %s: %v", ErrMalformedModified, id, b.ID, err))
			}

			existing, ok := keys[id]
			if !ok || existing.Modified.Before(modified) {
				keys[id] = Model{SessionKey: sk.SessionKey, Modified: modified}
			}
		}
	}

	origin := make(map[string]time.Time, len(bundles))
	for _, b := range bundles {
		origin[b.ID.String()] = b.Modified
	}

	return MergedSessionKeys{Keys: keys, OriginMetadata: origin}
}
