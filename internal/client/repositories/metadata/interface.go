// Package metadata stores small key/value records in the local client
// database: the unlock salt and verifier and the encrypted session keys
// snapshot.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeySalt             = "salt"
	KeyVerifier         = "verifier"
	KeySessionKeysCache = "session_keys_cache"
)

// Repository is a key/value store. Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
