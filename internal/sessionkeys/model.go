// Package sessionkeys reconciles session-key bundles coming from several
// metadata origins and converts session keys between their wire and
// runtime forms.
package sessionkeys

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMissingModified is carried by the panic raised when a session key
	// without a modification date reaches Merge.
	ErrMissingModified = errors.New("session key has no modified date")
	// ErrMalformedModified is carried by the panic raised when a session
	// key modification date cannot be parsed during Merge.
	ErrMalformedModified = errors.New("session key modified date is malformed")
)

// SessionKeyDTO is a single session key as carried inside an encrypted bundle.
type SessionKeyDTO struct {
	ForeignModel string  `json:"foreign_model"`
	ForeignID    string  `json:"foreign_id"`
	SessionKey   string  `json:"session_key"`
	Modified     *string `json:"modified,omitempty"`
}

// BundleDTO is the decrypted payload of a session keys bundle.
type BundleDTO struct {
	ObjectType  string          `json:"object_type"`
	SessionKeys []SessionKeyDTO `json:"session_keys"`
}

// DecryptedBundle is a bundle fetched from one origin, already decrypted.
type DecryptedBundle struct {
	ID       uuid.UUID
	Created  time.Time
	Modified time.Time
	Bundle   BundleDTO
}

// Identifier tells what a session key is for.
type Identifier struct {
	ForeignModel string
	ForeignID    string
}

func (i Identifier) String() string {
	return i.ForeignModel + "/" + i.ForeignID
}

// Model is a cached session key and its last modification time.
type Model struct {
	SessionKey string
	Modified   time.Time
}

// MergedSessionKeys is the result of merging bundles. OriginMetadata maps
// each input bundle id to that bundle's own modified date.
type MergedSessionKeys struct {
	Keys           map[Identifier]Model
	OriginMetadata map[string]time.Time
}

// ParseModified parses a session key modification date. A trailing zone
// name in brackets, e.g. "2024-01-02T10:00:00+01:00[Europe/Paris]", is
// accepted and ignored since the offset already fixes the instant.
func ParseModified(s string) (time.Time, error) {
	if i := strings.IndexByte(s, '['); i > 0 && strings.HasSuffix(s, "]") {
		s = s[:i]
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse modified %q: %w", s, err)
	}
	return t, nil
}

// FormatModified is the inverse of ParseModified.
func FormatModified(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ModifiedPtr is a convenience for building DTOs.
func ModifiedPtr(t time.Time) *string {
	s := FormatModified(t)
	return &s
}
