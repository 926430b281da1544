// Package models defines client-side data models used by the teamkeeper client.
package models

import "time"

// SessionKeysBundle is an encrypted session keys bundle as returned by the
// metadata server. Data is an armored ciphertext.
type SessionKeysBundle struct {
	ID       string
	Data     string
	Created  time.Time
	Modified time.Time
}
