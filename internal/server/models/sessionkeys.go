package models

import "time"

// SessionKeysBundle is one encrypted session keys bundle of a user.
// Data is an armored ciphertext the server never looks into.
type SessionKeysBundle struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Data       string    `db:"data"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}
