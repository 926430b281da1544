package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict means the bundle changed on the server since it was fetched.
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)
