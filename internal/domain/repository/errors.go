package repository

import "errors"

// Sentinel errors shared by all repository implementations. Services translate
// these into their own taxonomy before they reach a handler.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrDuplicate = errors.New("duplicate")
)
