// Package magazine provides use cases for magazines: idempotent creation by id,
// persisting in-memory edits, and the contributor queries.
package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineNotFound indicates that no magazine row has the requested id.
	ErrMagazineNotFound = errors.New("magazine not found")
)
