// Package author provides use cases for authors: idempotent creation by id
// and the queries for an author's articles and magazines.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that no author row has the requested id.
	ErrAuthorNotFound = errors.New("author not found")
)
