// Package article provides use cases for articles: validated creation and the
// accessors that load an article's author and magazine from the store.
package article

import (
	"errors"

	authorUC "magazine-press/internal/usecase/author"
	magUC "magazine-press/internal/usecase/magazine"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article row has the requested id.
	ErrArticleNotFound = errors.New("article not found")

	// ErrAuthorNotFound is returned by Service.Author when the referenced author row is missing.
	ErrAuthorNotFound = authorUC.ErrAuthorNotFound

	// ErrMagazineNotFound is returned by Service.Magazine when the referenced magazine row is missing.
	ErrMagazineNotFound = magUC.ErrMagazineNotFound
)
