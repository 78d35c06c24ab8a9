// Package repository declares the persistence contracts used by the use cases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"magazine-press/internal/domain/entity"
)

// AuthorRepository persists authors and answers author-centric join queries.
type AuthorRepository interface {
	// Get returns the stored author, or (nil, nil) when no row has that id.
	Get(ctx context.Context, id int64) (*entity.Author, error)

	// LoadOrCreate looks the author up by id on a single connection and
	// inserts it when absent. It never overwrites an existing row and
	// returns the stored values. created reports whether a row was inserted.
	LoadOrCreate(ctx context.Context, author *entity.Author) (stored *entity.Author, created bool, err error)

	// Articles returns every article whose author_id matches, in storage order.
	Articles(ctx context.Context, authorID int64) ([]*entity.Article, error)

	// Magazines returns the distinct magazines the author has written for.
	Magazines(ctx context.Context, authorID int64) ([]*entity.Magazine, error)
}
