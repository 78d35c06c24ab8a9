package repository

import (
	"context"

	"magazine-press/internal/domain/entity"
)

// AuthorArticleCount pairs an author with the number of articles they wrote
// for one magazine.
type AuthorArticleCount struct {
	Author       *entity.Author
	ArticleCount int64
}

// MagazineRepository persists magazines and answers magazine-centric join queries.
type MagazineRepository interface {
	// Get returns the stored magazine, or (nil, nil) when no row has that id.
	Get(ctx context.Context, id int64) (*entity.Magazine, error)

	// LoadOrCreate has the same upsert-by-id contract as AuthorRepository.LoadOrCreate.
	LoadOrCreate(ctx context.Context, magazine *entity.Magazine) (stored *entity.Magazine, created bool, err error)

	// Update writes name and category for the magazine's id.
	// It returns entity.ErrNotFound when no row was affected.
	Update(ctx context.Context, magazine *entity.Magazine) error

	// Articles returns every article for the magazine, in storage order.
	Articles(ctx context.Context, magazineID int64) ([]*entity.Article, error)

	// Contributors returns the distinct authors with at least one article in the magazine.
	Contributors(ctx context.Context, magazineID int64) ([]*entity.Author, error)

	// AuthorsWithMoreArticlesThan returns authors whose article count in the
	// magazine is strictly greater than threshold. Order follows the store's grouping.
	AuthorsWithMoreArticlesThan(ctx context.Context, magazineID int64, threshold int64) ([]AuthorArticleCount, error)
}
