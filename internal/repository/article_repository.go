package repository

import (
	"context"

	"magazine-press/internal/domain/entity"
)

// ArticleRepository persists articles.
type ArticleRepository interface {
	// Create always inserts a new row and sets article.ID to the assigned id.
	Create(ctx context.Context, article *entity.Article) error

	// Get returns the stored article, or (nil, nil) when no row has that id.
	Get(ctx context.Context, id int64) (*entity.Article, error)
}
