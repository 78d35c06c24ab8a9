package postgres

import (
	"context"
	"fmt"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/repository"
)

type ArticleRepo struct{ connector db.Connector }

func NewArticleRepo(connector db.Connector) repository.ArticleRepository {
	return &ArticleRepo{connector: connector}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (title, content, author_id, magazine_id)
VALUES ($1, $2, $3, $4)
RETURNING id`

	err := db.WithConn(ctx, repo.connector, "articles.create", func(conn db.Conn) error {
		return conn.QueryRowContext(ctx, query,
			article.Title, article.Content,
			article.AuthorID, article.MagazineID,
		).Scan(&article.ID)
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`

	var article *entity.Article
	err := db.WithConn(ctx, repo.connector, "articles.get", func(conn db.Conn) error {
		var err error
		article, err = scanArticleRow(conn.QueryRowContext(ctx, query, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}
