package sqlite

import (
	"context"
	"fmt"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/repository"
)

type AuthorRepo struct{ connector db.Connector }

func NewAuthorRepo(connector db.Connector) repository.AuthorRepository {
	return &AuthorRepo{connector: connector}
}

const selectAuthorByID = `
SELECT id, name
FROM authors
WHERE id = ?
LIMIT 1`

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	var author *entity.Author
	err := db.WithConn(ctx, repo.connector, "authors.get", func(conn db.Conn) error {
		var err error
		author, err = scanAuthorRow(conn.QueryRowContext(ctx, selectAuthorByID, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return author, nil
}

func (repo *AuthorRepo) LoadOrCreate(ctx context.Context, author *entity.Author) (*entity.Author, bool, error) {
	const insert = `INSERT INTO authors (id, name) VALUES (?, ?)`

	var (
		stored  *entity.Author
		created bool
	)
	err := db.WithConn(ctx, repo.connector, "authors.load_or_create", func(conn db.Conn) error {
		existing, err := scanAuthorRow(conn.QueryRowContext(ctx, selectAuthorByID, author.ID))
		if err != nil {
			return fmt.Errorf("QueryRowContext: %w", err)
		}
		if existing != nil {
			stored = existing
			return nil
		}
		if _, err := conn.ExecContext(ctx, insert, author.ID, author.Name); err != nil {
			return fmt.Errorf("ExecContext: %w", err)
		}
		stored = &entity.Author{ID: author.ID, Name: author.Name}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("LoadOrCreate: %w", err)
	}
	return stored, created, nil
}

func (repo *AuthorRepo) Articles(ctx context.Context, authorID int64) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE author_id = ?
ORDER BY id ASC`

	var articles []*entity.Article
	err := db.WithConn(ctx, repo.connector, "authors.articles", func(conn db.Conn) error {
		rows, err := conn.QueryContext(ctx, query, authorID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		articles, err = scanArticles(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Articles: %w", err)
	}
	return articles, nil
}

func (repo *AuthorRepo) Magazines(ctx context.Context, authorID int64) ([]*entity.Magazine, error) {
	const query = `
SELECT DISTINCT m.id, m.name, m.category
FROM magazines m
JOIN articles a ON a.magazine_id = m.id
WHERE a.author_id = ?
ORDER BY m.id ASC`

	var magazines []*entity.Magazine
	err := db.WithConn(ctx, repo.connector, "authors.magazines", func(conn db.Conn) error {
		rows, err := conn.QueryContext(ctx, query, authorID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		magazines, err = scanMagazines(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Magazines: %w", err)
	}
	return magazines, nil
}
