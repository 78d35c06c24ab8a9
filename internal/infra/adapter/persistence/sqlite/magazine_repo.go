package sqlite

import (
	"context"
	"fmt"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/repository"
)

type MagazineRepo struct{ connector db.Connector }

func NewMagazineRepo(connector db.Connector) repository.MagazineRepository {
	return &MagazineRepo{connector: connector}
}

const selectMagazineByID = `
SELECT id, name, category
FROM magazines
WHERE id = ?
LIMIT 1`

func (repo *MagazineRepo) Get(ctx context.Context, id int64) (*entity.Magazine, error) {
	var magazine *entity.Magazine
	err := db.WithConn(ctx, repo.connector, "magazines.get", func(conn db.Conn) error {
		var err error
		magazine, err = scanMagazineRow(conn.QueryRowContext(ctx, selectMagazineByID, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return magazine, nil
}

func (repo *MagazineRepo) LoadOrCreate(ctx context.Context, magazine *entity.Magazine) (*entity.Magazine, bool, error) {
	const insert = `INSERT INTO magazines (id, name, category) VALUES (?, ?, ?)`

	var (
		stored  *entity.Magazine
		created bool
	)
	err := db.WithConn(ctx, repo.connector, "magazines.load_or_create", func(conn db.Conn) error {
		existing, err := scanMagazineRow(conn.QueryRowContext(ctx, selectMagazineByID, magazine.ID))
		if err != nil {
			return fmt.Errorf("QueryRowContext: %w", err)
		}
		if existing != nil {
			stored = existing
			return nil
		}
		if _, err := conn.ExecContext(ctx, insert, magazine.ID, magazine.Name, magazine.Category); err != nil {
			return fmt.Errorf("ExecContext: %w", err)
		}
		stored = &entity.Magazine{ID: magazine.ID, Name: magazine.Name, Category: magazine.Category}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("LoadOrCreate: %w", err)
	}
	return stored, created, nil
}

func (repo *MagazineRepo) Update(ctx context.Context, magazine *entity.Magazine) error {
	const query = `
UPDATE magazines SET
    name     = ?,
    category = ?
WHERE id = ?`

	err := db.WithConn(ctx, repo.connector, "magazines.update", func(conn db.Conn) error {
		res, err := conn.ExecContext(ctx, query, magazine.Name, magazine.Category, magazine.ID)
		if err != nil {
			return fmt.Errorf("ExecContext: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("RowsAffected: %w", err)
		}
		if n == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *MagazineRepo) Articles(ctx context.Context, magazineID int64) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE magazine_id = ?
ORDER BY id ASC`

	var articles []*entity.Article
	err := db.WithConn(ctx, repo.connector, "magazines.articles", func(conn db.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID)
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

func (repo *MagazineRepo) Contributors(ctx context.Context, magazineID int64) ([]*entity.Author, error) {
	const query = `
SELECT DISTINCT au.id, au.name
FROM authors au
JOIN articles ar ON ar.author_id = au.id
WHERE ar.magazine_id = ?
ORDER BY au.id ASC`

	var authors []*entity.Author
	err := db.WithConn(ctx, repo.connector, "magazines.contributors", func(conn db.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		authors, err = scanAuthors(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Contributors: %w", err)
	}
	return authors, nil
}

func (repo *MagazineRepo) AuthorsWithMoreArticlesThan(ctx context.Context, magazineID int64, threshold int64) ([]repository.AuthorArticleCount, error) {
	const query = `
SELECT au.id, au.name, COUNT(*) AS article_count
FROM authors au
JOIN articles ar ON ar.author_id = au.id
WHERE ar.magazine_id = ?
GROUP BY au.id, au.name
HAVING COUNT(*) > ?`

	var counts []repository.AuthorArticleCount
	err := db.WithConn(ctx, repo.connector, "magazines.contributing_authors", func(conn db.Conn) error {
		rows, err := conn.QueryContext(ctx, query, magazineID, threshold)
		if err != nil {
			return fmt.Errorf("QueryContext: %w", err)
		}
		counts, err = scanAuthorCounts(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("AuthorsWithMoreArticlesThan: %w", err)
	}
	return counts, nil
}
