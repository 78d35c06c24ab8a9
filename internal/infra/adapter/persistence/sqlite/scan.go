// Package sqlite implements the repositories with `?` placeholders for SQLite.
package sqlite

import (
	"database/sql"
	"errors"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/repository"
)

const articleColumns = `id, title, content, author_id, magazine_id`

func scanAuthorRow(row *sql.Row) (*entity.Author, error) {
	var a entity.Author
	err := row.Scan(&a.ID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanMagazineRow(row *sql.Row) (*entity.Magazine, error) {
	var m entity.Magazine
	err := row.Scan(&m.ID, &m.Name, &m.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanArticleRow(row *sql.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.MagazineID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanArticles(rows *sql.Rows) ([]*entity.Article, error) {
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 16)
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.MagazineID); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func scanAuthors(rows *sql.Rows) ([]*entity.Author, error) {
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.Author, 0, 16)
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		authors = append(authors, &a)
	}
	return authors, rows.Err()
}

func scanMagazines(rows *sql.Rows) ([]*entity.Magazine, error) {
	defer func() { _ = rows.Close() }()

	magazines := make([]*entity.Magazine, 0, 16)
	for rows.Next() {
		var m entity.Magazine
		if err := rows.Scan(&m.ID, &m.Name, &m.Category); err != nil {
			return nil, err
		}
		magazines = append(magazines, &m)
	}
	return magazines, rows.Err()
}

func scanAuthorCounts(rows *sql.Rows) ([]repository.AuthorArticleCount, error) {
	defer func() { _ = rows.Close() }()

	counts := make([]repository.AuthorArticleCount, 0, 4)
	for rows.Next() {
		var a entity.Author
		var n int64
		if err := rows.Scan(&a.ID, &a.Name, &n); err != nil {
			return nil, err
		}
		counts = append(counts, repository.AuthorArticleCount{Author: &a, ArticleCount: n})
	}
	return counts, rows.Err()
}
