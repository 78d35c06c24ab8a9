// Package dto holds the JSON shapes returned by the HTTP handlers.
package dto

import (
	"magazine-press/internal/domain/entity"
	"magazine-press/internal/repository"
)

// Author represents the JSON structure for author data transfer.
type Author struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Jane Doe"`
}

// Magazine represents the JSON structure for magazine data transfer.
type Magazine struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Wired"`
	Category string `json:"category" example:"Technology"`
}

// Article represents the JSON structure for article data transfer.
type Article struct {
	ID         int64  `json:"id" example:"1"`
	Title      string `json:"title" example:"The future of print"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id" example:"1"`
	MagazineID int64  `json:"magazine_id" example:"1"`
}

// Contributor is an author with their article count in one magazine.
type Contributor struct {
	Author
	ArticleCount int64 `json:"article_count" example:"3"`
}

// ArticleDetail is an article with its author and magazine embedded.
type ArticleDetail struct {
	Article
	Author   Author   `json:"author"`
	Magazine Magazine `json:"magazine"`
}

func FromAuthor(a *entity.Author) Author {
	return Author{ID: a.ID, Name: a.Name}
}

func FromMagazine(m *entity.Magazine) Magazine {
	return Magazine{ID: m.ID, Name: m.Name, Category: m.Category}
}

func FromArticle(a *entity.Article) Article {
	return Article{ID: a.ID, Title: a.Title, Content: a.Content, AuthorID: a.AuthorID, MagazineID: a.MagazineID}
}

func FromArticleDetail(a *entity.Article, author *entity.Author, m *entity.Magazine) ArticleDetail {
	return ArticleDetail{Article: FromArticle(a), Author: FromAuthor(author), Magazine: FromMagazine(m)}
}

// FromAuthors converts a query result. The result is never nil.
func FromAuthors(in []*entity.Author) []Author {
	out := make([]Author, 0, len(in))
	for _, a := range in {
		out = append(out, FromAuthor(a))
	}
	return out
}

// FromMagazines converts a query result. The result is never nil.
func FromMagazines(in []*entity.Magazine) []Magazine {
	out := make([]Magazine, 0, len(in))
	for _, m := range in {
		out = append(out, FromMagazine(m))
	}
	return out
}

// FromArticles converts a query result. The result is never nil.
func FromArticles(in []*entity.Article) []Article {
	out := make([]Article, 0, len(in))
	for _, a := range in {
		out = append(out, FromArticle(a))
	}
	return out
}

// FromContributors keeps the nil sentinel: nil in, nil out.
func FromContributors(in []repository.AuthorArticleCount) []Contributor {
	if in == nil {
		return nil
	}
	out := make([]Contributor, 0, len(in))
	for _, c := range in {
		out = append(out, Contributor{Author: FromAuthor(c.Author), ArticleCount: c.ArticleCount})
	}
	return out
}
