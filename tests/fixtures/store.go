package fixtures

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/infra/adapter/persistence/sqlite"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/repository"
)

// Store is a file-backed sqlite database with the schema applied.
// A file (not :memory:) is used so every pooled connection sees the same data.
type Store struct {
	DB        *sql.DB
	Connector db.Connector
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
	Articles  repository.ArticleRepository
}

// NewSQLiteStore opens a fresh store under t.TempDir and closes it on cleanup.
func NewSQLiteStore(t testing.TB) *Store {
	t.Helper()

	ctx := context.Background()
	sqlDB, err := db.Open(ctx, db.DialectSQLite, filepath.Join(t.TempDir(), "magazine.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.EnsureSchema(ctx, sqlDB, db.DialectSQLite); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	conn := db.NewSQLConnector(sqlDB)
	return &Store{
		DB:        sqlDB,
		Connector: conn,
		Authors:   sqlite.NewAuthorRepo(conn),
		Magazines: sqlite.NewMagazineRepo(conn),
		Articles:  sqlite.NewArticleRepo(conn),
	}
}

// SeedAuthor stores an author, failing the test on error.
func (s *Store) SeedAuthor(t testing.TB, id int64, name string) *entity.Author {
	t.Helper()
	a, err := entity.NewAuthor(id, name)
	if err != nil {
		t.Fatalf("seed author: %v", err)
	}
	stored, _, err := s.Authors.LoadOrCreate(context.Background(), a)
	if err != nil {
		t.Fatalf("seed author: %v", err)
	}
	return stored
}

// SeedMagazine stores a magazine, failing the test on error.
func (s *Store) SeedMagazine(t testing.TB, id int64, name, category string) *entity.Magazine {
	t.Helper()
	m, err := entity.NewMagazine(id, name, category)
	if err != nil {
		t.Fatalf("seed magazine: %v", err)
	}
	stored, _, err := s.Magazines.LoadOrCreate(context.Background(), m)
	if err != nil {
		t.Fatalf("seed magazine: %v", err)
	}
	return stored
}

// SeedArticle inserts an article, failing the test on error.
func (s *Store) SeedArticle(t testing.TB, authorID, magazineID int64, title string) *entity.Article {
	t.Helper()
	a, err := entity.NewArticle(title, "", authorID, magazineID)
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	if err := s.Articles.Create(context.Background(), a); err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return a
}
