package article

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/observability/logging"
	"magazine-press/internal/observability/metrics"
	"magazine-press/internal/observability/tracing"
	"magazine-press/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title      string
	Content    string
	AuthorID   int64
	MagazineID int64
}

// Detail is an article together with its loaded author and magazine.
type Detail struct {
	Article  *entity.Article
	Author   *entity.Author
	Magazine *entity.Magazine
}

// Service provides article use cases.
// Authors and Magazines are only needed by the Author and Magazine accessors.
type Service struct {
	Repo      repository.ArticleRepository
	Authors   repository.AuthorRepository
	Magazines repository.MagazineRepository
}

// Create validates the input and inserts a new article row.
// Articles are never deduplicated: identical input inserts another row.
// The author and magazine ids are not checked for existence here.
func (s *Service) Create(ctx context.Context, in CreateInput) (_ *entity.Article, err error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Create", trace.WithAttributes(
		attribute.Int64("author.id", in.AuthorID),
		attribute.Int64("magazine.id", in.MagazineID),
	))
	defer func() { tracing.End(span, err) }()

	a, err := entity.NewArticle(in.Title, in.Content, in.AuthorID, in.MagazineID)
	if err != nil {
		metrics.RecordValidationFailure(metrics.EntityArticle, err)
		return nil, err
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordEntityCreated(metrics.EntityArticle)
	logging.FromContext(ctx).Debug("article created",
		slog.Int64("article_id", a.ID),
		slog.Int64("author_id", a.AuthorID),
		slog.Int64("magazine_id", a.MagazineID))
	return a, nil
}

// Get returns the stored article or ErrArticleNotFound.
func (s *Service) Get(ctx context.Context, id int64) (_ *entity.Article, err error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Get", trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { tracing.End(span, err) }()

	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

// Author loads the article's author from the store.
// Use (*entity.Article).AuthorStub when only the id is needed.
func (s *Service) Author(ctx context.Context, a *entity.Article) (_ *entity.Author, err error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Author", trace.WithAttributes(attribute.Int64("author.id", a.AuthorID)))
	defer func() { tracing.End(span, err) }()

	author, err := s.Authors.Get(ctx, a.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("load article author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// Magazine loads the article's magazine from the store.
// Use (*entity.Article).MagazineStub when only the id is needed.
func (s *Service) Magazine(ctx context.Context, a *entity.Article) (_ *entity.Magazine, err error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Magazine", trace.WithAttributes(attribute.Int64("magazine.id", a.MagazineID)))
	defer func() { tracing.End(span, err) }()

	magazine, err := s.Magazines.Get(ctx, a.MagazineID)
	if err != nil {
		return nil, fmt.Errorf("load article magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// Detail loads the article and then both of its references in parallel.
// A missing reference fails the whole call with the matching not-found error.
func (s *Service) Detail(ctx context.Context, id int64) (_ *Detail, err error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Detail", trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { tracing.End(span, err) }()

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &Detail{Article: a}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		author, err := s.Author(egCtx, a)
		d.Author = author
		return err
	})
	eg.Go(func() error {
		magazine, err := s.Magazine(egCtx, a)
		d.Magazine = magazine
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
