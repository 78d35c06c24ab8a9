package magazine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/observability/logging"
	"magazine-press/internal/observability/metrics"
	"magazine-press/internal/observability/tracing"
	"magazine-press/internal/repository"
)

// ContributingAuthorThreshold is the article count an author must exceed in a
// magazine to be listed by ContributingAuthors.
const ContributingAuthorThreshold = 2

// CreateInput represents the input parameters for loading or creating a magazine.
type CreateInput struct {
	ID       int64
	Name     string
	Category string
}

// Service provides magazine use cases.
type Service struct {
	Repo repository.MagazineRepository
}

func startSpan(ctx context.Context, name string, id int64) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, name, trace.WithAttributes(attribute.Int64("magazine.id", id)))
}

// LoadOrCreate validates the input, then inserts the magazine unless a row
// with the same id exists. The stored values are returned either way.
func (s *Service) LoadOrCreate(ctx context.Context, in CreateInput) (_ *entity.Magazine, err error) {
	ctx, span := startSpan(ctx, "magazine.LoadOrCreate", in.ID)
	defer func() { tracing.End(span, err) }()

	magazine, err := entity.NewMagazine(in.ID, in.Name, in.Category)
	if err != nil {
		metrics.RecordValidationFailure(metrics.EntityMagazine, err)
		return nil, err
	}

	stored, created, err := s.Repo.LoadOrCreate(ctx, magazine)
	if err != nil {
		return nil, fmt.Errorf("load or create magazine: %w", err)
	}
	if created {
		metrics.RecordEntityCreated(metrics.EntityMagazine)
		logging.FromContext(ctx).Debug("magazine created", slog.Int64("magazine_id", stored.ID))
	}
	return stored, nil
}

// Get returns the stored magazine or ErrMagazineNotFound.
func (s *Service) Get(ctx context.Context, id int64) (_ *entity.Magazine, err error) {
	ctx, span := startSpan(ctx, "magazine.Get", id)
	defer func() { tracing.End(span, err) }()

	magazine, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// Save persists the magazine's current name and category.
// SetName and SetCategory only change the in-memory value; Save is the
// explicit step that writes them. The fields are re-validated first because
// they are exported and may have been assigned directly.
func (s *Service) Save(ctx context.Context, magazine *entity.Magazine) (err error) {
	ctx, span := startSpan(ctx, "magazine.Save", magazine.ID)
	defer func() { tracing.End(span, err) }()

	if magazine.IsStub() {
		return &entity.ValidationError{Field: "magazine", Message: "reference stub cannot be saved"}
	}
	if err := magazine.Validate(); err != nil {
		metrics.RecordValidationFailure(metrics.EntityMagazine, err)
		return err
	}
	if err := s.Repo.Update(ctx, magazine); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrMagazineNotFound
		}
		return fmt.Errorf("update magazine: %w", err)
	}
	return nil
}

// Articles returns all articles for the magazine, in storage order.
func (s *Service) Articles(ctx context.Context, magazineID int64) (_ []*entity.Article, err error) {
	ctx, span := startSpan(ctx, "magazine.Articles", magazineID)
	defer func() { tracing.End(span, err) }()

	articles, err := s.Repo.Articles(ctx, magazineID)
	if err != nil {
		return nil, fmt.Errorf("list magazine articles: %w", err)
	}
	return articles, nil
}

// Contributors returns the distinct authors with at least one article in the magazine.
func (s *Service) Contributors(ctx context.Context, magazineID int64) (_ []*entity.Author, err error) {
	ctx, span := startSpan(ctx, "magazine.Contributors", magazineID)
	defer func() { tracing.End(span, err) }()

	authors, err := s.Repo.Contributors(ctx, magazineID)
	if err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}
	return authors, nil
}

// ArticleTitles returns the titles of the magazine's articles in storage order,
// or nil when the magazine has no articles.
func (s *Service) ArticleTitles(ctx context.Context, magazineID int64) (_ []string, err error) {
	ctx, span := startSpan(ctx, "magazine.ArticleTitles", magazineID)
	defer func() { tracing.End(span, err) }()

	articles, err := s.Repo.Articles(ctx, magazineID)
	if err != nil {
		return nil, fmt.Errorf("list article titles: %w", err)
	}
	if len(articles) == 0 {
		return nil, nil
	}
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title)
	}
	return titles, nil
}

// ContributingAuthors returns the authors with more than
// ContributingAuthorThreshold articles in the magazine, with their counts,
// or nil when none qualify. Order is whatever the store's grouping yields.
func (s *Service) ContributingAuthors(ctx context.Context, magazineID int64) (_ []repository.AuthorArticleCount, err error) {
	ctx, span := startSpan(ctx, "magazine.ContributingAuthors", magazineID)
	defer func() { tracing.End(span, err) }()

	counts, err := s.Repo.AuthorsWithMoreArticlesThan(ctx, magazineID, ContributingAuthorThreshold)
	if err != nil {
		return nil, fmt.Errorf("list contributing authors: %w", err)
	}
	if len(counts) == 0 {
		return nil, nil
	}
	return counts, nil
}
