package author

import (
	"context"
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

// CreateInput represents the input parameters for loading or creating an author.
type CreateInput struct {
	ID   int64
	Name string
}

// Service provides author use cases.
// It validates input and delegates persistence to the repository.
type Service struct {
	Repo repository.AuthorRepository
}

func startSpan(ctx context.Context, name string, id int64) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, name, trace.WithAttributes(attribute.Int64("author.id", id)))
}

// LoadOrCreate validates the input, then inserts the author unless a row with
// the same id already exists. The returned author carries the stored values,
// so a second call with a different name returns the original name.
// Returns a ValidationError, without touching the store, if the name is blank.
func (s *Service) LoadOrCreate(ctx context.Context, in CreateInput) (_ *entity.Author, err error) {
	ctx, span := startSpan(ctx, "author.LoadOrCreate", in.ID)
	defer func() { tracing.End(span, err) }()

	author, err := entity.NewAuthor(in.ID, in.Name)
	if err != nil {
		metrics.RecordValidationFailure(metrics.EntityAuthor, err)
		return nil, err
	}

	stored, created, err := s.Repo.LoadOrCreate(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("load or create author: %w", err)
	}
	if created {
		metrics.RecordEntityCreated(metrics.EntityAuthor)
		logging.FromContext(ctx).Debug("author created", slog.Int64("author_id", stored.ID))
	}
	return stored, nil
}

// Get returns the stored author or ErrAuthorNotFound.
func (s *Service) Get(ctx context.Context, id int64) (_ *entity.Author, err error) {
	ctx, span := startSpan(ctx, "author.Get", id)
	defer func() { tracing.End(span, err) }()

	author, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// Articles returns all articles written by the author, in storage order.
// An author without articles yields an empty slice.
func (s *Service) Articles(ctx context.Context, authorID int64) (_ []*entity.Article, err error) {
	ctx, span := startSpan(ctx, "author.Articles", authorID)
	defer func() { tracing.End(span, err) }()

	articles, err := s.Repo.Articles(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}
	return articles, nil
}

// Magazines returns the distinct magazines the author has written for.
func (s *Service) Magazines(ctx context.Context, authorID int64) (_ []*entity.Magazine, err error) {
	ctx, span := startSpan(ctx, "author.Magazines", authorID)
	defer func() { tracing.End(span, err) }()

	magazines, err := s.Repo.Magazines(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("list author magazines: %w", err)
	}
	return magazines, nil
}
