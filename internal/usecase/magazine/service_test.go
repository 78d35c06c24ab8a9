package magazine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/repository"
	magUC "magazine-press/internal/usecase/magazine"
)

/* ───────── スタブ実装 ───────── */

// 記事と著者をメモリ上に保持する MagazineRepository
type stubRepo struct {
	data     map[int64]*entity.Magazine
	authors  map[int64]*entity.Author
	articles []*entity.Article
	calls    int
	err      error
}

func newStub() *stubRepo {
	return &stubRepo{
		data:    map[int64]*entity.Magazine{},
		authors: map[int64]*entity.Author{},
	}
}

func (s *stubRepo) addArticles(authorID, magazineID int64, n int) {
	for i := 0; i < n; i++ {
		s.articles = append(s.articles, &entity.Article{
			ID:         int64(len(s.articles) + 1),
			Title:      "Article " + strings.Repeat("x", i+1),
			AuthorID:   authorID,
			MagazineID: magazineID,
		})
	}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Magazine, error) {
	s.calls++
	return s.data[id], s.err
}

func (s *stubRepo) LoadOrCreate(_ context.Context, m *entity.Magazine) (*entity.Magazine, bool, error) {
	s.calls++
	if s.err != nil {
		return nil, false, s.err
	}
	if existing, ok := s.data[m.ID]; ok {
		cp := *existing
		return &cp, false, nil
	}
	cp := *m
	s.data[m.ID] = &cp
	return m, true, nil
}

func (s *stubRepo) Update(_ context.Context, m *entity.Magazine) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[m.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *m
	s.data[m.ID] = &cp
	return nil
}

func (s *stubRepo) Articles(_ context.Context, magazineID int64) ([]*entity.Article, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := []*entity.Article{}
	for _, a := range s.articles {
		if a.MagazineID == magazineID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) Contributors(_ context.Context, magazineID int64) ([]*entity.Author, error) {
	s.calls++
	seen := map[int64]bool{}
	out := []*entity.Author{}
	for _, a := range s.articles {
		if a.MagazineID == magazineID && !seen[a.AuthorID] {
			seen[a.AuthorID] = true
			out = append(out, s.authors[a.AuthorID])
		}
	}
	return out, s.err
}

func (s *stubRepo) AuthorsWithMoreArticlesThan(_ context.Context, magazineID, threshold int64) ([]repository.AuthorArticleCount, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	counts := map[int64]int64{}
	var order []int64
	for _, a := range s.articles {
		if a.MagazineID != magazineID {
			continue
		}
		if counts[a.AuthorID] == 0 {
			order = append(order, a.AuthorID)
		}
		counts[a.AuthorID]++
	}
	out := []repository.AuthorArticleCount{}
	for _, id := range order {
		if counts[id] > threshold {
			out = append(out, repository.AuthorArticleCount{Author: s.authors[id], ArticleCount: counts[id]})
		}
	}
	return out, nil
}

/* ───────── LoadOrCreate / Save ───────── */

func TestService_LoadOrCreate(t *testing.T) {
	repo := newStub()
	svc := magUC.Service{Repo: repo}
	ctx := context.Background()

	got, err := svc.LoadOrCreate(ctx, magUC.CreateInput{ID: 1, Name: "Wired", Category: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, "Wired", got.Name)

	again, err := svc.LoadOrCreate(ctx, magUC.CreateInput{ID: 1, Name: "Byte", Category: "Retro"})
	require.NoError(t, err)
	assert.Equal(t, "Wired", again.Name)
	assert.Equal(t, "Tech", again.Category)
	assert.Len(t, repo.data, 1)
}

func TestService_LoadOrCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    magUC.CreateInput
		field string
	}{
		{"name length 1", magUC.CreateInput{ID: 1, Name: "W", Category: "Tech"}, "name"},
		{"name length 17", magUC.CreateInput{ID: 1, Name: strings.Repeat("w", 17), Category: "Tech"}, "name"},
		{"blank category", magUC.CreateInput{ID: 1, Name: "Wired", Category: "  "}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			svc := magUC.Service{Repo: repo}

			_, err := svc.LoadOrCreate(context.Background(), tt.in)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestService_Save(t *testing.T) {
	repo := newStub()
	svc := magUC.Service{Repo: repo}
	ctx := context.Background()

	m, err := svc.LoadOrCreate(ctx, magUC.CreateInput{ID: 1, Name: "Wired", Category: "Tech"})
	require.NoError(t, err)

	require.NoError(t, m.SetName("Byte"))
	assert.Equal(t, "Wired", repo.data[1].Name, "setter must not persist")

	require.NoError(t, svc.Save(ctx, m))
	assert.Equal(t, "Byte", repo.data[1].Name)
}

func TestService_Save_Errors(t *testing.T) {
	repo := newStub()
	svc := magUC.Service{Repo: repo}
	ctx := context.Background()

	err := svc.Save(ctx, &entity.Magazine{ID: 9, Name: "Ghost", Category: "None"})
	assert.ErrorIs(t, err, magUC.ErrMagazineNotFound)

	calls := repo.calls
	err = svc.Save(ctx, &entity.Magazine{ID: 9, Name: "G", Category: "None"})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	stub := (&entity.Article{MagazineID: 9}).MagazineStub()
	err = svc.Save(ctx, stub)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	assert.Equal(t, calls, repo.calls, "invalid saves must not reach the store")

	boom := errors.New("connection refused")
	repo.err = boom
	err = svc.Save(ctx, &entity.Magazine{ID: 9, Name: "Ghost", Category: "None"})
	assert.ErrorIs(t, err, boom)
}

/* ───────── クエリ ───────── */

func TestService_ArticleTitles(t *testing.T) {
	repo := newStub()
	repo.addArticles(1, 10, 2)
	repo.addArticles(2, 20, 1)
	svc := magUC.Service{Repo: repo}
	ctx := context.Background()

	titles, err := svc.ArticleTitles(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Article x", "Article xx"}, titles)

	none, err := svc.ArticleTitles(ctx, 30)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestService_ContributingAuthors(t *testing.T) {
	repo := newStub()
	repo.authors[1] = &entity.Author{ID: 1, Name: "Jane"}
	repo.authors[2] = &entity.Author{ID: 2, Name: "Ravi"}
	repo.addArticles(1, 10, 3)
	repo.addArticles(2, 10, 2)
	svc := magUC.Service{Repo: repo}

	got, err := svc.ContributingAuthors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].Author.Name)
	assert.Equal(t, int64(3), got[0].ArticleCount)
}

func TestService_ContributingAuthors_ExactlyTwoIsNil(t *testing.T) {
	repo := newStub()
	repo.authors[2] = &entity.Author{ID: 2, Name: "Ravi"}
	repo.addArticles(2, 10, 2)
	svc := magUC.Service{Repo: repo}

	got, err := svc.ContributingAuthors(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Contributors(t *testing.T) {
	repo := newStub()
	repo.authors[1] = &entity.Author{ID: 1, Name: "Jane"}
	repo.authors[2] = &entity.Author{ID: 2, Name: "Ravi"}
	repo.addArticles(1, 10, 2)
	repo.addArticles(2, 10, 1)
	svc := magUC.Service{Repo: repo}

	got, err := svc.Contributors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jane", got[0].Name)
	assert.Equal(t, "Ravi", got[1].Name)

	articles, err := svc.Articles(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestService_Get(t *testing.T) {
	repo := newStub()
	repo.data[1] = &entity.Magazine{ID: 1, Name: "Wired", Category: "Tech"}
	svc := magUC.Service{Repo: repo}

	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Wired", got.Name)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, magUC.ErrMagazineNotFound)
}
