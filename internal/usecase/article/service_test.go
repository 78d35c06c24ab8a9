package article_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/repository"
	artUC "magazine-press/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	calls  int
	err    error // 強制的にエラーを返したいとき用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.calls++
	return s.data[id], s.err
}

// 著者・雑誌の読み込みだけを満たすスタブ
type lookupAuthors struct {
	repository.AuthorRepository
	data map[int64]*entity.Author
}

func (l lookupAuthors) Get(_ context.Context, id int64) (*entity.Author, error) {
	return l.data[id], nil
}

type lookupMagazines struct {
	repository.MagazineRepository
	data map[int64]*entity.Magazine
}

func (l lookupMagazines) Get(_ context.Context, id int64) (*entity.Magazine, error) {
	return l.data[id], nil
}

/* ───────── Create ───────── */

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}

	got, err := svc.Create(context.Background(), artUC.CreateInput{
		Title: "Hello world", Content: "body", AuthorID: 1, MagazineID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Hello world", got.Title)
	assert.Equal(t, "body", got.Content)
}

func TestService_Create_NeverDeduplicates(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}
	in := artUC.CreateInput{Title: "Hello world", AuthorID: 1, MagazineID: 2}

	a1, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	a2, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID, a2.ID)
	assert.Len(t, repo.data, 2)
}

func TestService_Create_TitleBounds(t *testing.T) {
	tests := []struct {
		length  int
		wantErr bool
	}{
		{4, true},
		{5, false},
		{50, false},
		{51, true},
	}

	for _, tt := range tests {
		repo := newStub()
		svc := artUC.Service{Repo: repo}

		_, err := svc.Create(context.Background(), artUC.CreateInput{
			Title: strings.Repeat("a", tt.length), AuthorID: 1, MagazineID: 1,
		})
		if tt.wantErr {
			assert.ErrorIs(t, err, entity.ErrValidationFailed, "length %d", tt.length)
			assert.Zero(t, repo.calls, "length %d must not reach the store", tt.length)
		} else {
			assert.NoError(t, err, "length %d", tt.length)
			assert.Equal(t, 1, repo.calls)
		}
	}
}

func TestService_Create_StoreError(t *testing.T) {
	repo := newStub()
	boom := errors.New("FOREIGN KEY constraint failed")
	repo.err = boom
	svc := artUC.Service{Repo: repo}

	_, err := svc.Create(context.Background(), artUC.CreateInput{Title: "Hello world", AuthorID: 1, MagazineID: 2})
	assert.ErrorIs(t, err, boom)
}

/* ───────── 参照 ───────── */

func TestService_AuthorAndMagazine_LoadStoredValues(t *testing.T) {
	svc := artUC.Service{
		Repo:      newStub(),
		Authors:   lookupAuthors{data: map[int64]*entity.Author{1: {ID: 1, Name: "Jane"}}},
		Magazines: lookupMagazines{data: map[int64]*entity.Magazine{2: {ID: 2, Name: "Wired", Category: "Tech"}}},
	}
	ctx := context.Background()

	a, err := svc.Create(ctx, artUC.CreateInput{Title: "Hello world", AuthorID: 1, MagazineID: 2})
	require.NoError(t, err)

	author, err := svc.Author(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Jane", author.Name)
	assert.False(t, author.IsStub())

	mag, err := svc.Magazine(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Tech", mag.Category)

	// スタブは保存値に関係なく "Unknown"
	assert.Equal(t, entity.UnknownName, a.AuthorStub().Name)
	assert.Equal(t, entity.UnknownName, a.MagazineStub().Category)
}

func TestService_AuthorAndMagazine_Missing(t *testing.T) {
	svc := artUC.Service{
		Repo:      newStub(),
		Authors:   lookupAuthors{data: map[int64]*entity.Author{}},
		Magazines: lookupMagazines{data: map[int64]*entity.Magazine{}},
	}
	a := &entity.Article{ID: 1, Title: "Orphaned", AuthorID: 5, MagazineID: 6}

	_, err := svc.Author(context.Background(), a)
	assert.ErrorIs(t, err, artUC.ErrAuthorNotFound)

	_, err = svc.Magazine(context.Background(), a)
	assert.ErrorIs(t, err, artUC.ErrMagazineNotFound)
}

func TestService_Get(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{Repo: repo}

	created, err := svc.Create(context.Background(), artUC.CreateInput{Title: "Hello world", AuthorID: 1, MagazineID: 2})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)
}

func TestService_Detail(t *testing.T) {
	repo := newStub()
	svc := artUC.Service{
		Repo:      repo,
		Authors:   lookupAuthors{data: map[int64]*entity.Author{1: {ID: 1, Name: "Jane"}}},
		Magazines: lookupMagazines{data: map[int64]*entity.Magazine{2: {ID: 2, Name: "Wired", Category: "Tech"}}},
	}
	ctx := context.Background()

	a, err := svc.Create(ctx, artUC.CreateInput{Title: "Hello world", AuthorID: 1, MagazineID: 2})
	require.NoError(t, err)
	orphan, err := svc.Create(ctx, artUC.CreateInput{Title: "Orphaned piece", AuthorID: 1, MagazineID: 9})
	require.NoError(t, err)

	d, err := svc.Detail(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, d.Article)
	assert.Equal(t, "Jane", d.Author.Name)
	assert.Equal(t, "Wired", d.Magazine.Name)

	_, err = svc.Detail(ctx, orphan.ID)
	assert.ErrorIs(t, err, artUC.ErrMagazineNotFound)

	_, err = svc.Detail(ctx, 999)
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)
}
