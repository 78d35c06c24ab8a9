package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/infra/adapter/persistence/postgres"
)

/* ──────────────────────────────── 1. Create ──────────────────────────────── */

func TestArticleRepo_Create(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("RETURNING id")).
		WithArgs("Hello world", "body", int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	article := &entity.Article{Title: "Hello world", Content: "body", AuthorID: 1, MagazineID: 2}
	if err := postgres.NewArticleRepo(conn).Create(context.Background(), article); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if article.ID != 42 {
		t.Fatalf("ID=%d, want 42", article.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Create_ForeignKeyErrorPropagates(t *testing.T) {
	_, mock, conn := newMock(t)

	boom := errors.New(`insert or update on table "articles" violates foreign key constraint`)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).WillReturnError(boom)

	article := &entity.Article{Title: "Hello world", AuthorID: 1, MagazineID: 99}
	if err := postgres.NewArticleRepo(conn).Create(context.Background(), article); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want wrapping %v", err, boom)
	}
}

/* ──────────────────────────────── 2. Get ──────────────────────────────── */

func TestArticleRepo_Get(t *testing.T) {
	_, mock, conn := newMock(t)

	want := &entity.Article{ID: 5, Title: "Hello world", Content: "body", AuthorID: 1, MagazineID: 2}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(articleRows(want))

	got, err := postgres.NewArticleRepo(conn).Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestArticleRepo_Get_NotFound(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectQuery("FROM articles").WithArgs(int64(5)).WillReturnRows(articleRows())

	got, err := postgres.NewArticleRepo(conn).Get(context.Background(), 5)
	if err != nil || got != nil {
		t.Fatalf("Get got=%v err=%v, want nil,nil", got, err)
	}
}
