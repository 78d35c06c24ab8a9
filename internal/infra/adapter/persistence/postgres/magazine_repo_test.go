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
	"magazine-press/internal/repository"
)

func TestMagazineRepo_Get(t *testing.T) {
	_, mock, conn := newMock(t)

	want := &entity.Magazine{ID: 3, Name: "Wired", Category: "Tech"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, category")).
		WithArgs(int64(3)).
		WillReturnRows(magazineRows(want))

	got, err := postgres.NewMagazineRepo(conn).Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got, entityOpts); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestMagazineRepo_LoadOrCreate_Inserts(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectQuery("FROM magazines").WithArgs(int64(3)).WillReturnRows(magazineRows())
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO magazines (id, name, category) VALUES ($1, $2, $3)")).
		WithArgs(int64(3), "Wired", "Tech").
		WillReturnResult(sqlmock.NewResult(3, 1))

	got, created, err := postgres.NewMagazineRepo(conn).LoadOrCreate(context.Background(),
		&entity.Magazine{ID: 3, Name: "Wired", Category: "Tech"})
	if err != nil || !created {
		t.Fatalf("LoadOrCreate created=%v err=%v", created, err)
	}
	if got.Name != "Wired" || got.Category != "Tech" {
		t.Fatalf("got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestMagazineRepo_LoadOrCreate_Existing(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectQuery("FROM magazines").
		WithArgs(int64(3)).
		WillReturnRows(magazineRows(&entity.Magazine{ID: 3, Name: "Wired", Category: "Tech"}))

	got, created, err := postgres.NewMagazineRepo(conn).LoadOrCreate(context.Background(),
		&entity.Magazine{ID: 3, Name: "Other", Category: "Misc"})
	if err != nil || created {
		t.Fatalf("LoadOrCreate created=%v err=%v", created, err)
	}
	if got.Name != "Wired" || got.Category != "Tech" {
		t.Fatalf("got %+v, want stored row", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestMagazineRepo_Update(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectExec("UPDATE magazines").
		WithArgs("Byte", "Science", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := postgres.NewMagazineRepo(conn).Update(context.Background(),
		&entity.Magazine{ID: 3, Name: "Byte", Category: "Science"})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestMagazineRepo_Update_NotFound(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectExec("UPDATE magazines").
		WithArgs("Byte", "Science", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := postgres.NewMagazineRepo(conn).Update(context.Background(),
		&entity.Magazine{ID: 404, Name: "Byte", Category: "Science"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestMagazineRepo_Articles(t *testing.T) {
	_, mock, conn := newMock(t)

	want := []*entity.Article{{ID: 2, Title: "Deep dive", Content: "x", AuthorID: 1, MagazineID: 3}}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE magazine_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(articleRows(want...))

	got, err := postgres.NewMagazineRepo(conn).Articles(context.Background(), 3)
	if err != nil {
		t.Fatalf("Articles err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Articles mismatch (-want +got):\n%s", diff)
	}
}

func TestMagazineRepo_Contributors(t *testing.T) {
	_, mock, conn := newMock(t)

	want := []*entity.Author{{ID: 1, Name: "Jane"}, {ID: 2, Name: "Ravi"}}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT au.id, au.name")).
		WithArgs(int64(3)).
		WillReturnRows(authorRows(want...))

	got, err := postgres.NewMagazineRepo(conn).Contributors(context.Background(), 3)
	if err != nil {
		t.Fatalf("Contributors err=%v", err)
	}
	if diff := cmp.Diff(want, got, entityOpts); diff != "" {
		t.Fatalf("Contributors mismatch (-want +got):\n%s", diff)
	}
}

func TestMagazineRepo_AuthorsWithMoreArticlesThan(t *testing.T) {
	_, mock, conn := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(*) > $2")).
		WithArgs(int64(3), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "article_count"}).
			AddRow(int64(1), "Jane", int64(3)))

	got, err := postgres.NewMagazineRepo(conn).AuthorsWithMoreArticlesThan(context.Background(), 3, 2)
	if err != nil {
		t.Fatalf("AuthorsWithMoreArticlesThan err=%v", err)
	}
	want := []repository.AuthorArticleCount{{Author: &entity.Author{ID: 1, Name: "Jane"}, ArticleCount: 3}}
	if diff := cmp.Diff(want, got, entityOpts); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
