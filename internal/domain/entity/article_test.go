package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	a, err := NewArticle("Go at scale", "", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.ID)
	assert.Equal(t, "Go at scale", a.Title)
	assert.Equal(t, "", a.Content)
	assert.Equal(t, int64(1), a.AuthorID)
	assert.Equal(t, int64(2), a.MagazineID)
	assert.Equal(t, "<Article Go at scale>", a.String())
}

func TestNewArticle_TitleBounds(t *testing.T) {
	for _, n := range []int{5, 50} {
		_, err := NewArticle(strings.Repeat("a", n), "body", 1, 1)
		assert.NoError(t, err, "length %d", n)
	}
	for _, n := range []int{4, 51} {
		a, err := NewArticle(strings.Repeat("a", n), "body", 1, 1)
		assert.Nil(t, a)
		assert.ErrorIs(t, err, ErrValidationFailed, "length %d", n)
	}
}

func TestArticle_Stubs(t *testing.T) {
	a := &Article{ID: 9, Title: "Hello world", AuthorID: 3, MagazineID: 4}

	author := a.AuthorStub()
	assert.True(t, author.IsStub())
	assert.Equal(t, int64(3), author.ID)
	assert.Equal(t, UnknownName, author.Name)

	mag := a.MagazineStub()
	assert.True(t, mag.IsStub())
	assert.Equal(t, int64(4), mag.ID)
	assert.Equal(t, UnknownName, mag.Name)
	assert.Equal(t, UnknownName, mag.Category)
	assert.NoError(t, mag.Validate())
}
