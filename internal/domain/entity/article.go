package entity

import "fmt"

// Article represents a piece written by an author for a magazine.
// ID is assigned by the store on insert. AuthorID and MagazineID are not
// checked for existence by this layer.
type Article struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   int64
	MagazineID int64
}

// NewArticle validates the fields and returns an in-memory article without an ID.
func NewArticle(title, content string, authorID, magazineID int64) (*Article, error) {
	a := &Article{
		Title:      title,
		Content:    content,
		AuthorID:   authorID,
		MagazineID: magazineID,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate validates the Article entity fields.
// Content is unrestricted.
func (a *Article) Validate() error {
	return ValidateArticleTitle(a.Title)
}

// AuthorStub returns a reference stub for the article's author.
// Only the ID is real; Name is UnknownName. Use the article use case to load the stored author.
func (a *Article) AuthorStub() *Author {
	return &Author{ID: a.AuthorID, Name: UnknownName, stub: true}
}

// MagazineStub returns a reference stub for the article's magazine.
// Only the ID is real; Name and Category are UnknownName.
func (a *Article) MagazineStub() *Magazine {
	return &Magazine{ID: a.MagazineID, Name: UnknownName, Category: UnknownName, stub: true}
}

func (a *Article) String() string {
	return fmt.Sprintf("<Article %s>", a.Title)
}
