// Package entity defines the core domain entities and validation logic for the application.
// It contains the magazine-publishing objects Author, Magazine and Article, along with
// their validation rules and domain-specific errors.
package entity

import "fmt"

// UnknownName is the stand-in value carried by reference stubs.
const UnknownName = "Unknown"

// Author represents a writer identified by an externally assigned ID.
// Authors have no setters; a stored author is never renamed through this layer.
type Author struct {
	ID   int64
	Name string

	stub bool
}

// NewAuthor validates the fields and returns an in-memory author.
// It does not touch the store.
func NewAuthor(id int64, name string) (*Author, error) {
	a := &Author{ID: id, Name: name}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate validates the Author entity fields.
func (a *Author) Validate() error {
	return ValidateAuthorName(a.Name)
}

// IsStub reports whether a is a reference stub rather than a loaded row.
func (a *Author) IsStub() bool {
	return a.stub
}

func (a *Author) String() string {
	return fmt.Sprintf("<Author %s>", a.Name)
}
