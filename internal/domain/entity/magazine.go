package entity

import "fmt"

// Magazine represents a publication that articles are written for.
// Name and Category may be edited in memory through SetName and SetCategory;
// persisting the edit is a separate, explicit step.
type Magazine struct {
	ID       int64
	Name     string
	Category string

	stub bool
}

// NewMagazine validates the fields and returns an in-memory magazine.
func NewMagazine(id int64, name, category string) (*Magazine, error) {
	m := &Magazine{ID: id, Name: name, Category: category}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate validates the Magazine entity fields.
func (m *Magazine) Validate() error {
	if err := ValidateMagazineName(m.Name); err != nil {
		return err
	}
	return ValidateCategory(m.Category)
}

// SetName replaces the name after validating it. On failure the name is left unchanged.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.Name = name
	return nil
}

// SetCategory replaces the category after validating it. On failure the category is left unchanged.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.Category = category
	return nil
}

// IsStub reports whether m is a reference stub rather than a loaded row.
func (m *Magazine) IsStub() bool {
	return m.stub
}

func (m *Magazine) String() string {
	return fmt.Sprintf("<Magazine %s, Category: %s>", m.Name, m.Category)
}
