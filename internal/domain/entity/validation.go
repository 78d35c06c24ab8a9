package entity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Length bounds, inclusive on both ends.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ParseID converts raw text into an identifier.
// Text that is not a base-10 integer yields a ValidationError for field.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be an integer"}
	}
	return id, nil
}

// RequireID dereferences an identifier decoded from a request body.
// A nil id means the field was absent or null.
func RequireID(field string, id *int64) (int64, error) {
	if id == nil {
		return 0, &ValidationError{Field: field, Message: "must be an integer"}
	}
	return *id, nil
}

// ValidateAuthorName checks that name is non-empty once surrounding whitespace is removed.
func ValidateAuthorName(name string) error {
	return requireNonBlank("name", name)
}

// ValidateMagazineName checks the magazine name length.
// Length is counted in characters and the value is not trimmed first.
func ValidateMagazineName(name string) error {
	return requireLength("name", name, MagazineNameMinLength, MagazineNameMaxLength)
}

// ValidateCategory checks that category is non-empty once surrounding whitespace is removed.
func ValidateCategory(category string) error {
	return requireNonBlank("category", category)
}

// ValidateArticleTitle checks the article title length.
func ValidateArticleTitle(title string) error {
	return requireLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength)
}

func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	return nil
}

func requireLength(field, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n < minLen || n > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters", minLen, maxLen),
		}
	}
	return nil
}
