package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

// DefaultTagCategories are the protected tag category names. They are lazily
// recreated whenever the taxonomy is listed and can never be deleted.
var DefaultTagCategories = []string{"color", "theme", "features"}

// IsProtectedTagCategory reports whether name matches a protected default.
// The comparison is case-insensitive: "Color" is protected too.
func IsProtectedTagCategory(name string) bool {
	for _, d := range DefaultTagCategories {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// TagCategory is a named axis of tagging ("color", "theme", …), not to be
// confused with an item category. Names are unique.
type TagCategory struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewTagCategory constructs a TagCategory with a generated ID and current timestamp.
func NewTagCategory(name string) (*TagCategory, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidInput)
	}
	return &TagCategory{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Tag is a single permissible value within a tag category. Categories is the
// set of item-category names the tag applies to; an empty set means the tag
// applies globally. Uniqueness holds per (name, tag_type) pair.
type Tag struct {
	ID         uuid.UUID
	Name       string
	TagType    string // references a TagCategory name by convention
	Categories []string
	CreatedAt  time.Time
}

// NewTag constructs a Tag with a generated ID and current timestamp.
func NewTag(name, tagType string, categories []string) (*Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidInput)
	}
	if tagType == "" {
		return nil, fmt.Errorf("%w: tag_type is required", catalogdomain.ErrInvalidInput)
	}
	return &Tag{
		ID:         uuid.New(),
		Name:       name,
		TagType:    tagType,
		Categories: append([]string(nil), categories...),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// AppliesTo reports whether the tag is usable for items of the given category:
// either the tag is global (no category scoping) or the category is listed exactly.
func (t *Tag) AppliesTo(category string) bool {
	if len(t.Categories) == 0 {
		return true
	}
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}
