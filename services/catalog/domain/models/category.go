package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

// Category is a top-level item category. Names are unique exactly as stored —
// no case normalization is performed, so "Accessories" and "accessories" are
// two distinct categories.
type Category struct {
	ID         uuid.UUID
	Name       string
	CustomIcon string // base64-encoded, empty when unset
	CreatedAt  time.Time
}

// NewCategory constructs a Category with a generated ID and current timestamp.
func NewCategory(name, customIcon string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidInput)
	}
	return &Category{
		ID:         uuid.New(),
		Name:       name,
		CustomIcon: customIcon,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Subcategory is a second-level category scoped to a parent. The parent is a
// free-text reference matched against the category store by convention only.
// Uniqueness holds per (name, parent_category) pair.
type Subcategory struct {
	ID             uuid.UUID
	Name           string
	ParentCategory string
	CustomIcon     string
	CreatedAt      time.Time
}

// NewSubcategory constructs a Subcategory with a generated ID and current timestamp.
func NewSubcategory(name, parentCategory, customIcon string) (*Subcategory, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidInput)
	}
	if parentCategory == "" {
		return nil, fmt.Errorf("%w: parent_category is required", catalogdomain.ErrInvalidInput)
	}
	return &Subcategory{
		ID:             uuid.New(),
		Name:           name,
		ParentCategory: parentCategory,
		CustomIcon:     customIcon,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
