package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
// pkg/errhttp maps them to HTTP status codes at the boundary.
var (
	// ErrItemNotFound indicates the requested clothing item does not exist.
	ErrItemNotFound = errors.New("clothing item not found")

	// ErrInvalidItem indicates the clothing item violates domain constraints.
	ErrInvalidItem = errors.New("invalid clothing item")

	// ErrInvalidInput indicates a category, subcategory, tag category, or tag
	// violates its structural constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryExists indicates a category with the same name already exists.
	// The comparison is byte-for-byte; "Tops" and "tops" are distinct.
	ErrCategoryExists = errors.New("category already exists")

	// ErrSubcategoryNotFound indicates the requested subcategory does not exist.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrSubcategoryExists indicates a subcategory with the same
	// (name, parent_category) pair already exists.
	ErrSubcategoryExists = errors.New("subcategory already exists")

	// ErrTagCategoryNotFound indicates the requested tag category does not exist.
	ErrTagCategoryNotFound = errors.New("tag category not found")

	// ErrTagCategoryExists indicates a tag category with the same name already exists.
	ErrTagCategoryExists = errors.New("tag category already exists")

	// ErrTagCategoryProtected indicates an attempt to delete one of the
	// protected default tag categories (color, theme, features).
	ErrTagCategoryProtected = errors.New("default tag categories cannot be deleted")

	// ErrTagNotFound indicates the requested tag does not exist.
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagExists indicates a tag with the same (name, tag_type) pair already exists.
	ErrTagExists = errors.New("tag already exists")
)
