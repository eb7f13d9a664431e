package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// CategoryRepository is the persistence interface for top-level categories.
type CategoryRepository interface {
	// Create persists a new category. Returns ErrCategoryExists when a
	// category with the byte-identical name already exists.
	Create(ctx context.Context, c *models.Category) error

	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]*models.Category, error)

	// UpdateIcon sets (or clears, with "") the custom icon and returns the
	// updated category. No other field is mutable. Returns ErrCategoryNotFound
	// when absent.
	UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Category, error)

	// Delete removes a category permanently, without checking for items that
	// still reference it. Returns ErrCategoryNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubcategoryRepository is the persistence interface for subcategories.
type SubcategoryRepository interface {
	// Create persists a new subcategory. Returns ErrSubcategoryExists when the
	// (name, parent_category) pair already exists.
	Create(ctx context.Context, s *models.Subcategory) error

	// ListByParent returns subcategories whose parent_category exactly equals
	// parent (no case folding), ordered by name ascending.
	ListByParent(ctx context.Context, parent string) ([]*models.Subcategory, error)

	// UpdateIcon sets (or clears, with "") the custom icon and returns the
	// updated subcategory. Returns ErrSubcategoryNotFound when absent.
	UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Subcategory, error)

	// Delete removes a subcategory permanently. Returns ErrSubcategoryNotFound
	// when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
