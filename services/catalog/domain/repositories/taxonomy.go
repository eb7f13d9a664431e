package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// TaxonomyRepository is the persistence interface for tag categories and tags.
// The lazy creation of protected defaults is application-layer behavior; the
// repository only exposes the raw collections.
type TaxonomyRepository interface {
	// CreateTagCategory persists a new tag category. Returns
	// ErrTagCategoryExists on duplicate name.
	CreateTagCategory(ctx context.Context, tc *models.TagCategory) error

	// ListTagCategories returns all tag categories ordered by name ascending.
	ListTagCategories(ctx context.Context) ([]*models.TagCategory, error)

	// GetTagCategory returns the tag category with the given ID, or
	// ErrTagCategoryNotFound.
	GetTagCategory(ctx context.Context, id uuid.UUID) (*models.TagCategory, error)

	// DeleteTagCategory removes a tag category permanently. Returns
	// ErrTagCategoryNotFound when absent. Protection of the default names is
	// enforced by the application service, not here.
	DeleteTagCategory(ctx context.Context, id uuid.UUID) error

	// CreateTag persists a new tag. Returns ErrTagExists when the
	// (name, tag_type) pair already exists.
	CreateTag(ctx context.Context, t *models.Tag) error

	// ListTags returns all tags ordered by tag_type ascending.
	ListTags(ctx context.Context) ([]*models.Tag, error)

	// ListTagsByType returns tags with the exact tag_type, ordered by name ascending.
	ListTagsByType(ctx context.Context, tagType string) ([]*models.Tag, error)

	// DeleteTag removes a tag permanently. Returns ErrTagNotFound when absent.
	DeleteTag(ctx context.Context, id uuid.UUID) error
}
