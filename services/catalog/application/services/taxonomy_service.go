package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/repositories"
)

// TagCategoryFilterAll is the sentinel category value that disables the
// per-category tag filter in ListTagsByType.
const TagCategoryFilterAll = "all"

// TaxonomyService orchestrates tag categories and tags, including the lazy
// self-healing of the protected defaults.
type TaxonomyService struct {
	repo repositories.TaxonomyRepository
}

// NewTaxonomyService returns a TaxonomyService wired with the given repository.
func NewTaxonomyService(repo repositories.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

// ListTagCategories returns all tag categories, lazily inserting any missing
// protected defaults ("color", "theme", "features") first. Listing a freshly
// initialized store therefore always yields at least the three defaults, and
// repeated calls never create duplicates.
func (s *TaxonomyService) ListTagCategories(ctx context.Context) ([]*models.TagCategory, error) {
	tcs, err := s.repo.ListTagCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tag categories: %w", err)
	}

	created := false
	for _, def := range models.DefaultTagCategories {
		if containsTagCategory(tcs, def) {
			continue
		}
		tc, err := models.NewTagCategory(def)
		if err != nil {
			return nil, err
		}
		// A concurrent lister may have inserted the default already; that is
		// exactly the state we want.
		if err := s.repo.CreateTagCategory(ctx, tc); err != nil && !errors.Is(err, catalogdomain.ErrTagCategoryExists) {
			return nil, fmt.Errorf("create default tag category %q: %w", def, err)
		}
		created = true
	}

	if created {
		if tcs, err = s.repo.ListTagCategories(ctx); err != nil {
			return nil, fmt.Errorf("list tag categories: %w", err)
		}
	}
	return tcs, nil
}

// TagCategoryNames returns the self-healed tag category names, used by the
// query engine as the set of searchable tag axes.
func (s *TaxonomyService) TagCategoryNames(ctx context.Context) ([]string, error) {
	tcs, err := s.ListTagCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(tcs))
	for i, tc := range tcs {
		names[i] = tc.Name
	}
	return names, nil
}

// CreateTagCategory persists a new tag category.
func (s *TaxonomyService) CreateTagCategory(ctx context.Context, name string) (*models.TagCategory, error) {
	tc, err := models.NewTagCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateTagCategory(ctx, tc); err != nil {
		return nil, fmt.Errorf("save tag category: %w", err)
	}
	return tc, nil
}

// DeleteTagCategory removes a tag category unless its name matches a protected
// default (case-insensitively), in which case it fails with
// ErrTagCategoryProtected. Tags of that type are untouched either way.
func (s *TaxonomyService) DeleteTagCategory(ctx context.Context, id uuid.UUID) error {
	tc, err := s.repo.GetTagCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("get tag category: %w", err)
	}
	if models.IsProtectedTagCategory(tc.Name) {
		return fmt.Errorf("%w: %q", catalogdomain.ErrTagCategoryProtected, tc.Name)
	}
	if err := s.repo.DeleteTagCategory(ctx, id); err != nil {
		return fmt.Errorf("delete tag category: %w", err)
	}
	return nil
}

// CreateTag persists a new tag, optionally scoped to specific item categories.
func (s *TaxonomyService) CreateTag(ctx context.Context, name, tagType string, categories []string) (*models.Tag, error) {
	t, err := models.NewTag(name, tagType, categories)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateTag(ctx, t); err != nil {
		return nil, fmt.Errorf("save tag: %w", err)
	}
	return t, nil
}

// ListTags returns all tags ordered by tag_type ascending.
func (s *TaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ListTagsByType returns tags of the exact tag_type. When category is
// non-empty and not the "all" sentinel, the result is narrowed to tags that
// are global or explicitly list that category.
func (s *TaxonomyService) ListTagsByType(ctx context.Context, tagType, category string) ([]*models.Tag, error) {
	tags, err := s.repo.ListTagsByType(ctx, tagType)
	if err != nil {
		return nil, fmt.Errorf("list tags by type: %w", err)
	}

	if category == "" || category == TagCategoryFilterAll {
		return tags, nil
	}

	filtered := make([]*models.Tag, 0, len(tags))
	for _, t := range tags {
		if t.AppliesTo(category) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// DeleteTag removes a tag permanently. Items carrying the tag's value keep it.
func (s *TaxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTag(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func containsTagCategory(tcs []*models.TagCategory, name string) bool {
	for _, tc := range tcs {
		if strings.EqualFold(tc.Name, name) {
			return true
		}
	}
	return false
}
