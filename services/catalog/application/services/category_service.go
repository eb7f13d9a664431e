package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/repositories"
)

// CategoryService orchestrates top-level category CRUD.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService returns a CategoryService wired with the given repository.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create persists a new category. The name comparison for uniqueness is
// byte-for-byte; a name differing only in case creates a second category.
func (s *CategoryService) Create(ctx context.Context, name, customIcon string) (*models.Category, error) {
	c, err := models.NewCategory(name, customIcon)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return c, nil
}

// List returns all categories ordered by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// UpdateIcon sets or clears (with "") the custom icon; no other field is
// mutable through this path.
func (s *CategoryService) UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Category, error) {
	c, err := s.repo.UpdateIcon(ctx, id, icon)
	if err != nil {
		return nil, fmt.Errorf("update category icon: %w", err)
	}
	return c, nil
}

// Delete removes a category permanently. Items referencing it are left alone.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SubcategoryService orchestrates subcategory CRUD.
type SubcategoryService struct {
	repo repositories.SubcategoryRepository
}

// NewSubcategoryService returns a SubcategoryService wired with the given repository.
func NewSubcategoryService(repo repositories.SubcategoryRepository) *SubcategoryService {
	return &SubcategoryService{repo: repo}
}

// Create persists a new subcategory under the given parent category name.
func (s *SubcategoryService) Create(ctx context.Context, name, parentCategory, customIcon string) (*models.Subcategory, error) {
	sub, err := models.NewSubcategory(name, parentCategory, customIcon)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("save subcategory: %w", err)
	}
	return sub, nil
}

// ListByParent returns subcategories whose parent matches exactly, by name ascending.
func (s *SubcategoryService) ListByParent(ctx context.Context, parent string) ([]*models.Subcategory, error) {
	subs, err := s.repo.ListByParent(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subs, nil
}

// UpdateIcon sets or clears (with "") the custom icon.
func (s *SubcategoryService) UpdateIcon(ctx context.Context, id uuid.UUID, icon string) (*models.Subcategory, error) {
	sub, err := s.repo.UpdateIcon(ctx, id, icon)
	if err != nil {
		return nil, fmt.Errorf("update subcategory icon: %w", err)
	}
	return sub, nil
}

// Delete removes a subcategory permanently; no cascade to items.
func (s *SubcategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}
