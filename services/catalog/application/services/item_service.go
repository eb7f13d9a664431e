package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/repositories"
)

// CreateItemInput carries the caller-supplied fields for a new item.
// Name, Category, and Image are required; the rest default to empty.
type CreateItemInput struct {
	Name        string
	Category    string
	Subcategory string
	Image       string
	Notes       string
	Tags        models.TagMap
}

// ItemService orchestrates clothing item CRUD. Inventory-number assignment and
// event publishing happen in the repository layer, inside the write transaction.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates and persists an item. The returned item carries the
// generated ID, the assigned inventory number, and timestamps.
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	item, err := models.NewItem(in.Name, in.Category, in.Subcategory, in.Image, in.Notes, in.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns all items ordered by ascending inventory number.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update applies a partial update and returns the stored result. An empty
// patch is a no-op: the item is returned as-is and updated_at is not touched.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if patch.IsEmpty() {
		return item, nil
	}

	if err := item.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// Delete removes an item permanently. Categories, subcategories, and tags that
// reference the item's values are untouched.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
