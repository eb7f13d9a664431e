package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// ItemRepository is the persistence interface for clothing items.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Create persists a new item, assigning the next inventory number
	// (max existing + 1) in the same transaction. The item's InventoryNumber
	// field is populated on return.
	Create(ctx context.Context, item *models.Item) error

	// GetByID returns the item with the given ID, or ErrItemNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// GetByInventoryNumber returns the item with the given inventory number,
	// or ErrItemNotFound.
	GetByInventoryNumber(ctx context.Context, n int) (*models.Item, error)

	// List returns all items ordered by ascending inventory number.
	List(ctx context.Context) ([]*models.Item, error)

	// Update persists the full state of an existing item. The stored
	// inventory number and created_at are never touched.
	// Returns ErrItemNotFound when the item does not exist.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item permanently. Returns ErrItemNotFound when absent.
	// Inventory numbers of remaining items are never compacted.
	Delete(ctx context.Context, id uuid.UUID) error
}
