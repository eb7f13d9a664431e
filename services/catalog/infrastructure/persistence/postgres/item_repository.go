// Package postgres implements the catalog repository interfaces against
// PostgreSQL. The schema-less tags mapping and base64 images live in JSONB and
// TEXT columns — the document shape of the catalog on a relational engine.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/Lilith-exe/LilysCloset/pkg/database"
	"github.com/Lilith-exe/LilysCloset/pkg/events"
	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	domainevents "github.com/Lilith-exe/LilysCloset/services/catalog/domain/events"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

const itemColumns = `id, inventory_number, name, category, subcategory, image, tags, notes, created_at, updated_at`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Item mutations publish catalog events within the same transaction (outbox
// pattern); pass a nil bus to disable publishing.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Create persists a new item and publishes catalog.item.created in the same
// transaction. The inventory number is assigned by the insert itself:
// max existing + 1, computed and written in one statement so the value is
// never recomputed after deletions and two creates cannot read the same max.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO catalog_items (id, inventory_number, name, category, subcategory, image, tags, notes, created_at, updated_at)
			VALUES ($1, (SELECT COALESCE(MAX(inventory_number), 0) + 1 FROM catalog_items), $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING inventory_number`,
			item.ID, item.Name, item.Category, item.Subcategory, item.Image,
			tags, item.Notes, item.CreatedAt, item.UpdatedAt,
		)
		if err := row.Scan(&item.InventoryNumber); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemCreated, item)
	})
}

// GetByID retrieves an item by ID. Returns ErrItemNotFound when absent.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE id = $1`, id)
	return scanItem(row)
}

// GetByInventoryNumber retrieves an item by its inventory number.
// Returns ErrItemNotFound when absent.
func (r *ItemRepository) GetByInventoryNumber(ctx context.Context, n int) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE inventory_number = $1`, n)
	return scanItem(row)
}

// List retrieves all items ordered by ascending inventory number.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM catalog_items ORDER BY inventory_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update persists the full mutable state of an existing item and publishes
// catalog.item.updated in the same transaction. The inventory number and
// created_at columns are deliberately not in the SET list.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE catalog_items
			SET name = $2, category = $3, subcategory = $4, image = $5, tags = $6, notes = $7, updated_at = $8
			WHERE id = $1`,
			item.ID, item.Name, item.Category, item.Subcategory, item.Image,
			tags, item.Notes, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("update item: %w", err)
		} else if n == 0 {
			return catalogdomain.ErrItemNotFound
		}

		return r.publish(tx, domainevents.TopicItemUpdated, item)
	})
}

// Delete removes an item permanently and publishes catalog.item.deleted in the
// same transaction. Returns ErrItemNotFound when absent.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			DELETE FROM catalog_items WHERE id = $1
			RETURNING inventory_number, name, category`, id)

		deleted := models.Item{ID: id}
		if err := row.Scan(&deleted.InventoryNumber, &deleted.Name, &deleted.Category); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return catalogdomain.ErrItemNotFound
			}
			return fmt.Errorf("delete item: %w", err)
		}

		return r.publish(tx, domainevents.TopicItemDeleted, &deleted)
	})
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, item *models.Item) error {
	if r.bus == nil {
		return nil
	}

	event := domainevents.ItemEvent{
		EventID:         uuid.New(),
		Version:         1,
		ItemID:          item.ID,
		InventoryNumber: item.InventoryNumber,
		Name:            item.Name,
		Category:        item.Category,
		OccurredAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	if err := p.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item models.Item
		tags []byte
	)
	err := row.Scan(
		&item.ID, &item.InventoryNumber, &item.Name, &item.Category,
		&item.Subcategory, &item.Image, &tags, &item.Notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	item.Tags = models.TagMap{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return &item, nil
}
