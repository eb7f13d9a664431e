package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the item repository. One topic per mutation so
// consumers can subscribe selectively.
const (
	TopicItemCreated = "catalog.item.created"
	TopicItemUpdated = "catalog.item.updated"
	TopicItemDeleted = "catalog.item.deleted"
)

// ItemEvent is the shared payload for all three item topics. The topic itself
// carries the action; the payload identifies the item as it was at publish time.
// Published within the same transaction as the write (outbox pattern), so an
// event exists exactly when the corresponding row change committed.
type ItemEvent struct {
	EventID         uuid.UUID `json:"event_id"` // unique per publish, used for consumer deduplication
	Version         int       `json:"version"`  // schema version; increment on breaking changes
	ItemID          uuid.UUID `json:"item_id"`
	InventoryNumber int       `json:"inventory_number"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	OccurredAt      time.Time `json:"occurred_at"`
}
