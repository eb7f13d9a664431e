package postgres

import (
	"context"
	"fmt"

	"github.com/Lilith-exe/LilysCloset/pkg/database"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/events"
)

// AuditLogRepository appends item lifecycle events to the audit log.
// Writes are idempotent on event_id so redelivered events are recorded once.
type AuditLogRepository struct {
	db *database.Database
}

// NewAuditLogRepository returns a Postgres-backed AuditLogRepository.
func NewAuditLogRepository(db *database.Database) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Record inserts one audit row for the given event type and payload.
func (r *AuditLogRepository) Record(ctx context.Context, eventType string, evt events.ItemEvent) error {
	const q = `
		INSERT INTO catalog_audit_log
			(event_id, event_type, item_id, inventory_number, item_name, category, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_id) DO NOTHING`

	_, err := r.db.DB().ExecContext(ctx, q,
		evt.EventID, eventType, evt.ItemID, evt.InventoryNumber, evt.Name, evt.Category, evt.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}
