package app

import (
	"github.com/Lilith-exe/LilysCloset/pkg/cache"
	"github.com/Lilith-exe/LilysCloset/pkg/database"
	"github.com/Lilith-exe/LilysCloset/pkg/events"
	"github.com/Lilith-exe/LilysCloset/pkg/logger"
)

// Application holds shared infrastructure dependencies, passed explicitly to
// route registration instead of living in process-wide state.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient // worker only; nil in the API process
}
