package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Lilith-exe/LilysCloset/pkg/app"
	"github.com/Lilith-exe/LilysCloset/pkg/cache"
	"github.com/Lilith-exe/LilysCloset/pkg/config"
	"github.com/Lilith-exe/LilysCloset/pkg/database"
	"github.com/Lilith-exe/LilysCloset/pkg/events"
	"github.com/Lilith-exe/LilysCloset/pkg/logger"
	"github.com/Lilith-exe/LilysCloset/pkg/telemetry"
	catalogEvents "github.com/Lilith-exe/LilysCloset/services/catalog/domain/events"
	"github.com/Lilith-exe/LilysCloset/services/catalog/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// itemTopics lists every topic the catalog publishes item lifecycle events on.
var itemTopics = []string{
	catalogEvents.TopicItemCreated,
	catalogEvents.TopicItemUpdated,
	catalogEvents.TopicItemDeleted,
}

// registerSubscribers wires the audit-log handler onto every item topic.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	auditLog := postgres.NewAuditLogRepository(a.Db)
	dedup := cache.NewEventDedup(a.Redis)

	for _, topic := range itemTopics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handleItemEvent(a, auditLog, dedup, topic))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", itemTopics)
	return nil
}

// handleItemEvent returns a handler that appends one audit row per event.
// Handlers must be idempotent — EventBus retries up to 3× on failure, and
// delivery is at-least-once, so the Redis dedup marker filters replays before
// the insert (which is itself idempotent on event_id as a second guard).
func handleItemEvent(
	a *app.Application,
	auditLog *postgres.AuditLogRepository,
	dedup *cache.EventDedup,
	topic string,
) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		first, err := dedup.MarkProcessed(ctx, evt.EventID)
		if err != nil {
			// Dedup is an optimization; fall through to the idempotent insert.
			a.Logger.WarnContext(ctx, "event dedup unavailable",
				"event_id", evt.EventID, "error", err)
		} else if !first {
			a.Logger.DebugContext(ctx, "duplicate event skipped",
				"topic", topic, "event_id", evt.EventID)
			return nil
		}

		if err := auditLog.Record(ctx, topic, evt); err != nil {
			// Forget the marker so the retry is not swallowed by dedup.
			if ferr := dedup.Forget(ctx, evt.EventID); ferr != nil {
				a.Logger.WarnContext(ctx, "failed to clear dedup marker",
					"event_id", evt.EventID, "error", ferr)
			}
			return err
		}

		a.Logger.InfoContext(ctx, "audit event recorded",
			"topic", topic,
			"item_id", evt.ItemID,
			"inventory_number", evt.InventoryNumber,
		)
		return nil
	}
}
