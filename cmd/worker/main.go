package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Douglascrc/AutoFlex/pkg/app"
	"github.com/Douglascrc/AutoFlex/pkg/cache"
	"github.com/Douglascrc/AutoFlex/pkg/config"
	"github.com/Douglascrc/AutoFlex/pkg/database"
	"github.com/Douglascrc/AutoFlex/pkg/events"
	"github.com/Douglascrc/AutoFlex/pkg/logger"
	"github.com/Douglascrc/AutoFlex/pkg/telemetry"
	productEvents "github.com/Douglascrc/AutoFlex/services/product/domain/events"
	productpg "github.com/Douglascrc/AutoFlex/services/product/infrastructure/persistence/postgres"
	materialEvents "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/events"
	materialpg "github.com/Douglascrc/AutoFlex/services/rawmaterial/infrastructure/persistence/postgres"
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

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more contexts publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		productEvents.TopicProductCreated:       handleProductCreated(a),
		materialEvents.TopicRawMaterialUpserted: handleRawMaterialUpserted(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics",
		[]string{productEvents.TopicProductCreated, materialEvents.TopicRawMaterialUpserted})
	return nil
}

// handleProductCreated returns a handler for product.created events.
// Handlers must be idempotent; the bus retries up to 3 times on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served
// from cache. The full record is re-read from Postgres because the event
// carries only the identity fields.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	products := productpg.NewProductRepository(a.Db, nil)
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		p, err := products.GetByID(ctx, evt.ProductID)
		if err != nil {
			// Deleted before the event was consumed; nothing to warm.
			a.Logger.WarnContext(ctx, "product gone before cache warm",
				"product_id", evt.ProductID, "error", err)
			return nil
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:          p.ID,
			Name:        p.Name.String(),
			Description: p.Description,
			Price:       p.Price.String(),
			CreatedAt:   p.CreatedAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "product_id", evt.ProductID)
		}

		return nil
	}
}

// handleRawMaterialUpserted returns a handler for rawmaterial.upserted events.
// Re-reads the record so the cache reflects the post-accumulation stock even
// when events arrive out of order.
func handleRawMaterialUpserted(a *app.Application) func(context.Context, *message.Message) error {
	materials := materialpg.NewRawMaterialRepository(a.Db, nil)
	materialCache := cache.NewMaterialCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt materialEvents.RawMaterialUpsertedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		m, err := materials.GetByID(ctx, evt.RawMaterialID)
		if err != nil {
			a.Logger.WarnContext(ctx, "raw material gone before cache warm",
				"raw_material_id", evt.RawMaterialID, "error", err)
			return nil
		}

		if err := materialCache.Set(ctx, &cache.CachedMaterial{
			ID:           m.ID,
			Name:         m.Name.String(),
			Description:  m.Description,
			Cost:         m.Cost.String(),
			CurrentStock: m.CurrentStock.String(),
			CreatedAt:    m.CreatedAt,
		}); err != nil {
			a.Logger.WarnContext(ctx, "cache warm failed for rawmaterial.upserted",
				"raw_material_id", evt.RawMaterialID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "raw_material_id", evt.RawMaterialID)
		}

		return nil
	}
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
