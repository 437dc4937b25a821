package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicProductCreated is the Watermill topic published when a Product is created.
const TopicProductCreated = "product.created"

// ProductCreatedEvent is published after a new Product is persisted.
// Price is carried as a decimal string.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}
