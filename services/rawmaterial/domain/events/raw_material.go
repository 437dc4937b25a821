package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicRawMaterialUpserted is the Watermill topic published whenever a raw
// material record is written (created, restocked, or replaced).
const TopicRawMaterialUpserted = "rawmaterial.upserted"

// RawMaterialUpsertedEvent is published after a raw material write is persisted.
// CurrentStock carries the post-write value as a decimal string.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicRawMaterialUpserted).
type RawMaterialUpsertedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	RawMaterialID uuid.UUID `json:"raw_material_id"`
	Name          string    `json:"name"`
	CurrentStock  string    `json:"current_stock"`
	OccurredAt    time.Time `json:"occurred_at"`
}
