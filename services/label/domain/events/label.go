package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBatchRendered is the Watermill topic published after a label batch
// document is assembled and cached.
const TopicBatchRendered = "label.batch_rendered"

// BatchRenderedEvent is published after a batch document is produced.
// The document itself is not carried in the payload — consumers fetch it
// from the document cache by BatchID if they need the content.
type BatchRenderedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	BatchID    uuid.UUID `json:"batch_id"`
	LabelCount int       `json:"label_count"`
	Size       string    `json:"size"`
	OccurredAt time.Time `json:"occurred_at"`
}
