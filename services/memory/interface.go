package memory

import (
	"context"
	"time"

	"tazaticket/models"
)

// DefaultTTL is how long an untouched conversation survives before the store
// may drop it. Expiry is indistinguishable from a fresh user to callers.
const DefaultTTL = 24 * time.Hour

// Stats is the operator-facing view of the store.
type Stats struct {
	Entries    int      `json:"entries"`
	SampleKeys []string `json:"sampleKeys,omitempty"`
}

// Store persists one ConversationState per user. Get never reports "not
// found": unknown and expired users both come back as the default state.
// Put has full-replace semantics and refreshes the TTL.
type Store interface {
	Get(ctx context.Context, userID string) (*models.ConversationState, error)
	Put(ctx context.Context, state *models.ConversationState) error
	Delete(ctx context.Context, userID string) error
	Stats(ctx context.Context) (Stats, error)
	// Sweep removes expired entries and returns how many were dropped. The
	// Redis store expires server-side and sweeps nothing.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
