package snapshot

import (
	"context"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

// DefaultCartKey is the storage key for a cart snapshot when no per-user
// scoping applies.
const DefaultCartKey = "cart"

// Store persists serialized cart snapshots in a string-keyed key-value store.
// No other component touches durable storage directly.
type Store interface {
	// Load reads the snapshot under key. A missing key or corrupt snapshot
	// yields the canonical empty cart state with a nil error; only transport
	// failures are reported.
	Load(ctx context.Context, key string) (domain.CartState, error)

	// Save serializes and writes the snapshot, overwriting any previous one.
	Save(ctx context.Context, key string, state domain.CartState) error

	// Delete removes the snapshot under key.
	Delete(ctx context.Context, key string) error
}
