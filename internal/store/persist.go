package store

import (
	"context"
	"log/slog"
	"strings"

	"github.com/imdova/medicova-store-sub004/internal/domain"
	"github.com/imdova/medicova-store-sub004/internal/snapshot"
)

// Persist returns middleware that mirrors the cart slice to the snapshot
// store after every committed cart-namespace transition. Actions outside the
// cart namespace pass through untouched. A failed write is logged and
// swallowed: the in-memory transition has already committed and must not be
// rolled back.
func Persist(snapshots snapshot.Store, key string, logger *slog.Logger) Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, a domain.Action) domain.State {
			state := next(ctx, a)

			if !strings.HasPrefix(a.Name(), domain.NamespaceCart) {
				return state
			}

			if err := snapshots.Save(ctx, key, state.Cart); err != nil {
				snapshotWriteFailures.Inc()
				logger.ErrorContext(ctx, "cart snapshot write failed",
					slog.String("key", key),
					slog.String("action", a.Name()),
					slog.String("error", err.Error()),
				)
			}
			return state
		}
	}
}
