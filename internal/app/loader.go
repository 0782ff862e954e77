package app

import (
	"context"
	"log/slog"

	"github.com/five82/tripdesk/internal/roster"
	"github.com/five82/tripdesk/internal/state"
	"github.com/five82/tripdesk/internal/users"
)

// Load fetches users once, derives the record set, and publishes it to store.
// A failed fetch is logged and recorded as an empty set; it is never returned
// to the caller. A fetch that outlives ctx leaves the store untouched.
func Load(ctx context.Context, fetcher users.Fetcher, store *state.Store, logger *slog.Logger) state.Snapshot {
	if logger == nil {
		logger = slog.Default()
	}

	list, err := fetcher.FetchUsers(ctx)
	if ctx.Err() != nil {
		logger.Debug("user load abandoned", "error", ctx.Err())
		return store.Snapshot()
	}
	if err != nil {
		logger.Error("fetch users failed", "error", err)
		store.Update(nil, err)
		return store.Snapshot()
	}

	records := roster.Derive(list)
	store.Update(records, nil)
	logger.Info("users loaded", "count", len(records))
	return store.Snapshot()
}
