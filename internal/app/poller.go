package app

import (
	"context"
	"time"

	"github.com/marquee-tv/marquee/internal/library"
	"github.com/marquee-tv/marquee/internal/logging"
	"github.com/marquee-tv/marquee/internal/state"
)

const defaultPollInterval = 30 * time.Second

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, starting with an immediate first cycle. It returns
// immediately.
//
// Cycles are deliberately not serialized: each one runs in its own goroutine,
// so a slow round trip never delays or suppresses the next tick. When cycles
// overlap, whichever resolves last is the catalog the store keeps.
func StartPoller(ctx context.Context, store *state.Store, client library.CatalogFetcher, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			go refresh(ctx, store, client)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, client library.CatalogFetcher) {
	videos, err := client.FetchCatalog(ctx)
	if err != nil {
		store.Update(nil, err)
		logging.L().WithError(err).Warn("catalog poll failed")
		return
	}
	store.Update(videos, nil)
	logging.L().WithField("videos", len(videos)).Debug("catalog refreshed")
}
