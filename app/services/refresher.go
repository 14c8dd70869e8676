package services

import (
	"context"
	"log"
	"time"

	"college-admin/app/state"
)

// StartRefresher re-fetches the cached collections on a fixed interval so
// long-lived sessions do not drift too far from the backend. A failed
// refresh is logged and retried on the next tick; the stale cache stays
// served in the meantime.
func StartRefresher(store *state.Store, fetcher state.Fetcher, interval time.Duration) {
	go func() {
		log.Printf("Cache refresher started (every %s)", interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := store.RefreshAll(ctx, fetcher); err != nil {
				log.Printf("Cache refresh failed: %v", err)
			}
			cancel()
		}
	}()
}
