package sync

import "context"

type SyncController interface {
	// Refresh fetches the three remote collections in one pass and replaces
	// the record store wholesale. On failure prior data stays in place and
	// the store's error flag is set; there is no automatic retry.
	Refresh(ctx context.Context) error
	// Subscribe opens change-notification listeners on the three collections.
	// Every notification triggers Refresh. The returned teardown closes all
	// listeners and must be invoked exactly once on session end.
	Subscribe(ctx context.Context) (teardown func())
}
