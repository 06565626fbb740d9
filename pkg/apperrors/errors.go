// Package apperrors defines the sentinel errors shared across festbot.
package apperrors

import "errors"

var (
	// ErrSyncDisabled is reported when the sync endpoints are hit without a
	// sync token configured.
	ErrSyncDisabled = errors.New("endpoint disabled: no sync token configured")

	// ErrIndexStale marks a catalog sync that published the snapshot but
	// could not rebuild the retrieval index.
	ErrIndexStale = errors.New("retrieval index rebuild failed")
)
