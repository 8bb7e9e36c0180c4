// Package session provides the opaque per-session key-value blob store the
// cart rides in between requests. The store is passed explicitly to whoever
// needs it; there is no ambient session state.
package session

import "context"

// Store reads and writes opaque string blobs keyed by session id.
type Store interface {
	// Get returns the blob for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the blob, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the blob. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
