package ports

import "context"

// PageCache stores rendered view payloads keyed by request path so repeated
// reads skip the database, and lets mutations mark a path stale.
type PageCache interface {
	// Get returns the cached payload for path. ok is false on a miss.
	Get(ctx context.Context, path string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, path string, payload []byte) error
	// Invalidate drops any cached rendering of path. Invalidating a path that
	// was never cached is a no-op.
	Invalidate(ctx context.Context, path string) error
}
