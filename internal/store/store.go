// Package store is the persistent key/value adapter behind the repositories.
// Each key holds one whole JSON-serialized collection; a save overwrites the
// entire collection. There are no partial writes and no transaction log: a
// collection is either replaced in full or left untouched.
package store

import "context"

type Store interface {
	// Load reads the collection stored under key into dst. A missing key is
	// not an error: dst is left at its zero value (the caller's default).
	Load(ctx context.Context, key string, dst any) error
	// Save serializes v and overwrites the collection stored under key.
	Save(ctx context.Context, key string, v any) error
	// Delete removes the key entirely. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
