// Package objectstore abstracts the bucket that holds original image bytes.
// The production backend is S3; an in-memory backend exists for tests and the
// local development server. The object store has no authority over a photo's
// existence: an object without a metadata record is an orphan and is never
// surfaced.
package objectstore

import (
	"context"
	"time"
)

// ObjectStore stores raw image bytes and hands out time-limited read URLs.
type ObjectStore interface {
	// Put writes the object under key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error

	// SignedGetURL returns a capability URL granting read access to the
	// object for the given duration.
	SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
