package objectstore

import (
	"context"
	"io"
)

// Store is the narrow object-store surface the gateway needs: a metadata
// probe, a version-pinned read and a streaming write.
type Store interface {
	// Head probes for an object without transferring data.
	Head(ctx context.Context, bucket, key string) error

	// Get opens a readable stream and reports the object size. versionID may
	// be empty to read the latest version.
	Get(ctx context.Context, bucket, key, versionID string) (io.ReadCloser, int64, error)

	// Put streams r into the object and returns only once the store has
	// acknowledged the whole upload.
	Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error

	// HealthCheck verifies store connectivity.
	HealthCheck(ctx context.Context) error
}
