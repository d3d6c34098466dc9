package storage

import (
	"context"
	"fmt"
	"io"
)

// UploadOptions describes how a local file is written to the bucket.
type UploadOptions struct {
	// Destination is the object path inside the bucket, using forward slashes.
	Destination string
	// CacheControl is stored as the object's Cache-Control metadata.
	CacheControl string
	// ContentType is stored as the object's Content-Type. Empty lets the backend decide.
	ContentType string
	// Public requests a public-read ACL on the object.
	// It must stay false for buckets with uniform bucket-level access.
	Public bool
}

// Bucket is a handle to one remote bucket.
// Implementations must be safe for concurrent use.
type Bucket interface {
	// Name returns the bucket name the handle is scoped to.
	Name() string
	// Upload copies the file at localPath to the bucket.
	Upload(ctx context.Context, localPath string, opts UploadOptions) error
	// Exists reports whether an object exists. A missing object is not an error.
	Exists(ctx context.Context, name string) (bool, error)
	// NewReader opens a streaming read of an object.
	// It's the caller's responsibility to close the returned ReadCloser.
	NewReader(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes an object.
	Delete(ctx context.Context, name string) error
}

// NewBucket creates a bucket handle using the driver selected by the configuration.
func NewBucket(ctx context.Context, cfg Config) (Bucket, error) {
	cfg = cfg.WithDefaults()

	switch cfg.Driver {
	case DriverGCS:
		client, err := NewGCSClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewGCSBucket(client, cfg.Bucket), nil
	case DriverInterop:
		client, err := NewInteropClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewInteropBucket(client, cfg.Bucket), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
