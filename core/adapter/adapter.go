package adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ghost-storage-gcs/core/ghost"
	"ghost-storage-gcs/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StorageAdapter stores host assets in a Cloud Storage bucket.
// It holds no mutable state after New returns and is safe for concurrent use.
type StorageAdapter struct {
	config  storage.Config
	bucket  storage.Bucket
	base    ghost.Base
	baseURL string
	logger  *zap.Logger
}

// Option customizes a StorageAdapter.
type Option func(*StorageAdapter)

// WithBucket injects the bucket handle instead of building one from the configuration.
func WithBucket(b storage.Bucket) Option {
	return func(a *StorageAdapter) { a.bucket = b }
}

// WithBase replaces the default target-dir and unique-name helpers.
func WithBase(b ghost.Base) Option {
	return func(a *StorageAdapter) { a.base = b }
}

// WithLogger sets the logger. Operations log at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(a *StorageAdapter) { a.logger = l }
}

// New validates the configuration, applies defaults and prepares the bucket handle.
// Building a handle from the configuration does not contact the bucket.
func New(ctx context.Context, cfg storage.Config, opts ...Option) (*StorageAdapter, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, &ConfigurationError{Field: "bucket", Err: ErrMissingBucket}
	}
	cfg = cfg.WithDefaults()

	a := &StorageAdapter{
		config:  cfg,
		baseURL: buildBaseURL(cfg),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.bucket == nil {
		b, err := storage.NewBucket(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.bucket = b
	}
	if a.base == nil {
		a.base = ghost.NewStorageBase(a.Exists)
	}
	a.logger = a.logger.With(zap.String("bucket", cfg.Bucket))

	return a, nil
}

func buildBaseURL(cfg storage.Config) string {
	protocol := "https"
	if cfg.Insecure {
		protocol = "http"
	}
	domain := cfg.AssetDomain
	if domain == "" {
		domain = cfg.Bucket + "." + storage.DefaultDomainSuffix
	}
	return protocol + "://" + domain + "/"
}

// Save uploads the asset under a unique, date-bucketed name and returns its public URL.
func (a *StorageAdapter) Save(ctx context.Context, asset ghost.Asset) (string, error) {
	targetDir := a.base.GetTargetDir("")
	fileName, err := a.base.GetUniqueFileName(ctx, asset, targetDir)
	if err != nil {
		return "", err
	}
	name := normalizePath(fileName)

	opts := storage.UploadOptions{
		Destination:  name,
		CacheControl: fmt.Sprintf("public, max-age=%d", a.config.MaxAge),
		ContentType:  asset.Type,
		// Per-object ACLs are rejected by buckets with uniform bucket-level access.
		Public: !a.config.UniformBucketLevelAccess,
	}

	a.logger.Debug("Uploading asset", zap.String("path", name), zap.String("source", asset.Path))
	if err := a.bucket.Upload(ctx, asset.Path, opts); err != nil {
		return "", err
	}

	return a.baseURL + name, nil
}

// Exists reports whether filename, optionally inside targetDir, is in the bucket.
func (a *StorageAdapter) Exists(ctx context.Context, filename, targetDir string) (bool, error) {
	name := objectPath(filename, targetDir)
	a.logger.Debug("Checking asset", zap.String("path", name))
	return a.bucket.Exists(ctx, name)
}

// Read returns the full content of the object at opts.Path.
// An empty object yields a zero-length, non-nil slice.
func (a *StorageAdapter) Read(ctx context.Context, opts ghost.ReadOptions) ([]byte, error) {
	a.logger.Debug("Reading asset", zap.String("path", opts.Path))
	rc, err := a.bucket.NewReader(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes filename, optionally inside targetDir, from the bucket.
// It returns true on success; failures are always reported through the error.
func (a *StorageAdapter) Delete(ctx context.Context, filename, targetDir string) (bool, error) {
	name := objectPath(filename, targetDir)
	a.logger.Debug("Deleting asset", zap.String("path", name))
	if err := a.bucket.Delete(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// Serve returns the middleware the host mounts in front of its asset route.
// Asset URLs are absolute, so it only passes the request on.
func (a *StorageAdapter) Serve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

// BaseURL returns the URL prefix of every saved asset, with a trailing slash.
func (a *StorageAdapter) BaseURL() string {
	return a.baseURL
}

// Config returns the configuration with defaults applied.
func (a *StorageAdapter) Config() storage.Config {
	return a.config
}
