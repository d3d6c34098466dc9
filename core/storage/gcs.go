package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// predefinedPublicRead is the Cloud Storage canned ACL granting allUsers read access.
const predefinedPublicRead = "publicRead"

// NewGCSClient creates a Cloud Storage client based on the configuration.
// Credentials come from the key file when set, otherwise from Application Default Credentials.
func NewGCSClient(ctx context.Context, cfg Config) (*gcs.Client, error) {
	var opts []option.ClientOption
	if cfg.Key != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Key))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}
	return client, nil
}

type gcsBucket struct {
	name   string
	handle *gcs.BucketHandle
}

// NewGCSBucket returns a Bucket backed by the given Cloud Storage client.
func NewGCSBucket(client *gcs.Client, name string) Bucket {
	return &gcsBucket{
		name:   name,
		handle: client.Bucket(name),
	}
}

func (b *gcsBucket) Name() string {
	return b.name
}

func (b *gcsBucket) Upload(ctx context.Context, localPath string, opts UploadOptions) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// Cancelling the writer's context aborts the upload if the copy fails.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := b.handle.Object(opts.Destination).NewWriter(ctx)
	w.CacheControl = opts.CacheControl
	w.ContentType = opts.ContentType
	if opts.Public {
		w.PredefinedACL = predefinedPublicRead
	}

	if _, err := io.Copy(w, f); err != nil {
		return err
	}
	return w.Close()
}

func (b *gcsBucket) Exists(ctx context.Context, name string) (bool, error) {
	_, err := b.handle.Object(name).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (b *gcsBucket) NewReader(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := b.handle.Object(name).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (b *gcsBucket) Delete(ctx context.Context, name string) error {
	return b.handle.Object(name).Delete(ctx)
}
