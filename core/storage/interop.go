package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InteropEndpoint is the Cloud Storage XML API host that accepts S3-style requests.
const InteropEndpoint = "storage.googleapis.com"

// InteropClient is the subset of the MinIO client used by the interop driver.
type InteropClient interface {
	// FPutObject uploads a local file.
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// StatObject fetches object metadata.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// GetObject downloads an object.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// NewInteropClient creates a MinIO client pointed at the Cloud Storage interoperability API.
func NewInteropClient(cfg Config) (InteropClient, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = InteropEndpoint
	}
	// Minio expects endpoint without scheme
	secure := !strings.HasPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create interop client: %w", err)
	}
	// Minio connects lazily; nothing goes over the wire until the first object call.

	return &minioClientWrapper{Client: minioClient}, nil
}

type minioClientWrapper struct {
	*minio.Client
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	obj, err := c.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

type interopBucket struct {
	client InteropClient
	name   string
}

// NewInteropBucket returns a Bucket backed by an S3-compatible client.
func NewInteropBucket(client InteropClient, name string) Bucket {
	return &interopBucket{client: client, name: name}
}

func (b *interopBucket) Name() string {
	return b.name
}

func (b *interopBucket) Upload(ctx context.Context, localPath string, opts UploadOptions) error {
	putOpts := minio.PutObjectOptions{
		CacheControl: opts.CacheControl,
		ContentType:  opts.ContentType,
	}
	if opts.Public {
		putOpts.UserMetadata = map[string]string{"x-amz-acl": "public-read"}
	}
	_, err := b.client.FPutObject(ctx, b.name, opts.Destination, localPath, putOpts)
	return err
}

func (b *interopBucket) Exists(ctx context.Context, name string) (bool, error) {
	_, err := b.client.StatObject(ctx, b.name, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}

func (b *interopBucket) NewReader(ctx context.Context, name string) (io.ReadCloser, error) {
	return b.client.GetObject(ctx, b.name, name, minio.GetObjectOptions{})
}

func (b *interopBucket) Delete(ctx context.Context, name string) error {
	return b.client.RemoveObject(ctx, b.name, name, minio.RemoveObjectOptions{})
}
