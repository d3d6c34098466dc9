package assets

import (
	"context"

	"ghost-storage-gcs/core/adapter"
	"ghost-storage-gcs/core/ghost"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Adapter is the storage contract the host drives.
type Adapter interface {
	Save(ctx context.Context, asset ghost.Asset) (string, error)
	Exists(ctx context.Context, filename, targetDir string) (bool, error)
	Read(ctx context.Context, opts ghost.ReadOptions) ([]byte, error)
	Delete(ctx context.Context, filename, targetDir string) (bool, error)
	Serve() fiber.Handler
	BaseURL() string
}

var _ Adapter = (*adapter.StorageAdapter)(nil)

// Service handles asset operations on behalf of the HTTP host.
type Service struct {
	store  Adapter
	logger *zap.Logger
}

// NewService creates a new asset service.
func NewService(store Adapter, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Save stores an uploaded file and returns its public URL.
func (s *Service) Save(ctx context.Context, asset ghost.Asset) (string, error) {
	url, err := s.store.Save(ctx, asset)
	if err != nil {
		return "", err
	}
	s.logger.Info("Asset saved", zap.String("name", asset.Name), zap.String("url", url))
	return url, nil
}

// Exists checks whether filename exists in dir.
func (s *Service) Exists(ctx context.Context, filename, dir string) (bool, error) {
	return s.store.Exists(ctx, filename, dir)
}

// Read returns the content of the object at path.
func (s *Service) Read(ctx context.Context, path string) ([]byte, error) {
	return s.store.Read(ctx, ghost.ReadOptions{Path: path})
}

// Delete removes filename from dir.
func (s *Service) Delete(ctx context.Context, filename, dir string) (bool, error) {
	ok, err := s.store.Delete(ctx, filename, dir)
	if err != nil {
		return false, err
	}
	s.logger.Info("Asset deleted", zap.String("filename", filename), zap.String("dir", dir))
	return ok, nil
}

// URL returns the public URL of an object path.
func (s *Service) URL(path string) string {
	return s.store.BaseURL() + path
}
