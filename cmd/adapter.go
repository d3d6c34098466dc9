package cmd

import (
	"context"
	"fmt"

	"ghost-storage-gcs/core/adapter"
	"ghost-storage-gcs/core/config"
	"ghost-storage-gcs/core/logger"

	"go.uber.org/zap"
)

// setup loads configuration and builds the logger and the storage adapter.
func setup(ctx context.Context) (*config.Config, *zap.Logger, *adapter.StorageAdapter, error) {
	cfg, err := config.LoadConfig(envDir, configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if cfg.Storage.Active != "" && cfg.Storage.Active != "gcs" {
		logg.Warn("Storage block selects another adapter, using gcs settings anyway",
			zap.String("active", cfg.Storage.Active))
	}

	store, err := adapter.New(ctx, cfg.Storage.GCS, adapter.WithLogger(logg))
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logg, store, nil
}
