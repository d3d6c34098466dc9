package storage_test

import (
	"testing"

	"ghost-storage-gcs/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		cfg := storage.Config{Bucket: "assets"}.WithDefaults()
		assert.Equal(t, storage.DefaultMaxAge, cfg.MaxAge)
		assert.Equal(t, storage.DriverGCS, cfg.Driver)
		assert.Equal(t, 30, cfg.TimeoutSeconds)
		assert.False(t, cfg.Insecure)
		assert.False(t, cfg.UniformBucketLevelAccess)
	})

	t.Run("Explicit", func(t *testing.T) {
		in := storage.Config{
			Bucket:                   "assets",
			MaxAge:                   60,
			Driver:                   storage.DriverInterop,
			Insecure:                 true,
			UniformBucketLevelAccess: true,
		}
		assert.Equal(t, in.WithDefaults(), storage.Config{
			Bucket:                   "assets",
			MaxAge:                   60,
			Driver:                   storage.DriverInterop,
			Insecure:                 true,
			UniformBucketLevelAccess: true,
			TimeoutSeconds:           30,
		})
	})
}

func TestParseOptions(t *testing.T) {
	t.Run("GhostJSONBlock", func(t *testing.T) {
		cfg, err := storage.ParseOptions(map[string]any{
			"bucket":                   "my-bucket",
			"key":                      "/etc/ghost/key.json",
			"projectId":                "my-project",
			"assetDomain":              "cdn.example.com",
			"insecure":                 true,
			"maxAge":                   float64(3600),
			"uniformBucketLevelAccess": "true",
		})
		require.NoError(t, err)

		assert.Equal(t, "my-bucket", cfg.Bucket)
		assert.Equal(t, "/etc/ghost/key.json", cfg.Key)
		assert.Equal(t, "my-project", cfg.ProjectID)
		assert.Equal(t, "cdn.example.com", cfg.AssetDomain)
		assert.True(t, cfg.Insecure)
		assert.Equal(t, 3600, cfg.MaxAge)
		assert.True(t, cfg.UniformBucketLevelAccess)
	})

	t.Run("LowercasedKeys", func(t *testing.T) {
		cfg, err := storage.ParseOptions(map[string]any{"bucket": "b", "projectid": "p", "assetdomain": "cdn"})
		require.NoError(t, err)
		assert.Equal(t, "p", cfg.ProjectID)
		assert.Equal(t, "cdn", cfg.AssetDomain)
	})

	t.Run("NumericStringMaxAge", func(t *testing.T) {
		cfg, err := storage.ParseOptions(map[string]any{"bucket": "b", "maxAge": "86400", "insecure": "1"})
		require.NoError(t, err)
		assert.Equal(t, 86400, cfg.MaxAge)
		assert.True(t, cfg.Insecure)
	})

	t.Run("Omitted", func(t *testing.T) {
		cfg, err := storage.ParseOptions(map[string]any{"bucket": "b"})
		require.NoError(t, err)
		assert.Equal(t, storage.Config{Bucket: "b"}, cfg)
	})

	t.Run("Unconvertible", func(t *testing.T) {
		tests := []struct {
			name string
			raw  map[string]any
		}{
			{"BoolWord", map[string]any{"bucket": "b", "insecure": "yes"}},
			{"FractionalMaxAge", map[string]any{"bucket": "b", "maxAge": "60.5"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := storage.ParseOptions(tt.raw)
				assert.Error(t, err)
			})
		}
	})
}
