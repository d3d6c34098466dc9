package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")

	cfg, err := LoadConfig(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gcs", cfg.Storage.Active)
	assert.Equal(t, "", cfg.Storage.GCS.Bucket)
	assert.Equal(t, 2678400, cfg.Storage.GCS.MaxAge)
	assert.False(t, cfg.Storage.GCS.Insecure)
	assert.False(t, cfg.Storage.GCS.UniformBucketLevelAccess)
	assert.Equal(t, "gcs", cfg.Storage.GCS.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_HostJSON(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.production.json", `{
  "url": "https://blog.example.com",
  "storage": {
    "active": "gcs",
    "gcs": {
      "bucket": "blog-assets",
      "key": "/var/lib/ghost/key.json",
      "projectId": "blog-project",
      "assetDomain": "assets.example.com",
      "insecure": false,
      "maxAge": "3600",
      "uniformBucketLevelAccess": true
    }
  }
}`)

	cfg, err := LoadConfig(dir, file)
	require.NoError(t, err)

	gcs := cfg.Storage.GCS
	assert.Equal(t, "blog-assets", gcs.Bucket)
	assert.Equal(t, "/var/lib/ghost/key.json", gcs.Key)
	assert.Equal(t, "blog-project", gcs.ProjectID)
	assert.Equal(t, "assets.example.com", gcs.AssetDomain)
	assert.Equal(t, 3600, gcs.MaxAge)
	assert.True(t, gcs.UniformBucketLevelAccess)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "config.json", `{"storage": {"gcs": {"bucket": "from-file"}}}`)
	t.Setenv("STORAGE_GCS_BUCKET", "from-env")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir, file)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Storage.GCS.Bucket)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_InvalidStorageValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"BoolWord", `{"storage": {"gcs": {"bucket": "b", "insecure": "yes"}}}`},
		{"FractionalMaxAge", `{"storage": {"gcs": {"bucket": "b", "maxAge": "60.5"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			file := writeFile(t, dir, "config.json", tt.body)

			cfg, err := LoadConfig(dir, file)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
