package cmd

import (
	"context"
	"net/http/httptest"
	"testing"

	"ghost-storage-gcs/core/adapter"
	"ghost-storage-gcs/core/config"
	"ghost-storage-gcs/core/middleware/auth"
	"ghost-storage-gcs/core/middleware/rayid"
	"ghost-storage-gcs/core/server"
	"ghost-storage-gcs/core/storage"
	"ghost-storage-gcs/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp_Auth(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		want   int
	}{
		{"NoKeyConfigured", "", "", 200},
		{"KeyRequired", "secret", "", 401},
		{"KeyAccepted", "secret", "secret", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := new(mocks.Bucket)
			bucket.On("Exists", mock.Anything, "a.png").Return(true, nil)
			store, err := adapter.New(context.Background(), storage.Config{Bucket: "b"}, adapter.WithBucket(bucket))
			require.NoError(t, err)

			cfg := &config.Config{Server: server.Config{ApiKey: tt.apiKey, ImagesPath: "/content/images"}}
			app, err := newApp(cfg, zap.NewNop(), store)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/assets/exists?filename=a.png", nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(rayid.Header))
		})
	}
}

func TestNewApp_ImagesStayPublic(t *testing.T) {
	store, err := adapter.New(context.Background(), storage.Config{Bucket: "b"}, adapter.WithBucket(new(mocks.Bucket)))
	require.NoError(t, err)

	cfg := &config.Config{Server: server.Config{ApiKey: "secret", ImagesPath: "/content/images"}}
	app, err := newApp(cfg, zap.NewNop(), store)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/content/images/2024/01/a.png", nil))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "https://b.storage.googleapis.com/2024/01/a.png", resp.Header.Get("Location"))
}
