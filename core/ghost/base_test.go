package ghost_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ghost-storage-gcs/core/ghost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
}

func existsIn(taken ...string) ghost.ExistsFunc {
	set := make(map[string]bool)
	for _, name := range taken {
		set[name] = true
	}
	return func(ctx context.Context, filename, dir string) (bool, error) {
		return set[filepath.Join(dir, filename)], nil
	}
}

func TestStorageBase_GetTargetDir(t *testing.T) {
	base := ghost.NewStorageBase(existsIn()).WithClock(fixedClock)

	assert.Equal(t, filepath.Join("2024", "01"), base.GetTargetDir(""))
	assert.Equal(t, filepath.Join("content", "images", "2024", "01"), base.GetTargetDir(filepath.Join("content", "images")))
}

func TestStorageBase_GetUniqueFileName(t *testing.T) {
	dir := filepath.Join("2024", "01")
	ctx := context.Background()

	tests := []struct {
		name  string
		asset string
		taken []string
		want  string
	}{
		{"Free", "photo.jpg", nil, filepath.Join(dir, "photo.jpg")},
		{"FirstCollision", "photo.jpg", []string{filepath.Join(dir, "photo.jpg")}, filepath.Join(dir, "photo-1.jpg")},
		{"SecondCollision", "photo.jpg", []string{filepath.Join(dir, "photo.jpg"), filepath.Join(dir, "photo-1.jpg")}, filepath.Join(dir, "photo-2.jpg")},
		{"Sanitized", "my photo (1).jpg", nil, filepath.Join(dir, "my-photo--1-.jpg")},
		{"NoExtension", "README", nil, filepath.Join(dir, "README")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := ghost.NewStorageBase(existsIn(tt.taken...))
			got, err := base.GetUniqueFileName(ctx, ghost.Asset{Name: tt.asset}, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStorageBase_GetUniqueFileName_ExistsError(t *testing.T) {
	base := ghost.NewStorageBase(func(ctx context.Context, filename, dir string) (bool, error) {
		return false, assert.AnError
	})

	got, err := base.GetUniqueFileName(context.Background(), ghost.Asset{Name: "a.png"}, "2024/01")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, got)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "hello_world@2x.final", ghost.SanitizeFileName("hello_world@2x.final"))
	assert.Equal(t, "caf--1", ghost.SanitizeFileName("café 1"))
}
