package loader_test

import (
	"testing"

	"ghost-storage-gcs/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  int
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded++
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off"}

		mgr := loader.NewManager()
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.Equal(t, 1, on.loaded)
		assert.Equal(t, 0, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		bad := &stubFeature{name: "bad", enabled: true, err: assert.AnError}
		after := &stubFeature{name: "after", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(bad)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "bad")
		assert.Equal(t, 0, after.loaded)
	})
}
