package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		inventory := &fakeFeature{name: "inventory", enabled: true}
		snapshots := &fakeFeature{name: "snapshots"}

		m := NewManager(nil)
		m.Register(inventory)
		m.Register(snapshots)
		require.NoError(t, m.LoadAll(fiber.New()))

		assert.True(t, inventory.loaded)
		assert.False(t, snapshots.loaded)
		assert.Equal(t, []string{"inventory"}, m.Enabled())
	})

	t.Run("StopsOnError", func(t *testing.T) {
		broken := &fakeFeature{name: "broken", enabled: true, err: errors.New("boom")}
		after := &fakeFeature{name: "after", enabled: true}

		m := NewManager(nil)
		m.Register(broken)
		m.Register(after)
		err := m.LoadAll(fiber.New())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.False(t, after.loaded)
	})
}
