package injector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/blueprint/internal/config"
	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/factory"
	"github.com/zeusync/blueprint/internal/core/systems/transform"
)

func TestRuntimeCreatesLinkedHierarchy(t *testing.T) {
	t.Setenv("BLUEPRINT_ASSETS_ROOT", t.TempDir())
	t.Setenv("BLUEPRINT_LOG_LEVEL", "error")
	cfg, err := config.Load("")
	require.NoError(t, err)

	rt, err := NewRuntime(cfg)
	require.NoError(t, err)
	require.NoError(t, rt.Start(context.Background()))
	t.Cleanup(func() { _ = rt.Close() })

	tree := blueprint.NewTree()
	def := transform.NewDef(transform.Vec3{X: 1})
	data, err := def.Serialize()
	require.NoError(t, err)
	tree.Write(transform.DefType, data)
	tree.NewChild().Write(transform.DefType, data)

	encoded, err := rt.Factory.FinalizeTree(tree)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Assets.Root, "crate.bin"), encoded, 0o644))
	require.NoError(t, rt.Assets.Preload(context.Background(), 2, "crate"))

	var created int
	_, err = rt.Events.Subscribe(factory.EventEntityCreated, func(bus.Event) error {
		created++
		return nil
	})
	require.NoError(t, err)

	root := rt.Factory.CreateByName("crate")
	require.False(t, root.IsNull())
	assert.Equal(t, 2, created)

	children := rt.Transform.Children(root)
	require.Len(t, children, 1)
	pos, ok := rt.Transform.WorldPosition(children[0])
	require.True(t, ok)
	assert.Equal(t, transform.Vec3{X: 2}, pos)
	assert.Equal(t, map[string]int{"crate": 1}, countNames(rt.Factory.EntityToBlueprintMap()))
}

func TestRuntimeStartFailsOnMissingPreload(t *testing.T) {
	t.Setenv("BLUEPRINT_ASSETS_ROOT", t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)

	rt, err := NewRuntime(cfg)
	require.NoError(t, err)
	require.Error(t, rt.Start(context.Background(), "missing"))
}

func countNames[K comparable](m map[K]string) map[string]int {
	out := make(map[string]int)
	for _, name := range m {
		out[name]++
	}
	return out
}
