package factory

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"testing/fstest"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/blueprint/internal/core/assets"
	"github.com/zeusync/blueprint/internal/core/blueprint"
	"github.com/zeusync/blueprint/internal/core/events/bus"
	"github.com/zeusync/blueprint/internal/core/models"
	"github.com/zeusync/blueprint/internal/core/systems"
)

var (
	transformDef = models.Hash("Transform")
	renderDef    = models.Hash("Render")
	typeNames    = []string{"NONE", "Transform", "Render"}
)

type attachment struct {
	entity  models.Entity
	defType models.HashValue
	def     string
}

// recorder is a system that remembers every call made to it.
type recorder struct {
	systems.Base

	mu        sync.Mutex
	log       *[]string
	created   []attachment
	destroyed []models.Entity
	postInit  []models.Entity
	fail      bool
	initErr   error
}

func newRecorder(name string, log *[]string, deps ...string) *recorder {
	return &recorder{Base: systems.NewBase(name, deps...), log: log}
}

func (r *recorder) note(s string) {
	if r.log != nil {
		*r.log = append(*r.log, s)
	}
}

func (r *recorder) Initialize(context.Context) error {
	r.note("init:" + r.Name())
	return r.initErr
}

func (r *recorder) Create(e models.Entity, defType models.HashValue, def []byte) error {
	if r.fail {
		return errors.New("rejected")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.note("create:" + r.Name())
	r.created = append(r.created, attachment{entity: e, defType: defType, def: string(def)})
	return nil
}

func (r *recorder) PostCreateInit(e models.Entity, _ models.HashValue, _ []byte) error {
	r.note("post:" + r.Name())
	r.postInit = append(r.postInit, e)
	return nil
}

func (r *recorder) Destroy(e models.Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.note("destroy:" + r.Name())
	r.destroyed = append(r.destroyed, e)
}

func (r *recorder) entities() map[models.Entity][]models.HashValue {
	out := make(map[models.Entity][]models.HashValue)
	for _, a := range r.created {
		out[a.entity] = append(out[a.entity], a.defType)
	}
	return out
}

func newFactory(t *testing.T, cfg Config, opts ...Option) (*Factory, *recorder, *recorder) {
	t.Helper()
	f := New(opts...)
	tr := newRecorder("transform", nil)
	rd := newRecorder("render", nil, "transform")
	require.NoError(t, f.AddSystem(tr))
	require.NoError(t, f.AddSystem(rd))
	f.RegisterDef("transform", transformDef)
	f.RegisterDef("render", renderDef)
	require.NoError(t, f.Initialize(context.Background(), cfg))
	return f, tr, rd
}

func scenarioTree() *blueprint.Tree {
	root := blueprint.NewTree()
	root.Write(transformDef, []byte("root-transform"))
	root.Write(renderDef, []byte("root-render"))
	child := root.NewChild()
	child.Write(transformDef, []byte("child-transform"))
	return root
}

func TestCreateBeforeInitializeReturnsNull(t *testing.T) {
	f := New()
	assert.Equal(t, models.NullEntity, f.Create())
	assert.Equal(t, models.NullEntity, f.CreateWithBlueprint(blueprint.New()))
	assert.False(t, f.Initialized())
}

func TestCreateUniqueIDsConcurrently(t *testing.T) {
	f, _, _ := newFactory(t, Config{})

	const workers, perWorker = 8, 200
	ids := make(chan models.Entity, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- f.Create()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[models.Entity]struct{}, workers*perWorker)
	for id := range ids {
		require.False(t, id.IsNull())
		_, dup := seen[id]
		require.False(t, dup, "duplicate entity %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestInitializeMissingDependency(t *testing.T) {
	f := New()
	require.NoError(t, f.AddSystem(newRecorder("render", nil, "transform")))

	err := f.Initialize(context.Background(), Config{})
	require.ErrorIs(t, err, systems.ErrMissingDependency)
	assert.Equal(t, models.NullEntity, f.Create())
}

func TestInitializeDependencyCycle(t *testing.T) {
	f := New()
	require.NoError(t, f.AddSystem(newRecorder("a", nil, "b")))
	require.NoError(t, f.AddSystem(newRecorder("b", nil, "a")))

	err := f.Initialize(context.Background(), Config{})
	require.ErrorIs(t, err, systems.ErrDependencyCycle)
	assert.False(t, f.Initialized())
}

func TestInitializeOrderAndFailure(t *testing.T) {
	var calls []string
	f := New()
	require.NoError(t, f.AddSystem(newRecorder("render", &calls, "transform")))
	require.NoError(t, f.AddSystem(newRecorder("transform", &calls)))
	require.NoError(t, f.Initialize(context.Background(), Config{}))
	assert.Equal(t, []string{"init:transform", "init:render"}, calls)

	require.ErrorIs(t, f.Initialize(context.Background(), Config{}), ErrAlreadyInitialized)
	require.ErrorIs(t, f.AddSystem(newRecorder("late", nil)), ErrAlreadyInitialized)

	broken := New()
	bad := newRecorder("bad", nil)
	bad.initErr = errors.New("boom")
	require.NoError(t, broken.AddSystem(bad))
	err := broken.Initialize(context.Background(), Config{})
	require.ErrorIs(t, err, systems.ErrInitializationFailed)
	assert.Equal(t, models.NullEntity, broken.Create())
}

func TestInitializeRejectsBadTypeNames(t *testing.T) {
	f := New()
	err := f.Initialize(context.Background(), DefaultConfig([]string{"NONE", "Transform", "Transform"}))
	require.Error(t, err)
	assert.False(t, f.Initialized())
}

func TestAddSystemValidation(t *testing.T) {
	f := New()
	require.ErrorIs(t, f.AddSystem(nil), ErrInvalidSystem)
	require.ErrorIs(t, f.AddSystem(newRecorder("", nil)), ErrInvalidSystem)

	first := newRecorder("transform", nil)
	second := newRecorder("transform", nil)
	require.NoError(t, f.AddSystem(first))
	require.NoError(t, f.AddSystem(second))
	got, ok := f.System("transform")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestCreateWithTreeScenario(t *testing.T) {
	f, tr, rd := newFactory(t, Config{})

	root := f.CreateWithTree(scenarioTree())
	require.False(t, root.IsNull())

	transforms := tr.entities()
	renders := rd.entities()
	require.Len(t, transforms, 2)
	require.Len(t, renders, 1)
	assert.Equal(t, []models.HashValue{transformDef}, transforms[root])
	assert.Equal(t, []models.HashValue{renderDef}, renders[root])

	var child models.Entity
	for e := range transforms {
		if e != root {
			child = e
		}
	}
	require.False(t, child.IsNull())
	_, hasRender := renders[child]
	assert.False(t, hasRender)
	assert.Equal(t, "child-transform", tr.created[1].def)

	assert.Empty(t, f.EntityToBlueprintMap())
}

func TestCreateByNameScenario(t *testing.T) {
	f, tr, rd := newFactory(t, DefaultConfig(typeNames))
	data, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)

	cache := assets.NewCache(assets.FSSource(fstest.MapFS{
		"levels/crate.bin": {Data: data},
	}))
	f.assets = cache

	root := f.CreateByName("levels/crate")
	require.False(t, root.IsNull())

	assert.Len(t, tr.entities(), 2)
	assert.Len(t, rd.entities(), 1)
	assert.Equal(t, "root-render", rd.created[0].def)
	assert.Equal(t, map[models.Entity]string{root: "levels/crate"}, f.EntityToBlueprintMap())

	name, ok := f.BlueprintName(root)
	require.True(t, ok)
	assert.Equal(t, "levels/crate", name)
}

func TestCreateByNameFailures(t *testing.T) {
	f, tr, _ := newFactory(t, DefaultConfig(typeNames))
	f.assets = assets.NewCache(assets.FSSource(fstest.MapFS{}))
	assert.Equal(t, models.NullEntity, f.CreateByName("missing"))

	noLoader, _, _ := newFactory(t, Config{TypeNames: typeNames})
	noLoader.assets.Put("crate", []byte{1, 2, 3})
	assert.Equal(t, models.NullEntity, noLoader.CreateByName("crate"))

	f.assets.Put("garbage", []byte{1, 2})
	assert.Equal(t, models.NullEntity, f.CreateByName("garbage"))

	assert.Empty(t, tr.created)
	assert.Empty(t, f.EntityToBlueprintMap())
	assert.Equal(t, uint64(2), f.Metrics().BlueprintFailures)
}

func TestCreateFromBlueprintRecordsName(t *testing.T) {
	f, tr, _ := newFactory(t, DefaultConfig(typeNames))
	bp := blueprint.New()
	bp.Write(transformDef, []byte("xyz"))
	data, err := f.Finalize(bp)
	require.NoError(t, err)

	e := f.CreateFromBlueprint(data, "inline")
	require.False(t, e.IsNull())
	require.Len(t, tr.created, 1)
	assert.Equal(t, attachment{entity: e, defType: transformDef, def: "xyz"}, tr.created[0])

	name, ok := f.BlueprintName(e)
	require.True(t, ok)
	assert.Equal(t, "inline", name)
}

func TestCompositionSkipsUnknownAndRejected(t *testing.T) {
	f, tr, rd := newFactory(t, Config{})
	rd.fail = true

	bp := blueprint.New()
	bp.Write(models.Hash("Audio"), []byte("a"))
	bp.Write(models.NoneHash, nil)
	bp.Write(renderDef, []byte("r"))
	bp.Write(transformDef, []byte("t"))

	e := f.CreateWithBlueprint(bp)
	require.False(t, e.IsNull())
	require.Len(t, tr.created, 1)
	assert.Equal(t, "t", tr.created[0].def)
	assert.Empty(t, rd.created)

	assert.Equal(t, Metrics{
		EntitiesCreated:    1,
		ComponentsAttached: 1,
		ComponentsSkipped:  2,
		ComponentsRejected: 1,
	}, f.Metrics())
}

func TestPostCreateInitRunsAfterAllAttachments(t *testing.T) {
	var calls []string
	f := New()
	require.NoError(t, f.AddSystem(newRecorder("transform", &calls)))
	require.NoError(t, f.AddSystem(newRecorder("render", &calls)))
	f.RegisterDef("transform", transformDef)
	f.RegisterDef("render", renderDef)
	require.NoError(t, f.Initialize(context.Background(), Config{}))
	calls = nil

	bp := blueprint.FromComponents(
		blueprint.Component{Type: renderDef, Data: []byte("r")},
		blueprint.Component{Type: transformDef, Data: []byte("t")},
	)
	require.False(t, f.CreateWithBlueprint(bp).IsNull())
	assert.Equal(t, []string{
		"create:render", "create:transform",
		"post:render", "post:transform",
	}, calls)
}

func TestRegisterDefLastWins(t *testing.T) {
	f, tr, rd := newFactory(t, Config{})
	f.RegisterDef("render", transformDef)

	bp := blueprint.New()
	bp.Write(transformDef, []byte("t"))
	f.CreateWithBlueprint(bp)

	assert.Empty(t, tr.created)
	require.Len(t, rd.created, 1)
	assert.Equal(t, transformDef, rd.created[0].defType)
}

func TestPopulate(t *testing.T) {
	f, tr, _ := newFactory(t, Config{})

	assert.Equal(t, models.NullEntity, f.PopulateTree(models.NullEntity, scenarioTree()))
	assert.Equal(t, models.NullEntity, f.CreateWithBlueprint(nil))
	assert.Equal(t, models.NullEntity, f.CreateWithTree(nil))

	e := f.Create()
	assert.Equal(t, models.NullEntity, f.PopulateTree(e, nil))
	assert.Equal(t, e, f.PopulateTree(e, scenarioTree()))
	assert.Equal(t, []models.HashValue{transformDef}, tr.entities()[e])
}

func TestCustomCreateChildFn(t *testing.T) {
	f, _, _ := newFactory(t, Config{})

	parents := make(map[models.Entity]models.Entity)
	f.SetCreateChildFn(func(parent models.Entity, tree *blueprint.Tree) models.Entity {
		child := f.Create()
		parents[child] = parent
		return f.PopulateTree(child, tree)
	})

	tree := scenarioTree()
	tree.Children()[0].NewChild().Write(renderDef, nil)
	root := f.CreateWithTree(tree)

	require.Len(t, parents, 2)
	var depth1 models.Entity
	for child, parent := range parents {
		if parent == root {
			depth1 = child
		}
	}
	require.False(t, depth1.IsNull())
	for child, parent := range parents {
		if child != depth1 {
			assert.Equal(t, depth1, parent)
		}
	}

	f.SetCreateChildFn(nil)
	f.CreateWithTree(scenarioTree())
	assert.Len(t, parents, 2)
}

func TestDestroyCallsEverySystemInReverseOrder(t *testing.T) {
	var calls []string
	f := New()
	require.NoError(t, f.AddSystem(newRecorder("render", &calls, "transform")))
	require.NoError(t, f.AddSystem(newRecorder("transform", &calls)))
	require.NoError(t, f.Initialize(context.Background(), DefaultConfig(typeNames)))

	bp := blueprint.New()
	data, err := f.Finalize(bp)
	require.NoError(t, err)
	e := f.CreateFromBlueprint(data, "empty")
	require.False(t, e.IsNull())
	calls = nil

	f.Destroy(e)
	assert.Equal(t, []string{"destroy:render", "destroy:transform"}, calls)
	_, ok := f.BlueprintName(e)
	assert.False(t, ok)
}

func TestDestroyQueuedEntitiesDrainsEverything(t *testing.T) {
	f, tr, _ := newFactory(t, Config{})

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.QueueForDestruction(f.Create())
		}()
	}
	wg.Wait()
	f.QueueForDestruction(models.NullEntity)
	assert.Equal(t, n, f.PendingDestruction())

	f.DestroyQueuedEntities()
	assert.Zero(t, f.PendingDestruction())
	assert.Len(t, tr.destroyed, n)

	f.DestroyQueuedEntities()
	assert.Len(t, tr.destroyed, n)
}

func TestDestroyQueuedDuringDrain(t *testing.T) {
	f := New()
	var requeued bool
	sys := &requeueSystem{Base: systems.NewBase("requeue")}
	sys.onDestroy = func(e models.Entity) {
		if !requeued {
			requeued = true
			f.QueueForDestruction(f.Create())
		}
	}
	require.NoError(t, f.AddSystem(sys))
	require.NoError(t, f.Initialize(context.Background(), Config{}))

	f.QueueForDestruction(f.Create())
	f.DestroyQueuedEntities()
	assert.Equal(t, 2, sys.count)
	assert.Zero(t, f.PendingDestruction())
}

type requeueSystem struct {
	systems.Base
	count     int
	onDestroy func(models.Entity)
}

func (s *requeueSystem) Create(models.Entity, models.HashValue, []byte) error { return nil }

func (s *requeueSystem) Destroy(e models.Entity) {
	s.count++
	s.onDestroy(e)
}

func TestFinalizeWithoutFinalizer(t *testing.T) {
	f, _, _ := newFactory(t, Config{TypeNames: typeNames})
	_, err := f.Finalize(blueprint.New())
	require.ErrorIs(t, err, ErrNoFinalizer)
	_, err = f.FinalizeTree(blueprint.NewTree())
	require.ErrorIs(t, err, ErrNoFinalizer)

	_, err = f.Load([]byte{0})
	require.ErrorIs(t, err, ErrNoLoader)
}

func TestFinalizeWithoutTypes(t *testing.T) {
	f, _, _ := newFactory(t, DefaultConfig(nil))
	_, err := f.Finalize(blueprint.New())
	require.ErrorIs(t, err, ErrNoTypeList)

	_, err = f.Finalize(nil)
	require.ErrorIs(t, err, ErrNilBlueprint)
}

func TestFinalizeRoundTrip(t *testing.T) {
	f, _, _ := newFactory(t, DefaultConfig(typeNames))
	data, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)

	tree, err := f.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Count())
	assert.Equal(t, []blueprint.Component{
		{Type: transformDef, Data: []byte("root-transform")},
		{Type: renderDef, Data: []byte("root-render")},
	}, tree.Components())
	require.Len(t, tree.Children(), 1)
	assert.Equal(t, []blueprint.Component{
		{Type: transformDef, Data: []byte("child-transform")},
	}, tree.Children()[0].Components())

	again, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)
	assert.Equal(t, data, again)

	assert.Equal(t, 2, f.PerformReverseTypeLookup(renderDef))
	assert.Equal(t, 0, f.PerformReverseTypeLookup(models.Hash("Audio")))
}

func TestLifecycleEvents(t *testing.T) {
	b := bus.New()
	var got []string
	var mu sync.Mutex
	for _, typ := range []string{EventEntityCreated, EventEntityDestroyed} {
		_, err := b.Subscribe(typ, func(ev bus.Event) error {
			data := ev.Data().(EntityEvent)
			mu.Lock()
			got = append(got, ev.Type()+":"+data.Blueprint)
			mu.Unlock()
			return nil
		})
		require.NoError(t, err)
	}

	f, _, _ := newFactory(t, DefaultConfig(typeNames), WithEventBus(b))
	data, err := f.Finalize(blueprint.New())
	require.NoError(t, err)

	e := f.CreateFromBlueprint(data, "crate")
	f.Destroy(e)
	assert.Equal(t, []string{"entity.created:crate", "entity.destroyed:crate"}, got)
}

func TestAddSystemFromLocator(t *testing.T) {
	reg := systems.NewRegistry()
	require.NoError(t, reg.RegisterSystem(newRecorder("transform", nil)))

	_, err := New().AddSystemFromLocator("transform")
	require.ErrorIs(t, err, ErrNoLocator)

	f := New(WithLocator(reg))
	s, err := f.AddSystemFromLocator("transform")
	require.NoError(t, err)
	assert.Equal(t, "transform", s.Name())

	_, err = f.AddSystemFromLocator("render")
	require.ErrorIs(t, err, systems.ErrSystemNotFound)
}

type providerSystem struct {
	*recorder
}

func (providerSystem) DefTypes() []models.HashValue {
	return []models.HashValue{transformDef}
}

func TestDefProviderRegistersTypes(t *testing.T) {
	f := New()
	sys := providerSystem{recorder: newRecorder("transform", nil)}
	require.NoError(t, f.AddSystem(sys))
	require.NoError(t, f.Initialize(context.Background(), Config{}))

	bp := blueprint.New()
	bp.Write(transformDef, []byte("t"))
	f.CreateWithBlueprint(bp)
	assert.Len(t, sys.created, 1)
}

// setRootVectorLen overwrites the length word of a vector field of the root
// EntityDef (slot 0 components, slot 1 children).
func setRootVectorLen(t *testing.T, data []byte, slot int, n uint32) []byte {
	t.Helper()
	out := bytes.Clone(data)
	pos := flatbuffers.GetUOffsetT(out)
	vtable := flatbuffers.UOffsetT(flatbuffers.SOffsetT(pos) - flatbuffers.GetSOffsetT(out[pos:]))
	field := flatbuffers.GetVOffsetT(out[vtable+flatbuffers.UOffsetT(4+2*slot):])
	require.NotZero(t, field)
	ref := pos + flatbuffers.UOffsetT(field)
	vec := ref + flatbuffers.GetUOffsetT(out[ref:])
	flatbuffers.WriteUint32(out[vec:], n)
	return out
}

func TestCreateFromTamperedBlueprint(t *testing.T) {
	f, tr, rd := newFactory(t, DefaultConfig(typeNames))
	data, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)

	components := setRootVectorLen(t, data, 0, 0x7fffffff)
	children := setRootVectorLen(t, data, 1, 0x7fffffff)

	assert.Equal(t, models.NullEntity, f.CreateFromBlueprint(components, "tampered"))
	assert.Equal(t, models.NullEntity, f.CreateFromBlueprint(children, "tampered"))

	f.assets.Put("tampered", components)
	assert.Equal(t, models.NullEntity, f.CreateByName("tampered"))

	assert.Empty(t, tr.created)
	assert.Empty(t, rd.created)
	assert.Empty(t, f.EntityToBlueprintMap())
	assert.Equal(t, uint64(3), f.Metrics().BlueprintFailures)

	assert.False(t, f.CreateFromBlueprint(data, "intact").IsNull())
}

func TestCreateWithTreeSkipsUnknownAndKeepsChildren(t *testing.T) {
	f, tr, rd := newFactory(t, Config{})

	root := blueprint.NewTree()
	root.Write(models.Hash("Audio"), []byte("a"))
	root.Write(transformDef, []byte("root-t"))
	root.Write(renderDef, []byte("root-r"))
	left := root.NewChild()
	left.Write(models.Hash("Audio"), nil)
	left.Write(transformDef, []byte("left-t"))
	leaf := left.NewChild()
	leaf.Write(models.Hash("Physics"), nil)
	leaf.Write(renderDef, []byte("leaf-r"))
	root.NewChild().Write(transformDef, []byte("right-t"))

	e := f.CreateWithTree(root)
	require.False(t, e.IsNull())

	var transforms, renders []string
	for _, a := range tr.created {
		transforms = append(transforms, a.def)
	}
	for _, a := range rd.created {
		renders = append(renders, a.def)
	}
	assert.Equal(t, []string{"root-t", "left-t", "right-t"}, transforms)
	assert.Equal(t, []string{"root-r", "leaf-r"}, renders)

	m := f.Metrics()
	assert.Equal(t, uint64(4), m.EntitiesCreated)
	assert.Equal(t, uint64(3), m.ComponentsSkipped)
	assert.Equal(t, uint64(5), m.ComponentsAttached)
}

func TestDestroyQueuedEntitiesClearsProvenance(t *testing.T) {
	f, tr, _ := newFactory(t, DefaultConfig(typeNames))
	data, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)

	var queued []models.Entity
	for i := 0; i < 10; i++ {
		e := f.CreateFromBlueprint(data, "crate")
		require.False(t, e.IsNull())
		queued = append(queued, e)
	}
	require.Len(t, f.EntityToBlueprintMap(), 10)

	for _, e := range queued {
		f.QueueForDestruction(e)
	}
	f.DestroyQueuedEntities()

	assert.Zero(t, f.PendingDestruction())
	assert.Empty(t, f.EntityToBlueprintMap())
	for _, e := range queued {
		_, ok := f.BlueprintName(e)
		assert.False(t, ok)
	}
	assert.Len(t, tr.destroyed, 10)
}

func TestCreateFromBlueprintWithoutName(t *testing.T) {
	f, tr, _ := newFactory(t, DefaultConfig(typeNames))
	data, err := f.FinalizeTree(scenarioTree())
	require.NoError(t, err)

	e := f.CreateFromBlueprint(data, "")
	require.False(t, e.IsNull())
	assert.NotEmpty(t, tr.created)
	assert.Empty(t, f.EntityToBlueprintMap())
	_, ok := f.BlueprintName(e)
	assert.False(t, ok)
}

func TestInitializeRetryAfterFailure(t *testing.T) {
	var calls []string
	f := New()
	tr := newRecorder("transform", &calls)
	rd := newRecorder("render", &calls, "transform")
	rd.initErr = errors.New("not ready")
	require.NoError(t, f.AddSystem(tr))
	require.NoError(t, f.AddSystem(rd))

	require.ErrorIs(t, f.Initialize(context.Background(), Config{}), systems.ErrInitializationFailed)
	assert.Equal(t, models.NullEntity, f.Create())

	rd.initErr = nil
	require.NoError(t, f.Initialize(context.Background(), Config{}))
	assert.Equal(t, []string{"init:transform", "init:render", "init:render"}, calls)
	assert.False(t, f.Create().IsNull())
}
