package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/gridsnake/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, entityId.Generation())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Tile{X: 1, Y: 2}, &Heading{DX: 1}, Score(32))
	assert.NotEqual(t, ecs.EntityId(0), id)
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.EntityCount())

	tile := ecs.ReadComponent[Tile](storage, id)
	assert.Equal(t, Tile{X: 1, Y: 2}, *tile)
	assert.Equal(t, Score(32), *ecs.ReadComponent[Score](storage, id))
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(struct{ Unregistered int }{1}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Tile{X: 3, Y: 4}, Label{Value: "head"})

	comp := storage.GetComponent(id, reflect.TypeFor[Tile]())
	require.NotNil(t, comp)
	assert.Equal(t, 3, comp.(*Tile).X)

	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Heading]()))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Label]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Heading]()))
}

func TestComponentPointersAreStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Tile{X: 1, Y: 1})
	ptr := ecs.ReadComponent[Tile](storage, first)

	// Force several new blocks to be allocated.
	for i := 0; i < 500; i++ {
		storage.Spawn(Tile{X: i, Y: i})
	}

	ptr.X = 42
	assert.Equal(t, 42, ecs.ReadComponent[Tile](storage, first).X)
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Tile{X: 1, Y: 2}, Edible{})
	other := storage.Spawn(Tile{X: 5, Y: 5})

	assert.True(t, storage.Delete(id))
	assert.False(t, storage.Alive(id))
	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Tile]()))
	assert.Equal(t, 1, storage.EntityCount())

	t.Run("second delete is a no-op", func(t *testing.T) {
		assert.False(t, storage.Delete(id))
		assert.Equal(t, 1, storage.EntityCount())
	})

	t.Run("other entities are untouched", func(t *testing.T) {
		assert.Equal(t, Tile{X: 5, Y: 5}, *ecs.ReadComponent[Tile](storage, other))
	})
}

func TestStaleIdsDoNotResolve(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	old := storage.Spawn(Tile{X: 1, Y: 1})
	storage.Delete(old)

	reused := storage.Spawn(Tile{X: 9, Y: 9})
	assert.Equal(t, old.Index(), reused.Index(), "index should be recycled")
	assert.NotEqual(t, old, reused)
	assert.Greater(t, reused.Generation(), old.Generation())

	assert.False(t, storage.Alive(old))
	assert.Nil(t, storage.GetComponent(old, reflect.TypeFor[Tile]()))
	assert.Panics(t, func() { ecs.ReadComponent[Tile](storage, old) })
	assert.False(t, storage.Delete(old))
	assert.True(t, storage.Alive(reused))
}

func TestAddRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Tile{X: 1, Y: 2})
	storage.AddComponent(id, Heading{DX: -1})
	assert.Equal(t, Heading{DX: -1}, *ecs.ReadComponent[Heading](storage, id))

	storage.AddComponent(id, Heading{DY: 1})
	assert.Equal(t, Heading{DY: 1}, *ecs.ReadComponent[Heading](storage, id))

	storage.RemoveComponent(id, reflect.TypeFor[Heading]())
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Heading]()))
	assert.True(t, storage.Alive(id))

	storage.Delete(id)
	assert.Panics(t, func() { storage.AddComponent(id, Heading{}) })
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	type Bounds struct{ W, H int }

	bounds := ecs.NewSingleton[Bounds](storage, Bounds{W: 10, H: 10})
	require.True(t, bounds.Exists())
	assert.Equal(t, 10, bounds.Get().W)

	t.Run("second accessor shares the value", func(t *testing.T) {
		same := ecs.NewSingleton[Bounds](storage, Bounds{W: 99})
		assert.Equal(t, 10, same.Get().W, "initializer ignored when present")
		same.Get().H = 20
		assert.Equal(t, 20, bounds.Get().H)
	})

	t.Run("set keeps pointers valid", func(t *testing.T) {
		ptr := bounds.Get()
		bounds.Set(Bounds{W: 4, H: 4})
		assert.Equal(t, 4, ptr.W)
	})

	t.Run("read singleton", func(t *testing.T) {
		var out *Bounds
		assert.True(t, storage.ReadSingleton(&out))
		assert.Equal(t, 4, out.H)

		var missing *Label
		assert.False(t, storage.ReadSingleton(&missing))
		assert.Nil(t, missing)
	})

	t.Run("unbound accessor", func(t *testing.T) {
		var s ecs.Singleton[Label]
		assert.Nil(t, s.Get())
		assert.False(t, s.Exists())
	})
}

func TestStorageStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.ComponentTypeCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Tile{}, Label{Value: "a"})
	storage.Spawn(Tile{}, Label{Value: "b"})
	storage.Spawn(Tile{}, Edible{})
	gone := storage.Spawn(Weight(1))
	storage.Delete(gone)

	ecs.NewSingleton[Score](storage, 3)

	stats = storage.CollectStats()
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 3, stats.ComponentTypeCount, "empty storages are skipped")
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Score"}, stats.SingletonTypes)

	counts := map[string]int{}
	for _, c := range stats.ComponentBreakdown {
		counts[c.Type] = c.EntityCount
	}
	assert.Equal(t, map[string]int{
		"ecs_test.Edible": 1,
		"ecs_test.Label":  2,
		"ecs_test.Tile":   3,
	}, counts)
}

func TestStorageIntrospection(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Tile{}, Label{Value: "a"})
	gone := storage.Spawn(Tile{})
	b := storage.Spawn(Energy{Current: 1})
	storage.Delete(gone)

	var ids []ecs.EntityId
	for id := range storage.Entities() {
		ids = append(ids, id)
	}
	assert.Equal(t, []ecs.EntityId{a, b}, ids)

	assert.Equal(t,
		[]reflect.Type{reflect.TypeFor[Label](), reflect.TypeFor[Tile]()},
		storage.ComponentTypes(a))
	assert.Nil(t, storage.ComponentTypes(gone))

	assert.Equal(t,
		[]reflect.Type{reflect.TypeFor[Energy](), reflect.TypeFor[Label](), reflect.TypeFor[Tile]()},
		storage.KnownComponentTypes())
}
