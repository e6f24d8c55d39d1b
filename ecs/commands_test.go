package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/gridsnake/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnOnceSystem struct {
	spawned []ecs.EntityId
	aliveAt []bool
}

func (s *spawnOnceSystem) Execute(frame *ecs.UpdateFrame) {
	id := frame.Commands.Spawn(Tile{X: 1, Y: 2}, Edible{})
	s.spawned = append(s.spawned, id)
	s.aliveAt = append(s.aliveAt, frame.Storage.HasComponent(id, tileType))
}

var tileType = reflect.TypeFor[Tile]()

type deleteSystem struct {
	targets []ecs.EntityId
}

func (s *deleteSystem) Execute(frame *ecs.UpdateFrame) {
	for _, id := range s.targets {
		frame.Commands.Delete(id)
	}
}

type deferSystem struct {
	calls *[]string
	name  string
}

func (s *deferSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Defer(func() {
		*s.calls = append(*s.calls, s.name)
	})
}

func TestCommandsSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawner := &spawnOnceSystem{}
	scheduler.Register(spawner)
	scheduler.Once(0)

	require.Len(t, spawner.spawned, 1)
	id := spawner.spawned[0]

	assert.False(t, spawner.aliveAt[0], "components attach on flush")
	assert.True(t, storage.Alive(id))
	assert.Equal(t, Tile{X: 1, Y: 2}, *ecs.ReadComponent[Tile](storage, id))
}

func TestCommandsDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Tile{X: 1})
	b := storage.Spawn(Tile{X: 2})

	scheduler := ecs.NewScheduler(storage)
	first := &deleteSystem{targets: []ecs.EntityId{a}}
	second := &deleteSystem{targets: []ecs.EntityId{a, b}}
	scheduler.Register(first)
	scheduler.Register(second)

	assert.NotPanics(t, func() { scheduler.Once(0) })
	assert.False(t, storage.Alive(a))
	assert.False(t, storage.Alive(b))
	assert.Zero(t, storage.EntityCount())
}

func TestCommandsSpawnThenDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	spawner := &spawnOnceSystem{}
	scheduler.Register(spawner)
	scheduler.Once(0)

	deleter := &deleteSystem{targets: spawner.spawned}
	scheduler.Register(deleter)
	scheduler.Once(0)

	// The first spawn is deleted; the second frame's spawn survives.
	require.Len(t, spawner.spawned, 2)
	assert.False(t, storage.Alive(spawner.spawned[0]))
	assert.True(t, storage.Alive(spawner.spawned[1]))
}

func TestCommandsDeferOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var calls []string
	scheduler.Register(&deferSystem{calls: &calls, name: "a"})
	scheduler.Register(&deferSystem{calls: &calls, name: "b"})

	scheduler.Once(0)
	assert.Equal(t, []string{"a", "b"}, calls)

	scheduler.Once(0)
	assert.Equal(t, []string{"a", "b", "a", "b"}, calls, "buffer is reset after flush")
}
