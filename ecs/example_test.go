package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/gridsnake/ecs"
)

type Crawl struct {
	Movers ecs.Query[struct {
		*Tile
		*Heading
	}]
}

func (s *Crawl) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Movers.Values() {
		item.Tile.X += item.Heading.DX
		item.Tile.Y += item.Heading.DY
	}
}

type Report struct {
	Movers ecs.Query[struct{ *Tile }]
}

func (s *Report) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Movers.Values() {
		fmt.Printf("at (%d, %d)\n", item.Tile.X, item.Tile.Y)
	}
}

// ExampleScheduler shows a timer-gated system next to an every-frame one.
// Crawl only runs once per 500ms of accumulated frame time, while Report
// runs on every frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Tile](registry)
	ecs.RegisterComponent[Heading](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Tile{X: 4, Y: 5}, Heading{DY: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&Crawl{}, ecs.Every(500*time.Millisecond))
	scheduler.Register(&Report{})

	for range 4 {
		scheduler.Once(0.25)
	}

	// Output:
	// at (4, 5)
	// at (4, 6)
	// at (4, 6)
	// at (4, 7)
}

// ExampleNewSingleton demonstrates creating and accessing singleton values.
// Singletons are not associated with any entity.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	type Arena struct{ Width, Height int }

	arena := ecs.NewSingleton[Arena](storage, Arena{Width: 10, Height: 10})
	fmt.Printf("arena %dx%d\n", arena.Get().Width, arena.Get().Height)

	same := ecs.NewSingleton[Arena](storage)
	same.Get().Width = 20
	fmt.Printf("arena %dx%d\n", arena.Get().Width, arena.Get().Height)

	// Output:
	// arena 10x10
	// arena 20x10
}

// ExampleCommands shows deferred spawning: the id is usable immediately but
// the components only appear once the frame is flushed.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Tile](registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	var spawned ecs.EntityId
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
		if spawned == 0 {
			spawned = frame.Commands.Spawn(Tile{X: 3, Y: 3})
			fmt.Println("during frame:", frame.Storage.HasComponent(spawned, tileType))
		}
	}))
	scheduler.Once(0)

	fmt.Println("after frame:", *ecs.ReadComponent[Tile](storage, spawned))

	// Output:
	// during frame: false
	// after frame: {3 3}
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }
