package snake

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/gridsnake/ecs"
	"github.com/plus3/gridsnake/internal/logging"
)

// World is one running game: the entity storage, the scheduler that steps
// it and the typed handles the game operations use. A World is not safe for
// concurrent use.
type World struct {
	cfg       Config
	logger    *slog.Logger
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	segments *ecs.Singleton[Segments]
	lastTail *ecs.Singleton[LastTail]
	input    *ecs.Singleton[InputState]
	stats    *ecs.Singleton[Stats]
	food     *ecs.View[struct {
		*Food
		*Cell
	}]
}

// New validates cfg and builds a world with the snake at its start cell.
func New(cfg Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == nil {
		cfg.Seed = rand.Uint32
	}

	storage := ecs.NewStorage(newRegistry())
	w := &World{
		cfg:       cfg,
		logger:    logging.Discard(),
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		segments:  ecs.NewSingleton[Segments](storage),
		lastTail:  ecs.NewSingleton[LastTail](storage),
		input:     ecs.NewSingleton[InputState](storage),
		stats:     ecs.NewSingleton[Stats](storage),
		food: ecs.NewView[struct {
			*Food
			*Cell
		}](storage),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.Reset()
	w.settle()

	w.scheduler.Register(&InputSystem{world: w})
	w.scheduler.Register(&MovementSystem{world: w}, ecs.Every(cfg.MoveInterval))
	w.scheduler.Register(&EatingSystem{})
	w.scheduler.Register(&GrowthSystem{world: w})
	w.scheduler.Register(&GameOverSystem{world: w})
	w.scheduler.Register(&LengthSystem{world: w})
	w.scheduler.Register(&FoodSpawnSystem{world: w}, ecs.Every(cfg.FoodInterval))

	w.logger.Debug("world created", "arena", cfg.Arena, "move", cfg.MoveInterval, "food", cfg.FoodInterval)
	return w, nil
}

// Update runs one frame of dt with the given keys held.
func (w *World) Update(dt time.Duration, pressed Keys) {
	w.input.Get().Pressed = pressed
	w.scheduler.Once(dt.Seconds())
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Arena returns the board bounds.
func (w *World) Arena() Arena {
	return w.cfg.Arena
}

// Snake returns the segment cells, head first.
func (w *World) Snake() []Cell {
	ids := w.segmentIds()
	cells := make([]Cell, len(ids))
	for i, id := range ids {
		cells[i] = *w.cellOf(id)
	}
	return cells
}

// Food returns the cells of every food on the board.
func (w *World) Food() []Cell {
	var cells []Cell
	for item := range w.food.Values() {
		cells = append(cells, *item.Cell)
	}
	return cells
}

// Facing returns the direction the head moves on the next tick.
func (w *World) Facing() Direction {
	return w.head().Facing
}

// Stats returns a snapshot of the world's counters.
func (w *World) Stats() Stats {
	stats := *w.stats.Get()
	stats.Length = len(w.segmentIds())
	return stats
}

// Storage exposes the entity storage for inspection tools.
func (w *World) Storage() *ecs.Storage {
	return w.storage
}

// Scheduler exposes the scheduler for inspection tools.
func (w *World) Scheduler() *ecs.Scheduler {
	return w.scheduler
}
