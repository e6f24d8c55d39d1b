package snake

import "github.com/plus3/gridsnake/ecs"

// Size is a sprite's extent relative to one tile.
type Size float32

const (
	HeadSize    Size = 0.8
	SegmentSize Size = 0.65
	FoodSize    Size = 0.8
)

// SnakeHead marks the segment that leads the snake.
type SnakeHead struct {
	Facing Direction
}

// SnakeSegment marks every body entity, the head included.
type SnakeSegment struct{}

// Food marks an edible entity.
type Food struct{}

// Segments is the snake's body order, head first.
type Segments struct {
	Ids []ecs.EntityId
}

// LastTail is the cell the tail left on the most recent advance. Valid is
// false until the first advance after a reset.
type LastTail struct {
	Cell  Cell
	Valid bool
}

// InputState carries the keys sampled by the frontend for the current frame.
type InputState struct {
	Pressed Keys
}

// Stats counts what happened in a world since it was created.
type Stats struct {
	Ticks       int
	Resets      int
	FoodSpawned int
	FoodEaten   int
	Length      int
	BestLength  int
}

// GrowthEvent asks for one segment to be appended this frame.
type GrowthEvent struct{}

// GameOverEvent asks for the world to be reset this frame.
type GameOverEvent struct{}

func newRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Cell](registry)
	ecs.RegisterComponent[SnakeHead](registry)
	ecs.RegisterComponent[SnakeSegment](registry)
	ecs.RegisterComponent[Food](registry)
	ecs.RegisterComponent[Size](registry)
	return registry
}
