package snake

import (
	"github.com/plus3/gridsnake/ecs"
)

// InputSystem applies the frame's pressed keys to the head's facing.
type InputSystem struct {
	world *World
	Input ecs.Singleton[InputState]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	if d, ok := s.Input.Get().Pressed.Direction(); ok {
		s.world.SetFacing(d)
	}
}

// MovementSystem advances the snake once per move interval and raises a
// game over when the head leaves the arena or lands on the body.
type MovementSystem struct {
	world    *World
	GameOver ecs.Events[GameOverEvent]
	Stats    ecs.Singleton[Stats]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.world.Advance()
	s.Stats.Get().Ticks++

	if reason, hit := s.world.collided(); hit {
		s.world.logger.Info("game over", "reason", reason, "head", s.world.Snake()[0], "length", len(s.world.segmentIds()))
		s.GameOver.Send(GameOverEvent{})
	}
}

// EatingSystem removes food under the head, one growth event per food.
type EatingSystem struct {
	Head ecs.Query[struct {
		*SnakeHead
		*Cell
	}]
	Food ecs.Query[struct {
		ecs.EntityId
		*Food
		*Cell
	}]
	Growth ecs.Events[GrowthEvent]
	Stats  ecs.Singleton[Stats]
}

func (s *EatingSystem) Execute(frame *ecs.UpdateFrame) {
	head, ok := s.Head.First()
	if !ok {
		return
	}

	for food := range s.Food.Values() {
		if *food.Cell != *head.Cell {
			continue
		}
		frame.Commands.Delete(food.EntityId)
		s.Growth.Send(GrowthEvent{})
		s.Stats.Get().FoodEaten++
	}
}

// GrowthSystem appends at most one segment per frame, at the cell the tail
// last left. Further growth events in the same frame are dropped.
type GrowthSystem struct {
	world    *World
	Growth   ecs.Events[GrowthEvent]
	LastTail ecs.Singleton[LastTail]
}

func (s *GrowthSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Growth.Len() == 0 {
		return
	}

	at := s.LastTail.Get().Cell
	if !s.LastTail.Get().Valid {
		ids := s.world.segmentIds()
		at = *s.world.cellOf(ids[len(ids)-1])
	}
	s.world.Grow(at)
	s.world.logger.Debug("snake grew", "at", at, "length", len(s.world.segmentIds()))
}

// GameOverSystem clears the board and resets the snake when a game over was
// raised this frame.
type GameOverSystem struct {
	world    *World
	GameOver ecs.Events[GameOverEvent]
}

func (s *GameOverSystem) Execute(frame *ecs.UpdateFrame) {
	if s.GameOver.Len() == 0 {
		return
	}
	s.world.Restart()
}

// LengthSystem tracks the best length. It runs after growth and game over so
// a segment grown in the frame that ends the game never counts.
type LengthSystem struct {
	world *World
}

func (s *LengthSystem) Execute(frame *ecs.UpdateFrame) {
	s.world.settle()
}

// FoodSpawnSystem drops one food per food interval.
type FoodSpawnSystem struct {
	world *World
}

func (s *FoodSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.world.SpawnFood()
}
