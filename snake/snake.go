package snake

import (
	"github.com/plus3/gridsnake/ecs"
)

func (w *World) segmentIds() []ecs.EntityId {
	ids := w.segments.Get().Ids
	if len(ids) == 0 {
		panic("snake has no segments")
	}
	return ids
}

func (w *World) cellOf(id ecs.EntityId) *Cell {
	return ecs.ReadComponent[Cell](w.storage, id)
}

func (w *World) head() *SnakeHead {
	return ecs.ReadComponent[SnakeHead](w.storage, w.segmentIds()[0])
}

// SetFacing turns the head towards requested unless that would reverse it
// onto its own neck, in which case the request is ignored.
func (w *World) SetFacing(requested Direction) {
	head := w.head()
	if requested == head.Facing.Opposite() {
		return
	}
	head.Facing = requested
}

// Advance moves the head one cell along its facing. Every other segment
// takes the cell its predecessor held, and the cell the tail leaves is kept
// as the growth point. Advance never checks for collisions.
func (w *World) Advance() {
	ids := w.segmentIds()

	cells := make([]*Cell, len(ids))
	for i, id := range ids {
		cells[i] = w.cellOf(id)
	}

	w.lastTail.Set(LastTail{Cell: *cells[len(cells)-1], Valid: true})

	for i := len(cells) - 1; i > 0; i-- {
		*cells[i] = *cells[i-1]
	}

	dx, dy := w.head().Facing.Delta()
	*cells[0] = cells[0].Add(dx, dy)
}

// Grow appends a segment at the given cell, behind the current tail.
func (w *World) Grow(at Cell) {
	segments := w.segments.Get()
	id := w.storage.Spawn(at, SnakeSegment{}, SegmentSize)
	segments.Ids = append(segments.Ids, id)
}

// Reset despawns every segment and places a fresh two segment snake at the
// configured start. The recorded tail cell is cleared.
func (w *World) Reset() {
	segments := w.segments.Get()
	for _, id := range segments.Ids {
		w.storage.Delete(id)
	}

	head := w.storage.Spawn(w.cfg.Start, SnakeHead{Facing: w.cfg.StartFacing}, SnakeSegment{}, HeadSize)
	tail := w.storage.Spawn(w.cfg.StartTail(), SnakeSegment{}, SegmentSize)
	segments.Ids = append(segments.Ids[:0], head, tail)

	w.lastTail.Set(LastTail{})
}

// Restart clears every food and resets the snake, counting it as a reset.
// This is what a game over does.
func (w *World) Restart() {
	var food []ecs.EntityId
	for id := range w.food.Iter() {
		food = append(food, id)
	}
	for _, id := range food {
		w.storage.Delete(id)
	}

	w.Reset()
	w.stats.Get().Resets++
}

// settle records the snake length once the frame's growth and game over
// have been applied.
func (w *World) settle() {
	stats := w.stats.Get()
	stats.BestLength = max(stats.BestLength, len(w.segmentIds()))
}

// collided reports whether the head, after an advance, sits outside the
// arena or on a cell the body held before the move.
func (w *World) collided() (reason string, hit bool) {
	ids := w.segmentIds()
	head := *w.cellOf(ids[0])

	if !w.cfg.Arena.InBounds(head) {
		return "out of bounds", true
	}

	for _, id := range ids[1:] {
		if *w.cellOf(id) == head {
			return "self collision", true
		}
	}
	if last := w.lastTail.Get(); last.Valid && last.Cell == head {
		return "self collision", true
	}
	return "", false
}
