package snake

import "github.com/plus3/gridsnake/ecs"

// Place replaces the snake with one laid over cells, head first.
func (w *World) Place(facing Direction, cells ...Cell) {
	segments := w.segments.Get()
	for _, id := range segments.Ids {
		w.storage.Delete(id)
	}
	segments.Ids = segments.Ids[:0]

	for i, c := range cells {
		if i == 0 {
			segments.Ids = append(segments.Ids, w.storage.Spawn(c, SnakeHead{Facing: facing}, SnakeSegment{}, HeadSize))
			continue
		}
		segments.Ids = append(segments.Ids, w.storage.Spawn(c, SnakeSegment{}, SegmentSize))
	}
	w.lastTail.Set(LastTail{})
}

// PutFood drops a food on a chosen cell.
func (w *World) PutFood(c Cell) ecs.EntityId {
	return w.storage.Spawn(c, Food{}, FoodSize)
}

// SegmentIds exposes the body order.
func (w *World) SegmentIds() []ecs.EntityId {
	return append([]ecs.EntityId(nil), w.segmentIds()...)
}

// LastTailCell exposes the recorded growth point.
func (w *World) LastTailCell() (Cell, bool) {
	last := w.lastTail.Get()
	return last.Cell, last.Valid
}
