package snake

import "github.com/plus3/gridsnake/ecs"

// Kind tells a frontend how to draw a sprite.
type Kind uint8

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	}
	return "unknown"
}

// Sprite is one drawable thing on the board.
type Sprite struct {
	Kind Kind
	Cell Cell
	Size Size
}

// Sprites lists everything to draw this frame: the snake head first, then
// the body in order, then food.
func (w *World) Sprites() []Sprite {
	ids := w.segmentIds()
	sprites := make([]Sprite, 0, len(ids)+w.food.Count())

	for i, id := range ids {
		kind := KindSegment
		if i == 0 {
			kind = KindHead
		}
		sprites = append(sprites, Sprite{
			Kind: kind,
			Cell: *w.cellOf(id),
			Size: *ecs.ReadComponent[Size](w.storage, id),
		})
	}

	for item := range w.food.Values() {
		sprites = append(sprites, Sprite{Kind: KindFood, Cell: *item.Cell, Size: FoodSize})
	}
	return sprites
}
