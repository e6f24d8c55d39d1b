package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/gridsnake/snake"
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	arenaColor      = color.RGBA{36, 38, 44, 255}
	spriteColors    = map[snake.Kind]color.RGBA{
		snake.KindHead:    {118, 200, 120, 255},
		snake.KindSegment: {170, 230, 160, 255},
		snake.KindFood:    {250, 120, 110, 255},
	}
)

// drawWorld fills the largest square that fits on screen, top-left aligned,
// with the arena and its sprites.
func drawWorld(screen *ebiten.Image, world *snake.World) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	side := float32(min(bounds.Dx(), bounds.Dy()))
	vector.DrawFilledRect(screen, 0, 0, side, side, arenaColor, false)

	arena := world.Arena()
	for _, sprite := range world.Sprites() {
		// Cell centres come back in centre-origin, y-up coordinates.
		cx, cy := arena.ToScreen(sprite.Cell, side, side)
		w, h := arena.Scale(sprite.Size, side, side)

		x := side/2 + cx - w/2
		y := side/2 - cy - h/2
		vector.DrawFilledRect(screen, x, y, w, h, spriteColors[sprite.Kind], false)
	}
}
