package snake

import "strings"

const (
	boardEmpty = '.'
	boardHead  = 'H'
	boardBody  = 'o'
	boardFood  = '*'
)

// Board renders the arena as text, top row first.
func (w *World) Board() string {
	arena := w.cfg.Arena
	grid := make([][]byte, arena.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(boardEmpty), arena.Width))
	}

	put := func(c Cell, b byte) {
		if arena.InBounds(c) {
			grid[c.Y][c.X] = b
		}
	}

	for _, c := range w.Food() {
		put(c, boardFood)
	}
	cells := w.Snake()
	for _, c := range cells[1:] {
		put(c, boardBody)
	}
	put(cells[0], boardHead)

	var b strings.Builder
	for y := arena.Height - 1; y >= 0; y-- {
		b.Write(grid[y])
		b.WriteByte('\n')
	}
	return b.String()
}
