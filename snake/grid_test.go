package snake_test

import (
	"testing"

	"github.com/plus3/gridsnake/snake"
	"github.com/stretchr/testify/assert"
)

func TestArenaInBounds(t *testing.T) {
	arena := snake.Arena{Width: 10, Height: 10}

	tests := []struct {
		cell snake.Cell
		want bool
	}{
		{snake.Cell{X: 0, Y: 0}, true},
		{snake.Cell{X: 9, Y: 9}, true},
		{snake.Cell{X: 4, Y: 5}, true},
		{snake.Cell{X: -1, Y: 5}, false},
		{snake.Cell{X: 10, Y: 5}, false},
		{snake.Cell{X: 5, Y: -1}, false},
		{snake.Cell{X: 5, Y: 10}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, arena.InBounds(tt.cell), "%v", tt.cell)
	}
}

func TestTranslate(t *testing.T) {
	t.Run("extremes land on tile centres", func(t *testing.T) {
		assert.InDelta(t, -180, snake.Translate(0, 400, 10), 1e-3)
		assert.InDelta(t, 180, snake.Translate(9, 400, 10), 1e-3)
	})

	t.Run("odd tile counts centre the middle cell", func(t *testing.T) {
		assert.InDelta(t, 0, snake.Translate(2, 500, 5), 1e-3)
	})

	t.Run("to screen and scale", func(t *testing.T) {
		arena := snake.Arena{Width: 10, Height: 20}
		x, y := arena.ToScreen(snake.Cell{X: 0, Y: 19}, 400, 800)
		assert.InDelta(t, -180, x, 1e-3)
		assert.InDelta(t, 380, y, 1e-3)

		w, h := arena.Scale(snake.HeadSize, 400, 800)
		assert.InDelta(t, 32, w, 1e-3)
		assert.InDelta(t, 32, h, 1e-3)
	})
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      snake.Direction
		opposite snake.Direction
		dx, dy   int
		name     string
	}{
		{snake.Left, snake.Right, -1, 0, "Left"},
		{snake.Right, snake.Left, 1, 0, "Right"},
		{snake.Up, snake.Down, 0, 1, "Up"},
		{snake.Down, snake.Up, 0, -1, "Down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			assert.Equal(t, tt.dir, tt.dir.Opposite().Opposite())
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, tt.name, tt.dir.String())
		})
	}
}

func TestKeysDirection(t *testing.T) {
	tests := []struct {
		name    string
		keys    snake.Keys
		want    snake.Direction
		pressed bool
	}{
		{"nothing", 0, 0, false},
		{"single", snake.KeysOf(snake.Right), snake.Right, true},
		{"left beats everything", snake.KeysOf(snake.Right, snake.Up, snake.Down, snake.Left), snake.Left, true},
		{"down beats up", snake.KeysOf(snake.Up, snake.Down), snake.Down, true},
		{"down beats right", snake.KeysOf(snake.Right, snake.Down), snake.Down, true},
		{"up beats right", snake.KeysOf(snake.Right, snake.Up), snake.Up, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.keys.Direction()
			assert.Equal(t, tt.pressed, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("has", func(t *testing.T) {
		keys := snake.Keys(0).With(snake.Up)
		assert.True(t, keys.Has(snake.Up))
		assert.False(t, keys.Has(snake.Down))
	})
}
