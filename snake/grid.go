package snake

// Cell is a discrete arena coordinate. Y grows upwards.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Arena holds the board bounds in cells.
type Arena struct {
	Width  int
	Height int
}

// InBounds reports whether the cell lies inside [0,Width)x[0,Height).
func (a Arena) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// Translate maps a cell coordinate onto a centre-origin axis of boundWindow
// units, with the cell's centre landing on the tile centre.
func Translate(pos, boundWindow, boundGame float32) float32 {
	tile := boundWindow / boundGame
	return pos/boundGame*boundWindow - boundWindow/2 + tile/2
}

// ToScreen returns the centre of the cell in a centre-origin view of the
// given size. Positive y is up.
func (a Arena) ToScreen(c Cell, viewW, viewH float32) (x, y float32) {
	return Translate(float32(c.X), viewW, float32(a.Width)),
		Translate(float32(c.Y), viewH, float32(a.Height))
}

// Scale returns the on-screen width and height of a sprite of the given size.
func (a Arena) Scale(size Size, viewW, viewH float32) (w, h float32) {
	return float32(size) * viewW / float32(a.Width),
		float32(size) * viewH / float32(a.Height)
}
