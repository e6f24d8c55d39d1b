package snake

// Keys is the set of direction keys held down during a frame.
type Keys uint8

// keyPriority is the order in which simultaneous presses are resolved.
var keyPriority = [...]Direction{Left, Down, Up, Right}

// KeysOf builds a key set from the given directions.
func KeysOf(dirs ...Direction) Keys {
	var k Keys
	for _, d := range dirs {
		k = k.With(d)
	}
	return k
}

// With returns k with d pressed.
func (k Keys) With(d Direction) Keys {
	return k | 1<<d
}

// Has reports whether d is pressed.
func (k Keys) Has(d Direction) bool {
	return k&(1<<d) != 0
}

// Direction returns the highest priority pressed direction, Left first, then
// Down, Up and Right. ok is false when nothing is pressed.
func (k Keys) Direction() (d Direction, ok bool) {
	for _, d := range keyPriority {
		if k.Has(d) {
			return d, true
		}
	}
	return 0, false
}
