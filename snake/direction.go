package snake

// Direction is one of the four headings a snake can face.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

var directionNames = [...]string{
	Left:  "Left",
	Up:    "Up",
	Right: "Right",
	Down:  "Down",
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit step taken when moving in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}
