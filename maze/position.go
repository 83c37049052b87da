package maze

import "fmt"

// Direction is one of the four axis-aligned steps a branch can take.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order CellWalls reports them.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Coordinate is a position on the maze lattice.
type Coordinate struct {
	X uint32 `json:"x"` // Column
	Y uint32 `json:"y"` // Row
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Advance moves c one unit in direction d. maxX and maxY are the largest
// reachable coordinates, inclusive. The second result is false when the step
// would leave [0, maxX] x [0, maxY] or d is not a known direction.
func (c Coordinate) Advance(d Direction, maxX, maxY uint32) (Coordinate, bool) {
	switch d {
	case Up:
		if c.Y == 0 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X, Y: c.Y - 1}, true
	case Down:
		if c.Y == maxY {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X, Y: c.Y + 1}, true
	case Left:
		if c.X == 0 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X - 1, Y: c.Y}, true
	case Right:
		if c.X == maxX {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X + 1, Y: c.Y}, true
	}
	return Coordinate{}, false
}
