package maze

// Snapshot is an owned copy of everything a renderer needs to draw a maze.
type Snapshot struct {
	Width    uint32       `json:"width"`
	Height   uint32       `json:"height"`
	State    State        `json:"state"`
	Ticks    int          `json:"ticks"`
	Entrance Coordinate   `json:"entrance"`
	Cells    []Coordinate `json:"cells"`
	HWalls   []int        `json:"h_walls"`
	VWalls   []int        `json:"v_walls"`
	Path     []Coordinate `json:"path"`
}

// Snapshot copies the current walls, frontier and winning path.
func (m *Maze) Snapshot() Snapshot {
	return Snapshot{
		Width:    m.width,
		Height:   m.height,
		State:    m.State(),
		Ticks:    m.ticks,
		Entrance: m.entrance,
		Cells:    m.Frontier(),
		HWalls:   wallInts(m.hWalls),
		VWalls:   wallInts(m.vWalls),
		Path:     m.Path(),
	}
}

// CellCount returns the number of branches in the frontier.
func (m *Maze) CellCount() int {
	return len(m.frontier)
}

// Frontier returns the positions of the frontier branches in frontier order.
func (m *Maze) Frontier() []Coordinate {
	cells := make([]Coordinate, len(m.frontier))
	for i, idx := range m.frontier {
		cells[i] = m.branches[idx].position
	}
	return cells
}

// Cells returns the frontier positions as x, y byte pairs.
func (m *Maze) Cells() []byte {
	return coordinateBytes(m.Frontier())
}

// HWalls returns a copy of the horizontal walls, one byte per slot.
func (m *Maze) HWalls() []byte {
	return wallBytes(m.hWalls)
}

// VWalls returns a copy of the vertical walls, one byte per slot.
func (m *Maze) VWalls() []byte {
	return wallBytes(m.vWalls)
}

// Winner returns the position of the winning branch, if any.
func (m *Maze) Winner() (Coordinate, bool) {
	if m.winner < 0 {
		return Coordinate{}, false
	}
	return m.branches[m.winner].position, true
}

// Path returns the winning path from the entrance to the exit, or nil while
// the maze is unsolved.
func (m *Maze) Path() []Coordinate {
	if m.winner < 0 {
		return nil
	}
	return m.pathOf(m.winner)
}

// LightPathLen returns the number of coordinates on the winning path, or 0
// while the maze is unsolved.
func (m *Maze) LightPathLen() int {
	if m.winner < 0 {
		return 0
	}
	return m.branches[m.winner].length
}

// Lightup returns the winning path as x, y byte pairs, entrance first, or nil
// while the maze is unsolved.
func (m *Maze) Lightup() []byte {
	if m.winner < 0 {
		return nil
	}
	return coordinateBytes(m.pathOf(m.winner))
}

func coordinateBytes(cs []Coordinate) []byte {
	out := make([]byte, 0, 2*len(cs))
	for _, c := range cs {
		out = append(out, byte(c.X), byte(c.Y))
	}
	return out
}

func wallInts(walls []Wall) []int {
	out := make([]int, len(walls))
	for i, w := range walls {
		out[i] = int(w)
	}
	return out
}
