package maze

// branch is one live or retired search path. Paths share prefixes through
// parent links into the maze's branch arena.
type branch struct {
	position Coordinate
	parent   int // Index of the branch this one split from, -1 at the entrance.
	length   int // Number of coordinates on the path, entrance included.
}

// Tick advances every frontier branch by one step through its open walls.
//
// The frontier is processed in order, so earlier branches claim contested
// positions first. Each branch is replaced by its children. The first child
// that steps onto row height becomes the winner, and the rest of the tick is
// discarded. Tick does nothing once the maze is solved or the frontier is
// empty.
func (m *Maze) Tick() {
	if m.winner >= 0 || len(m.frontier) == 0 {
		return
	}

	current := m.frontier
	next := make([]int, 0, len(current))
	for _, idx := range current {
		parent := m.branches[idx]
		walls := m.CellWalls(parent.position)

		candidates := make([]Coordinate, 0, len(Directions))
		for _, d := range Directions {
			if !walls.IsOpen(d) {
				continue
			}
			if p, ok := parent.position.Advance(d, m.width, m.height); ok {
				candidates = append(candidates, p)
			}
		}

		children := m.split(idx, candidates)
		for _, child := range children {
			if m.branches[child].position.Y == m.height {
				m.winner = child
				m.frontier = nil
				m.ticks++
				return
			}
		}
		next = append(next, children...)
	}

	m.frontier = next
	m.ticks++
}

// split creates a child of branch parent for every candidate no branch has
// claimed yet, marking each as visited. It returns the children's indices.
func (m *Maze) split(parent int, candidates []Coordinate) []int {
	children := make([]int, 0, len(candidates))
	length := m.branches[parent].length + 1
	for _, p := range candidates {
		if m.visited.Has(p) {
			continue
		}
		m.visited.Put(p)
		m.branches = append(m.branches, branch{position: p, parent: parent, length: length})
		children = append(children, len(m.branches)-1)
	}
	return children
}

// pathOf walks parent links from branch idx back to the entrance.
func (m *Maze) pathOf(idx int) []Coordinate {
	path := make([]Coordinate, m.branches[idx].length)
	for i := len(path) - 1; idx >= 0; i-- {
		path[i] = m.branches[idx].position
		idx = m.branches[idx].parent
	}
	return path
}
