/*
Package maze provides a rectangular wall-grid maze and a wavefront solver for it.

Walls are kept in two flat slices: vertical walls, (width+1) per row, and
horizontal walls, width per row across height+1 rows. A maze is generated with
independent open probabilities for each orientation and is entered through an
open slot in its top boundary.

Solving advances every live branch of the search by one step per Tick until a
branch steps through the bottom boundary. The winning path and the current
frontier are exposed as owned snapshots for a renderer to draw.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

const (
	maxMazeDimension = 255 // Largest width or height; keeps every coordinate within a byte.
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be between 1 and 255")
	ErrNoEntrance        = errors.New("no open entrance in the top boundary")
	ErrWallGridSize      = errors.New("wall grid does not match maze dimensions")
	ErrFixedWalls        = errors.New("maze was built from explicit walls and cannot be regenerated")
)

// Options tunes maze generation. A nil *Options uses the defaults.
type Options struct {
	// Rand is the random source for wall draws. Defaults to a time-seeded *rand.Rand.
	Rand Source

	// MaxAttempts bounds the number of grids drawn while searching for an entrance.
	MaxAttempts int

	// StrictEntrance makes New fail with ErrNoEntrance once MaxAttempts is
	// exhausted instead of forcing the middle top slot open.
	StrictEntrance bool
}

// State describes where a maze is in its solve.
type State int

const (
	Unsolved  State = iota // Frontier is non-empty and no branch has exited.
	Solved                 // A branch reached the row below the grid.
	Exhausted              // Every branch dead-ended without exiting.
)

func (s State) String() string {
	switch s {
	case Unsolved:
		return "unsolved"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Maze owns a wall grid and the state of its wavefront solve.
type Maze struct {
	width    uint32
	height   uint32
	pV       float32 // Vertical open probability, zero for explicit grids.
	pH       float32 // Horizontal open probability, zero for explicit grids.
	opts     *Options
	vWalls   []Wall
	hWalls   []Wall
	entrance Coordinate
	visited  mapset.Set[Coordinate]
	branches []branch // Arena of every branch created during the solve.
	frontier []int    // Indices into branches advanced by the next Tick.
	winner   int      // Index into branches, or -1.
	ticks    int
}

// New generates a maze of the given dimensions. pV and pH are the
// probabilities that a vertical or horizontal wall is open; values outside
// [0, 1] behave as always open or always blocked.
func New(width, height uint32, pV, pH float32, opts *Options) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	opts = withDefaults(opts)
	vWalls, hWalls, entrance, err := generate(width, height, pV, pH, opts)
	if err != nil {
		return nil, fmt.Errorf("generating %dx%d maze: %w", width, height, err)
	}

	m := &Maze{
		width:    width,
		height:   height,
		pV:       pV,
		pH:       pH,
		opts:     opts,
		vWalls:   vWalls,
		hWalls:   hWalls,
		entrance: entrance,
	}
	m.reset()
	return m, nil
}

// NewFromWalls builds a maze from explicit wall grids. The slices are copied
// and the outer left and right vertical boundaries are forced to Block.
func NewFromWalls(width, height uint32, vWalls, hWalls []Wall) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if len(vWalls) != vWallCount(width, height) || len(hWalls) != hWallCount(width, height) {
		return nil, fmt.Errorf("%w: got %d vertical and %d horizontal walls for %dx%d",
			ErrWallGridSize, len(vWalls), len(hWalls), width, height)
	}

	v := make([]Wall, len(vWalls))
	copy(v, vWalls)
	for i := range v {
		if isSideBoundary(i, width) {
			v[i] = Block
		}
	}
	h := make([]Wall, len(hWalls))
	copy(h, hWalls)

	entrance, ok := FindEntrance(width, h)
	if !ok {
		return nil, ErrNoEntrance
	}

	m := &Maze{
		width:    width,
		height:   height,
		vWalls:   v,
		hWalls:   h,
		entrance: entrance,
	}
	m.reset()
	return m, nil
}

func validateDimensions(width, height uint32) error {
	if min(width, height) == 0 || max(width, height) > maxMazeDimension {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func withDefaults(opts *Options) *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Rand == nil {
		o.Rand = newTimeSeededSource()
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return &o
}

// reset starts a new solve from the entrance.
func (m *Maze) reset() {
	m.visited = mapset.New[Coordinate]()
	m.visited.Put(m.entrance)
	m.branches = []branch{{position: m.entrance, parent: -1, length: 1}}
	m.frontier = []int{0}
	m.winner = -1
	m.ticks = 0
}

// ClearCells restarts the frontier from the entrance. Walls, the visited set
// and any winner are kept, so it replays the animation rather than the solve.
func (m *Maze) ClearCells() {
	m.branches = append(m.branches, branch{position: m.entrance, parent: -1, length: 1})
	m.frontier = []int{len(m.branches) - 1}
}

// Regenerate draws a new wall grid with the same dimensions and
// probabilities and resets all solve state.
func (m *Maze) Regenerate() error {
	if m.opts == nil {
		return ErrFixedWalls
	}

	vWalls, hWalls, entrance, err := generate(m.width, m.height, m.pV, m.pH, m.opts)
	if err != nil {
		return fmt.Errorf("regenerating %dx%d maze: %w", m.width, m.height, err)
	}

	m.vWalls = vWalls
	m.hWalls = hWalls
	m.entrance = entrance
	m.reset()
	return nil
}

// Width returns the number of cell columns.
func (m *Maze) Width() uint32 {
	return m.width
}

// Height returns the number of cell rows.
func (m *Maze) Height() uint32 {
	return m.height
}

// Entrance returns the top-row cell the solve starts from.
func (m *Maze) Entrance() Coordinate {
	return m.entrance
}

// CellWalls returns the walls around a cell, ordered up, down, left, right.
// The cell must lie within the grid; anything else panics.
func (m *Maze) CellWalls(c Coordinate) CellWalls {
	if c.X >= m.width || c.Y >= m.height {
		panic(fmt.Sprintf("maze: cell %s outside %dx%d grid", c, m.width, m.height))
	}
	return cellWalls(m.width, m.vWalls, m.hWalls, c.X, c.Y)
}

// State reports whether the maze is still being solved, solved, or exhausted.
func (m *Maze) State() State {
	switch {
	case m.winner >= 0:
		return Solved
	case len(m.frontier) == 0:
		return Exhausted
	default:
		return Unsolved
	}
}

// Ticks returns the number of ticks that advanced the frontier since the
// maze was generated.
func (m *Maze) Ticks() int {
	return m.ticks
}

// Visited returns the number of positions claimed so far, entrance included.
func (m *Maze) Visited() int {
	return m.visited.Size()
}

// IsVisited reports whether some branch has claimed c.
func (m *Maze) IsVisited(c Coordinate) bool {
	return m.visited.Has(c)
}

// String renders the maze as ASCII art. Frontier cells are drawn as "o" and
// cells on the winning path as "*".
func (m *Maze) String() string {
	marks := make(map[Coordinate]string)
	for _, c := range m.Frontier() {
		marks[c] = "o"
	}
	for _, c := range m.Path() {
		marks[c] = "*"
	}

	var sb strings.Builder
	for row := uint32(0); row <= m.height; row++ {
		// Wall row above this row of cells
		sb.WriteString("+")
		for col := uint32(0); col < m.width; col++ {
			if m.hWalls[hIndex(m.width, col, row)] == Block {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")

		if row == m.height {
			break
		}

		// Cell row
		for col := uint32(0); col <= m.width; col++ {
			if m.vWalls[vIndex(m.width, col, row)] == Block {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
			if col == m.width {
				break
			}

			mark, ok := marks[Coordinate{X: col, Y: row}]
			if !ok {
				mark = " "
			}
			sb.WriteString(" " + mark + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
