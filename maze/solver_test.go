package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openBetween reports whether a and b are lattice neighbours with an open
// wall between them.
func openBetween(t *testing.T, m *Maze, a, b Coordinate) bool {
	t.Helper()
	for _, d := range Directions {
		next, ok := a.Advance(d, m.width, m.height)
		if ok && next == b {
			return m.CellWalls(a).IsOpen(d)
		}
	}
	return false
}

func TestTickSingleCell(t *testing.T) {
	m, err := New(1, 1, 1.0, 1.0, nil)
	require.NoError(t, err)
	require.Equal(t, Coordinate{X: 0, Y: 0}, m.Entrance())

	m.Tick()

	assert.Equal(t, Solved, m.State())
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}}, m.Path())
	assert.Equal(t, 2, m.LightPathLen())
	assert.Equal(t, []byte{0, 0, 0, 1}, m.Lightup())
	assert.Zero(t, m.CellCount())
	assert.Equal(t, 1, m.Ticks())

	winner, ok := m.Winner()
	assert.True(t, ok)
	assert.Equal(t, Coordinate{X: 0, Y: 1}, winner)
}

func TestTickStraightDrop(t *testing.T) {
	// 3x1: every wall blocked except the entrance above column 1 and the
	// bottom wall directly below it.
	vWalls := []Wall{Block, Block, Block, Block}
	hWalls := []Wall{
		Block, Open, Block,
		Block, Open, Block,
	}
	m, err := NewFromWalls(3, 1, vWalls, hWalls)
	require.NoError(t, err)
	require.Equal(t, Coordinate{X: 1, Y: 0}, m.Entrance())

	m.Tick()

	require.Equal(t, Solved, m.State())
	assert.Equal(t, 1, m.Ticks())
	assert.Equal(t, 2, m.LightPathLen())
	path := m.Path()
	assert.Equal(t, path[0].X, path[1].X)
}

func TestTickNoExit(t *testing.T) {
	width, height := uint32(4), uint32(3)
	vWalls := make([]Wall, vWallCount(width, height))
	hWalls := make([]Wall, hWallCount(width, height))
	for i := range hWalls {
		hWalls[i] = Block
	}
	hWalls[2] = Open // entrance override

	m, err := NewFromWalls(width, height, vWalls, hWalls)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		m.Tick()
		_, ok := m.Winner()
		require.False(t, ok)
	}

	assert.Equal(t, Exhausted, m.State())
	assert.Zero(t, m.CellCount())
	assert.Zero(t, m.LightPathLen())
	assert.Nil(t, m.Lightup())
	assert.Equal(t, 3, m.Ticks(), "ticks on an empty frontier are no-ops")
	assert.Equal(t, int(width), m.Visited())
}

func TestTickFirstClaimWins(t *testing.T) {
	// Two branches reach (1,1) in the same tick; the branch that came first
	// in the frontier claims it and carries the winning path.
	vWalls := []Wall{
		Block, Open, Open, Block,
		Block, Open, Open, Block,
	}
	hWalls := []Wall{
		Block, Open, Block,
		Open, Block, Open,
		Block, Open, Block,
	}
	m, err := NewFromWalls(3, 2, vWalls, hWalls)
	require.NoError(t, err)

	m.Tick()
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 2, Y: 0}}, m.Frontier())
	assert.Equal(t, []byte{0, 0, 2, 0}, m.Cells())

	m.Tick()
	assert.Equal(t, []Coordinate{{X: 0, Y: 1}, {X: 2, Y: 1}}, m.Frontier())

	m.Tick()
	assert.Equal(t, []Coordinate{{X: 1, Y: 1}}, m.Frontier())

	m.Tick()
	require.Equal(t, Solved, m.State())
	assert.Equal(t, 4, m.Ticks())
	assert.Equal(t, []Coordinate{
		{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2},
	}, m.Path())
}

func TestTickProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		width := uint32(rng.Intn(20) + 1)
		height := uint32(rng.Intn(20) + 1)
		m, err := New(width, height, 0.3+0.6*rng.Float32(), 0.3+0.6*rng.Float32(), &Options{Rand: rng})
		require.NoError(t, err)

		seen := map[Coordinate]struct{}{m.Entrance(): {}}
		limit := int(width*(height+1)) + 1
		for tick := 0; tick < limit && m.State() == Unsolved; tick++ {
			before := m.Visited()
			m.Tick()
			assert.GreaterOrEqual(t, m.Visited(), before, "visited set must only grow")

			for _, c := range m.Frontier() {
				_, dup := seen[c]
				require.False(t, dup, "position %s claimed twice", c)
				seen[c] = struct{}{}
				assert.Less(t, c.X, width)
				assert.Less(t, c.Y, height)
			}
		}
		require.NotEqual(t, Unsolved, m.State(), "solve must terminate")

		if m.State() != Solved {
			assert.Nil(t, m.Path())
			continue
		}

		path := m.Path()
		require.Len(t, path, m.LightPathLen())
		require.Len(t, m.Lightup(), 2*len(path))
		assert.Equal(t, m.Entrance(), path[0])
		assert.Equal(t, height, path[len(path)-1].Y)
		assert.Equal(t, m.Ticks()+1, len(path), "a wavefront path is one step per tick")
		for i := 1; i < len(path); i++ {
			assert.True(t, openBetween(t, m, path[i-1], path[i]), "step %s -> %s", path[i-1], path[i])
		}

		visited, ticks := m.Visited(), m.Ticks()
		m.Tick()
		m.Tick()
		assert.Equal(t, Solved, m.State())
		assert.Equal(t, path, m.Path())
		assert.Equal(t, visited, m.Visited())
		assert.Equal(t, ticks, m.Ticks())
		assert.Zero(t, m.CellCount())
	}
}

func TestClearCells(t *testing.T) {
	t.Run("Replays from the entrance after a win", func(t *testing.T) {
		m, err := New(1, 1, 1, 1, nil)
		require.NoError(t, err)
		m.Tick()
		require.Equal(t, Solved, m.State())
		visited := m.Visited()

		m.ClearCells()
		assert.Equal(t, []Coordinate{m.Entrance()}, m.Frontier())
		assert.Equal(t, visited, m.Visited())
		assert.Equal(t, 2, m.LightPathLen())

		m.Tick()
		assert.Equal(t, []Coordinate{m.Entrance()}, m.Frontier(), "a solved maze ignores ticks")
	})

	t.Run("Keeps the visited set on an unsolved maze", func(t *testing.T) {
		vWalls := []Wall{Block, Open, Open, Block}
		hWalls := []Wall{Block, Open, Block, Block, Block, Block}
		m, err := NewFromWalls(3, 1, vWalls, hWalls)
		require.NoError(t, err)

		m.Tick()
		require.Equal(t, 3, m.Visited())

		m.ClearCells()
		assert.Equal(t, []Coordinate{{X: 1, Y: 0}}, m.Frontier())

		m.Tick()
		assert.Equal(t, Exhausted, m.State())
		assert.Equal(t, 3, m.Visited())
	})
}
