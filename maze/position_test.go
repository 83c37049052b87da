package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	const maxX, maxY = 4, 3

	t.Run("Moves one unit inside the lattice", func(t *testing.T) {
		c := Coordinate{X: 2, Y: 2}
		cases := map[Direction]Coordinate{
			Up:    {X: 2, Y: 1},
			Down:  {X: 2, Y: 3},
			Left:  {X: 1, Y: 2},
			Right: {X: 3, Y: 2},
		}
		for d, want := range cases {
			got, ok := c.Advance(d, maxX, maxY)
			assert.True(t, ok, d.String())
			assert.Equal(t, want, got, d.String())
		}
	})

	t.Run("Up fails on the top row for every column", func(t *testing.T) {
		for x := uint32(0); x <= maxX; x++ {
			_, ok := Coordinate{X: x, Y: 0}.Advance(Up, maxX, maxY)
			assert.False(t, ok)
		}
	})

	t.Run("Down fails on the last reachable row", func(t *testing.T) {
		for x := uint32(0); x <= maxX; x++ {
			_, ok := Coordinate{X: x, Y: maxY}.Advance(Down, maxX, maxY)
			assert.False(t, ok)
		}
	})

	t.Run("Left and Right fail on the side edges", func(t *testing.T) {
		for y := uint32(0); y <= maxY; y++ {
			_, ok := Coordinate{X: 0, Y: y}.Advance(Left, maxX, maxY)
			assert.False(t, ok)
			_, ok = Coordinate{X: maxX, Y: y}.Advance(Right, maxX, maxY)
			assert.False(t, ok)
		}
	})

	t.Run("Bounds are inclusive", func(t *testing.T) {
		got, ok := Coordinate{X: 1, Y: maxY - 1}.Advance(Down, maxX, maxY)
		assert.True(t, ok)
		assert.Equal(t, Coordinate{X: 1, Y: maxY}, got)
	})

	t.Run("Unknown direction does not move", func(t *testing.T) {
		_, ok := Coordinate{X: 1, Y: 1}.Advance(Direction(7), maxX, maxY)
		assert.False(t, ok)
	})
}
