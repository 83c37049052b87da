package maze

import "fmt"

// Wall is the state of a single wall slot.
type Wall uint8

const (
	Open Wall = iota
	Block
)

func (w Wall) String() string {
	switch w {
	case Open:
		return "Open"
	case Block:
		return "Block"
	}
	return fmt.Sprintf("Wall(%d)", uint8(w))
}

// CellWalls holds the four walls around a cell, ordered up, down, left, right.
type CellWalls [4]Wall

// IsOpen reports whether the wall on side d of the cell is open.
func (cw CellWalls) IsOpen(d Direction) bool {
	return cw[d] == Open
}

// vWallCount is the number of vertical wall slots: (width+1) columns per row.
func vWallCount(width, height uint32) int {
	return int((width + 1) * height)
}

// hWallCount is the number of horizontal wall slots: width columns per row,
// height+1 rows including the top and bottom boundaries.
func hWallCount(width, height uint32) int {
	return int(width * (height + 1))
}

// vIndex returns the slot of the wall to the left of cell (column, row).
func vIndex(width, column, row uint32) int {
	return int(row*(width+1) + column)
}

// hIndex returns the slot of the wall above cell (column, row).
func hIndex(width, column, row uint32) int {
	return int(row*width + column)
}

// isSideBoundary reports whether vertical slot i lies on the outer left or
// right edge of its row.
func isSideBoundary(i int, width uint32) bool {
	stride := int(width + 1)
	return i%stride == 0 || (i+1)%stride == 0
}

// cellWalls looks up the walls of cell (column, row). Out of range cells
// panic with an index error.
func cellWalls(width uint32, vWalls, hWalls []Wall, column, row uint32) CellWalls {
	return CellWalls{
		hWalls[hIndex(width, column, row)],   // up
		hWalls[hIndex(width, column, row+1)], // down
		vWalls[vIndex(width, column, row)],   // left
		vWalls[vIndex(width, column+1, row)], // right
	}
}

func wallBytes(walls []Wall) []byte {
	out := make([]byte, len(walls))
	for i, w := range walls {
		out[i] = byte(w)
	}
	return out
}
