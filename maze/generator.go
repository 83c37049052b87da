package maze

import (
	"math/rand"
	"time"
)

// DefaultMaxAttempts bounds how many wall grids New draws while looking for
// an entrance before it falls back to forcing one open.
const DefaultMaxAttempts = 1000

// Source supplies uniformly distributed draws in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float32() float32
}

func newTimeSeededSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// genWall draws a single wall that is open with probability p.
// p above 1 always opens and p at or below 0 always blocks.
func genWall(rng Source, p float32) Wall {
	if rng.Float32() < p {
		return Open
	}
	return Block
}

// GenerateWalls draws a fresh wall grid. Vertical slots on the outer left and
// right edges are always Block; every other vertical slot is open with
// probability pV. Horizontal slots, including the top and bottom boundary
// rows, are open with probability pH.
func GenerateWalls(width, height uint32, pV, pH float32, rng Source) (vWalls, hWalls []Wall) {
	vWalls = make([]Wall, vWallCount(width, height))
	for i := range vWalls {
		if isSideBoundary(i, width) {
			vWalls[i] = Block
			continue
		}
		vWalls[i] = genWall(rng, pV)
	}

	hWalls = make([]Wall, hWallCount(width, height))
	for i := range hWalls {
		hWalls[i] = genWall(rng, pH)
	}

	return vWalls, hWalls
}

// FindEntrance scans the top boundary row from column width/2 towards the
// right edge and returns the first open slot.
func FindEntrance(width uint32, hWalls []Wall) (Coordinate, bool) {
	for x := width / 2; x < width && int(x) < len(hWalls); x++ {
		if hWalls[x] == Open {
			return Coordinate{X: x, Y: 0}, true
		}
	}
	return Coordinate{}, false
}

// generate draws wall grids until one has an entrance. A non-positive pH can
// never open the top row and is rejected up front. When opts.MaxAttempts
// grids all lack an entrance, the middle top slot is forced open unless
// opts.StrictEntrance is set.
func generate(width, height uint32, pV, pH float32, opts *Options) ([]Wall, []Wall, Coordinate, error) {
	if pH <= 0 {
		return nil, nil, Coordinate{}, ErrNoEntrance
	}

	var vWalls, hWalls []Wall
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		vWalls, hWalls = GenerateWalls(width, height, pV, pH, opts.Rand)
		if entrance, ok := FindEntrance(width, hWalls); ok {
			return vWalls, hWalls, entrance, nil
		}
	}

	if opts.StrictEntrance {
		return nil, nil, Coordinate{}, ErrNoEntrance
	}

	entrance := Coordinate{X: width / 2, Y: 0}
	hWalls[hIndex(width, entrance.X, 0)] = Open
	return vWalls, hWalls, entrance, nil
}
