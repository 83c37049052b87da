package i

import (
	"github.com/beka-birhanu/lightning-maze/maze"
	"github.com/google/uuid"
)

// MazeParams describes the maze a session should generate.
type MazeParams struct {
	Width          uint32
	Height         uint32
	VerticalOpen   float32
	HorizontalOpen float32
}

// MazeSessionManager owns live mazes and serialises every operation on them.
type MazeSessionManager interface {
	// NewSession generates a maze and returns the session ID it is stored under.
	NewSession(MazeParams) (uuid.UUID, error)

	// Snapshot returns a copy of the session's maze state.
	Snapshot(uuid.UUID) (maze.Snapshot, error)

	// Render returns the session's maze as ASCII art.
	Render(uuid.UUID) (string, error)

	// Tick advances the maze up to the given number of ticks, stopping early once it is solved or exhausted.
	Tick(uuid.UUID, int) (maze.Snapshot, error)

	// Clear restarts the frontier animation from the entrance.
	Clear(uuid.UUID) (maze.Snapshot, error)

	// Regenerate replaces the maze's walls and resets its solve.
	Regenerate(uuid.UUID) (maze.Snapshot, error)

	// Animate starts ticking the maze in the background until it is solved or exhausted.
	Animate(uuid.UUID) error

	// Remove stops any animation and drops the session.
	Remove(uuid.UUID) error
}
