package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/beka-birhanu/lightning-maze/maze"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidInterval = errors.New("tick interval must be positive")
)

// Palette is the frontier shading ramp, from the shallowest row to the deepest.
var Palette = []string{"#101", "#323", "#535", "#747", "#959", "#b7b", "#dad", "#FcF"}

// ShadedCell is a frontier position with the colour it should be drawn in.
type ShadedCell struct {
	maze.Coordinate
	Color string `json:"color"`
}

// Frame is what a renderer draws after one tick.
type Frame struct {
	Tick  int               `json:"tick"`
	State maze.State        `json:"state"`
	Cells []ShadedCell      `json:"cells"`
	Path  []maze.Coordinate `json:"path,omitempty"`
}

// Done reports whether the maze has stopped changing.
func (f Frame) Done() bool {
	return f.State != maze.Unsolved
}

// FrameFunc receives every frame the animator produces.
type FrameFunc func(Frame)

// Stepper advances a maze by one tick and reports the result.
type Stepper interface {
	Step() Frame
}

// MazeStepper drives a maze that is not shared with anyone else.
type MazeStepper struct {
	Maze *maze.Maze
}

// Step implements Stepper.
func (s MazeStepper) Step() Frame {
	s.Maze.Tick()
	return NewFrame(s.Maze)
}

// NewFrame captures the maze's frontier, shaded by row, and its winning path.
func NewFrame(m *maze.Maze) Frame {
	frontier := m.Frontier()
	minRow, maxRow := rowRange(frontier, m.Height())

	cells := make([]ShadedCell, len(frontier))
	for i, c := range frontier {
		cells[i] = ShadedCell{
			Coordinate: c,
			Color:      Palette[Shade(c.Y, minRow, maxRow, len(Palette))],
		}
	}

	return Frame{
		Tick:  m.Ticks(),
		State: m.State(),
		Cells: cells,
		Path:  m.Path(),
	}
}

// rowRange returns the smallest and largest row in cells. An empty frontier
// yields (height, 0).
func rowRange(cells []maze.Coordinate, height uint32) (uint32, uint32) {
	minRow, maxRow := height, uint32(0)
	for _, c := range cells {
		minRow = min(minRow, c.Y)
		maxRow = max(maxRow, c.Y)
	}
	return minRow, maxRow
}

// Shade maps row within [minRow, maxRow] onto one of levels palette
// entries. A frontier confined to one row uses the brightest level.
func Shade(row, minRow, maxRow uint32, levels int) int {
	if levels <= 0 {
		return 0
	}
	if maxRow <= minRow {
		return levels - 1
	}
	if row <= minRow {
		return 0
	}

	idx := int(math.Ceil(float64(levels) / float64(maxRow-minRow) * float64(row-minRow)))
	return min(idx, levels-1)
}

// Animator ticks a maze on a fixed interval, the way a render loop would.
type Animator struct {
	interval time.Duration
	logger   *logrus.Logger
}

// NewAnimator creates an Animator that ticks once per interval.
func NewAnimator(interval time.Duration, logger *logrus.Logger) (*Animator, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Animator{interval: interval, logger: logger}, nil
}

// Run steps s once per interval and hands every frame to onFrame until the
// maze is solved or exhausted, returning the final frame. It returns early
// with ctx's error when ctx is cancelled.
func (a *Animator) Run(ctx context.Context, s Stepper, onFrame FrameFunc) (Frame, error) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Frame{}, ctx.Err()
		case <-ticker.C:
			frame := s.Step()
			if onFrame != nil {
				onFrame(frame)
			}
			if frame.Done() {
				a.logger.WithFields(logrus.Fields{
					"ticks": frame.Tick,
					"state": frame.State.String(),
					"path":  len(frame.Path),
				}).Debug("animation finished")
				return frame, nil
			}
		}
	}
}
