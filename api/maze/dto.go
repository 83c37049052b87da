// Package mazeapi provides structures and utilities for managing maze requests and responses.
package mazeapi

import (
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze. Omitted
// fields take the server defaults.
type CreateMazeRequest struct {
	Width          uint32   `json:"width" binding:"omitempty,min=1,max=255"`
	Height         uint32   `json:"height" binding:"omitempty,min=1,max=255"`
	VerticalOpen   *float32 `json:"vertical_open"`
	HorizontalOpen *float32 `json:"horizontal_open"`
	Animate        bool     `json:"animate"`
}

// CreateMazeResponse carries the ID of a newly created maze session.
type CreateMazeResponse struct {
	ID uuid.UUID `json:"id"`
}

// TickRequest asks for a number of ticks; zero means one.
type TickRequest struct {
	Steps int `json:"steps" binding:"omitempty,min=0,max=65536"`
}
