// Package mazeapi exposes maze sessions over HTTP.
package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/lightning-maze/maze"
	"github.com/beka-birhanu/lightning-maze/service"
	"github.com/beka-birhanu/lightning-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze session endpoints.
type MazeController struct {
	sessions i.MazeSessionManager
	defaults i.MazeParams
}

// NewMazeController initializes a MazeController. defaults fills in whatever
// a create request leaves out.
func NewMazeController(sm i.MazeSessionManager, defaults i.MazeParams) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("maze controller requires a session manager")
	}
	return &MazeController{
		sessions: sm,
		defaults: defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.snapshot)
		mazes.GET("/:ID/ascii", mc.ascii)
		mazes.POST("/:ID/tick", mc.tick)
		mazes.POST("/:ID/clear", mc.clear)
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.POST("/:ID/animate", mc.animate)
		mazes.DELETE("/:ID", mc.remove)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	params := mc.defaults
	if request.Width != 0 {
		params.Width = request.Width
	}
	if request.Height != 0 {
		params.Height = request.Height
	}
	if request.VerticalOpen != nil {
		params.VerticalOpen = *request.VerticalOpen
	}
	if request.HorizontalOpen != nil {
		params.HorizontalOpen = *request.HorizontalOpen
	}

	id, err := mc.sessions.NewSession(params)
	if err != nil {
		writeError(ctx, err)
		return
	}

	if request.Animate {
		if err := mc.sessions.Animate(id); err != nil {
			writeError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id})
}

// snapshot returns the maze's walls, frontier and winning path.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// ascii returns the maze drawn as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	out, err := mc.sessions.Render(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, out)
}

// tick advances the maze by the requested number of ticks.
func (mc *MazeController) tick(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request TickRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	snap, err := mc.sessions.Tick(id, request.Steps)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// clear restarts the frontier animation.
func (mc *MazeController) clear(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Clear(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// regenerate draws a new maze for the session.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Regenerate(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// animate starts ticking the maze in the background.
func (mc *MazeController) animate(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Animate(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusAccepted)
}

// remove drops the session.
func (mc *MazeController) remove(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Remove(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// sessionID parses the :ID path parameter, answering 400 when it is malformed.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service and maze errors onto HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyAnimating):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTooManySessions):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrNoEntrance),
		errors.Is(err, maze.ErrFixedWalls):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
