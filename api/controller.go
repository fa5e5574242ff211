package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/internal/logging"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// SolveController handles HTTP requests that run searches.
type SolveController struct {
	defaultStrategy search.Strategy
	timeout         time.Duration
	maxBodyBytes    int64
	mazeOpts        maze.Options
}

// NewSolveController creates a SolveController. A zero timeout disables
// the per-request deadline; a non-positive maxBodyBytes disables the
// request body limit.
func NewSolveController(defaultStrategy search.Strategy, timeout time.Duration, maxBodyBytes int64) *SolveController {
	return &SolveController{
		defaultStrategy: defaultStrategy,
		timeout:         timeout,
		maxBodyBytes:    maxBodyBytes,
		mazeOpts:        maze.DefaultOptions(),
	}
}

// Register registers the solve and health routes.
func (s *SolveController) Register(route *gin.RouterGroup) {
	route.POST("/solve", s.solve)
	route.GET("/health", s.health)
}

func (s *SolveController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solve parses the posted maze, searches it and reports the result.
func (s *SolveController) solve(ctx *gin.Context) {
	if s.maxBodyBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.maxBodyBytes)
	}
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy := s.defaultStrategy
	if request.Strategy != "" {
		parsed, err := search.ParseStrategy(request.Strategy)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		strategy = parsed
	}

	grid, err := maze.Parse(request.Maze, s.mazeOpts)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	reqCtx := ctx.Request.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, s.timeout)
		defer cancel()
	}
	logger := logging.FromContext(reqCtx)

	res, err := search.Solve(grid, strategy, search.WithContext(reqCtx), search.WithLogger(logger))
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := toResponse(res)
	response.RequestID = requestID(ctx)
	if request.Render {
		var sb strings.Builder
		if err := render.Render(&sb, grid, res, render.DefaultOptions()); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Rendered = sb.String()
	}
	ctx.JSON(http.StatusOK, response)
}

func toResponse(res *search.Result) SolveResponse {
	moves := make([]string, len(res.Moves))
	for i, m := range res.Moves {
		moves[i] = m.String()
	}
	cells := make([]CellDTO, len(res.Cells))
	for i, c := range res.Cells {
		cells[i] = CellDTO{Row: c.Row, Col: c.Col}
	}
	return SolveResponse{
		Strategy:      res.Strategy.String(),
		Solved:        res.Solved,
		Steps:         res.Steps(),
		Moves:         moves,
		Cells:         cells,
		NodesExplored: res.NodesExplored,
		Summary:       res.Summary(),
	}
}
