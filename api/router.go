// Package api exposes maze solving over HTTP using gin.
//
// Routes (under Config.BaseURL):
//
//	POST /v1/solve   solve a maze posted as text
//	GET  /v1/health  liveness probe
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Controller registers its routes on a versioned group.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []Controller
	logger      *slog.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []Controller
	Logger      *slog.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      logger,
	}
}

// Engine builds the gin engine with middleware and all controller routes.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestContext(r.logger))

	api := engine.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}
	return engine
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	r.logger.Info("HTTP server listening", "addr", r.addr, "base_url", r.baseURL)
	return r.Engine().Run(r.addr)
}
