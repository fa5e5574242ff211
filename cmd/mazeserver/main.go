package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/logging"
	"github.com/katalvlaran/mazepath/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	strategy, err := search.ParseStrategy(cfg.Strategy)
	if err != nil {
		logger.Error("invalid default strategy", "error", err)
		os.Exit(2)
	}

	gin.SetMode(cfg.GinMode)
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		Controllers: []api.Controller{api.NewSolveController(strategy, cfg.SolveTimeout, cfg.MaxBodyBytes)},
		Logger:      logger,
	})
	if err := router.Run(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
