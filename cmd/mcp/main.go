// mcp serves the task tools over stdio for MCP clients.
package main

import (
	"context"
	"fmt"
	"os"

	"smart-todo/config"
	"smart-todo/internal/app"
	taskMCP "smart-todo/internal/task/delivery/mcp"
	"smart-todo/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// stdout carries the protocol
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
		Stderr:   true,
	})

	ctx := context.Background()
	todo, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task stack: ", err)
		os.Exit(1)
	}
	defer todo.Close()
	todo.Start(ctx, logger)

	if err := taskMCP.Serve(taskMCP.NewServer(logger, todo.UseCase)); err != nil {
		logger.Error(ctx, "MCP server stopped: ", err)
	}
}
