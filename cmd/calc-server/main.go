package main

import (
	"log"
	"os"

	"github.com/mcp-demos/calc/config"
	"github.com/mcp-demos/calc/mcpserver"
	"github.com/mcp-demos/calc/server"
	"github.com/mcp-demos/calc/tools"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, created, err := config.LoadOrCreate()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if created {
		path, _ := config.GetConfigPath()
		logger.Printf("Created default config at %s", path)
	}

	registry := tools.NewRegistry()
	if err := registry.RegisterTool(&tools.CalculatorTool{}); err != nil {
		logger.Fatalf("Failed to register calculator tool: %v", err)
	}

	srv := mcpserver.New(cfg, registry, logger)

	go func() {
		if err := srv.Serve(); err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	sm := server.NewShutdownManager(srv, logger)
	if err := sm.HandleGracefulShutdown(); err != nil {
		logger.Fatalf("Shutdown error: %v", err)
	}
}
