package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mcp-demos/calc/bridge"
	"github.com/mcp-demos/calc/config"
	"github.com/mcp-demos/calc/interactive"
	"github.com/mcp-demos/calc/llm"
	"github.com/mcp-demos/calc/server"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, _, err := config.LoadOrCreate()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	query := flag.String("q", "What's 1 plus 1?", "query to run in one-shot mode")
	repl := flag.Bool("i", false, "run an interactive chat session")
	serve := flag.Bool("serve", false, "expose the chat over an HTTP API")
	flag.Parse()

	if cfg.LLM.APIKey == "" {
		logger.Fatal("OPENAI_API_KEY is not set")
	}

	ctx := context.Background()

	session, err := bridge.NewMCPClient(cfg.ServerURL, logger)
	if err != nil {
		logger.Fatalf("Failed to create MCP client: %v", err)
	}
	defer session.Close()

	if _, err := session.Connect(ctx); err != nil {
		logger.Fatalf("Failed to connect: %v", err)
	}

	llmClient := llm.New(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.SystemPrompt)

	b := bridge.New(llmClient, session, logger)
	if err := b.Initialize(ctx); err != nil {
		logger.Fatalf("Failed to initialize bridge: %v", err)
	}

	fmt.Println("\nConnected to server with tools:")
	for _, tool := range b.Tools() {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	switch {
	case *serve:
		cfg.API.Enable = true
		srv := server.New(cfg, b, logger)
		go func() {
			if err := srv.Start(); err != nil {
				logger.Fatalf("Server error: %v", err)
			}
		}()

		// The deferred session.Close above runs after shutdown completes,
		// so the manager is not handed the session as a closer.
		sm := server.NewShutdownManager(srv, logger)
		if err := sm.HandleGracefulShutdown(); err != nil {
			logger.Fatalf("Shutdown error: %v", err)
		}

	case *repl:
		if err := interactive.New(cfg, b, logger).Start(ctx); err != nil {
			logger.Fatalf("Interactive session error: %v", err)
		}

	default:
		fmt.Printf("\nQuery: %s\n", *query)

		response, err := b.ProcessQuery(ctx, *query)
		if err != nil {
			logger.Fatalf("Query failed: %v", err)
		}
		fmt.Printf("\nResponse: %s\n", response)
	}
}
